package quality

const (
	detailWordThreshold   = 5
	termsRelevanceCeiling = 0.3
)

// Recommendations turns gate metadata into hints for improving a description.
func Recommendations(md Metadata) []string {
	if !md.IsCoherent {
		return []string{
			"Describe the project in one or more clear sentences using ordinary words.",
		}
	}

	var recs []string
	if md.WordCount < detailWordThreshold {
		recs = append(recs, "Add more detail about the goals and expected features of the project.")
	}
	if md.RelevanceScore < termsRelevanceCeiling {
		recs = append(recs, "Include project-specific terms such as the technologies or deliverables involved.")
	}
	if !md.ShouldProcess {
		recs = append(recs, "This text is not recognised as a project description and will not be used to suggest tasks.")
	}
	if len(recs) == 0 {
		recs = append(recs, "The description looks good for task suggestion.")
	}
	return recs
}
