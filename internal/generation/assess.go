// Package generation decides how confident the service is in its context,
// builds the generation prompt for that confidence and holds the fallback tasks.
package generation

import (
	"strings"

	"task-suggestion/internal/model"
	"task-suggestion/internal/quality"
)

// DescriptionQuality grades a description by length.
type DescriptionQuality string

const (
	DescriptionLow    DescriptionQuality = "low"
	DescriptionMedium DescriptionQuality = "medium"
	DescriptionHigh   DescriptionQuality = "high"
)

// Confidence is the generation confidence tier.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high_confidence"
	ConfidenceMedium  Confidence = "medium_confidence"
	ConfidenceLow     Confidence = "low_confidence"
	ConfidenceVeryLow Confidence = "very_low_confidence"
)

const (
	highDescriptionWords   = 10
	mediumDescriptionWords = 5
	similarityFloor        = 0.3
)

// ContextAssessment scores the retrieved context for one request.
type ContextAssessment struct {
	DescriptionQuality DescriptionQuality `json:"description_quality"`
	ContextRelevance   float64            `json:"context_relevance"`
	HasSimilarContext  bool               `json:"has_similar_context"`
	TotalSimilarTasks  int                `json:"total_similar_tasks"`
	UniqueProjects     int                `json:"unique_projects"`
	AvgSimilarityScore float64            `json:"avg_similarity_score"`
}

// Assess grades description and projects. ContextRelevance is the fraction of
// four signals that hold: a high quality description, any similar project,
// any similar task and an average similarity above 0.3.
func Assess(description string, projects []model.ProjectContext) ContextAssessment {
	a := ContextAssessment{
		DescriptionQuality: gradeDescription(description),
		HasSimilarContext:  len(projects) > 0,
		UniqueProjects:     len(projects),
	}

	sum := 0.0
	for _, p := range projects {
		a.TotalSimilarTasks += len(p.Tasks)
		sum += p.RepresentativeScore
	}
	if len(projects) > 0 {
		a.AvgSimilarityScore = sum / float64(len(projects))
	}

	signals := []bool{
		a.DescriptionQuality == DescriptionHigh,
		a.HasSimilarContext,
		a.TotalSimilarTasks > 0,
		a.AvgSimilarityScore > similarityFloor,
	}
	held := 0
	for _, s := range signals {
		if s {
			held++
		}
	}
	a.ContextRelevance = float64(held) / float64(len(signals))

	return a
}

func gradeDescription(description string) DescriptionQuality {
	n := len(strings.Fields(description))
	switch {
	case n >= highDescriptionWords:
		return DescriptionHigh
	case n >= mediumDescriptionWords:
		return DescriptionMedium
	default:
		return DescriptionLow
	}
}

// ConfidenceFor averages context relevance with the query relevance score.
// An incoherent query contributes zero. md may be nil when no query metadata exists.
func ConfidenceFor(a ContextAssessment, md *quality.Metadata) Confidence {
	factors := []float64{a.ContextRelevance}
	if md != nil {
		rel := md.RelevanceScore
		if !md.IsCoherent {
			rel = 0
		}
		factors = append(factors, rel)
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	mean := sum / float64(len(factors))

	switch {
	case mean >= 0.7:
		return ConfidenceHigh
	case mean >= 0.5:
		return ConfidenceMedium
	case mean >= 0.3:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
