package generation

// GenericFallback is used when no confidence tier has been computed yet.
var GenericFallback = []string{
	"Create project documentation",
	"Set up development environment",
	"Implement core functionality",
	"Write automated tests",
	"Deploy and monitor application",
}

// RejectedFallback is the single answer given to descriptions that fail the gate.
const RejectedFallback = "Please provide a more detailed project description that explains the goals and technical requirements."

// FallbackTable maps a confidence tier to its canned tasks.
type FallbackTable map[Confidence][]string

// DefaultFallbackTable returns the built-in tier to tasks mapping.
func DefaultFallbackTable() FallbackTable {
	table := FallbackTable{
		ConfidenceMedium: {
			"Define project requirements and scope",
			"Design the system architecture",
			"Set up development environment",
			"Implement core features",
			"Test and validate functionality",
		},
		ConfidenceLow: {
			"Clarify project goals and requirements",
			"Identify key stakeholders and users",
			"Create a project plan with milestones",
			"Research existing similar solutions",
			"Set up task tracking for the project",
		},
	}
	table[ConfidenceHigh] = GenericFallback
	table[ConfidenceVeryLow] = []string{RejectedFallback}
	return table
}

// For returns a copy of the tasks for c, or GenericFallback when c has none.
func (t FallbackTable) For(c Confidence) []string {
	tasks, ok := t[c]
	if !ok || len(tasks) == 0 {
		tasks = GenericFallback
	}
	out := make([]string, len(tasks))
	copy(out, tasks)
	return out
}
