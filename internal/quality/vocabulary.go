package quality

import "regexp"

// Keyword weights per relevance band.
const (
	WeightHigh   = 3.0
	WeightMedium = 2.0
	WeightLow    = 1.0
)

// Vocabulary maps domain keywords to weights and lists bonus patterns.
// Each distinct pattern that matches adds PatternBonus to the score.
type Vocabulary struct {
	Weights      map[string]float64
	Patterns     []*regexp.Regexp
	PatternBonus float64
}

var (
	highRelevanceTerms = []string{
		"project", "task", "development", "implementation", "design", "testing",
		"deployment", "analysis", "management", "planning", "documentation",
		"requirements", "specification", "architecture", "coding", "programming",
		"database", "frontend", "backend", "api", "integration", "review",
		"maintenance", "monitoring", "security", "performance", "optimization",
		"client", "stakeholder", "meeting", "deliverable", "milestone", "sprint",
		"agile", "scrum", "timeline", "deadline", "budget", "quality", "assurance",
		"training", "release",
	}

	mediumRelevanceTerms = []string{
		"work", "business", "process", "system", "application", "software",
		"solution", "feature", "function", "workflow", "procedure", "operation",
		"service", "platform", "infrastructure", "framework", "technology", "tool",
		"resource", "asset", "component",
	}

	lowRelevanceTerms = []string{
		"report", "document", "file", "data", "information", "content", "user",
		"customer", "support", "help", "guide", "manual",
	}

	defaultPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(project|task|develop|implement|create|build|design)\b`),
		regexp.MustCompile(`\b(web|mobile|app|system|software|platform)\b`),
		regexp.MustCompile(`\b(frontend|backend|database|api|ui|ux)\b`),
	}
)

// DefaultVocabulary returns the built-in project management vocabulary.
func DefaultVocabulary() Vocabulary {
	weights := make(map[string]float64, len(highRelevanceTerms)+len(mediumRelevanceTerms)+len(lowRelevanceTerms))
	for _, t := range lowRelevanceTerms {
		weights[t] = WeightLow
	}
	for _, t := range mediumRelevanceTerms {
		weights[t] = WeightMedium
	}
	for _, t := range highRelevanceTerms {
		weights[t] = WeightHigh
	}

	return Vocabulary{
		Weights:      weights,
		Patterns:     defaultPatterns,
		PatternBonus: 0.1,
	}
}

// maxWeight is the normaliser for the keyword score.
func (v Vocabulary) maxWeight() float64 {
	max := 0.0
	for _, w := range v.Weights {
		if w > max {
			max = w
		}
	}
	if max == 0 {
		return WeightHigh
	}
	return max
}
