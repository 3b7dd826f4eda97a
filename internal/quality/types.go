package quality

// Tier is a discretised relevance level.
type Tier string

const (
	TierHigh    Tier = "high"
	TierMedium  Tier = "medium"
	TierLow     Tier = "low"
	TierVeryLow Tier = "very_low"
)

// Stats are the surface measurements of a text.
type Stats struct {
	Length           int
	WordCount        int
	UniqueWordRatio  float64
	SpecialCharRatio float64
	LongestAlphaRun  int
}

// Metadata is the outcome of running the gate on a query.
type Metadata struct {
	OriginalLength     int     `json:"original_length"`
	WordCount          int     `json:"word_count"`
	UniqueWordRatio    float64 `json:"unique_word_ratio"`
	SpecialCharRatio   float64 `json:"special_char_ratio"`
	IsCoherent         bool    `json:"is_coherent"`
	RelevanceScore     float64 `json:"relevance_score"`
	Confidence         Tier    `json:"confidence"`
	ShouldProcess      bool    `json:"should_process"`
	EnhancementApplied bool    `json:"enhancement_applied"`
}

// Config tunes ValidateAndEnhance.
type Config struct {
	MinRelevance float64 // below this a coherent query is not processed
	EnhanceBelow float64 // processed queries under this score get ContextHint
	ContextHint  string
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MinRelevance: 0.15,
		EnhanceBelow: 0.5,
		ContextHint:  "project task description: ",
	}
}
