package suggestion

import (
	"time"

	"task-suggestion/internal/model"
	"task-suggestion/internal/quality"
	"task-suggestion/internal/retrieval"
)

const (
	// DefaultNumSuggestions is used when SuggestInput.NumSuggestions is zero.
	DefaultNumSuggestions = 3

	// MaxNumSuggestions bounds SuggestInput.NumSuggestions.
	MaxNumSuggestions = 5

	// ConfidenceNotApplicable is reported for descriptions rejected by the gate.
	ConfidenceNotApplicable = "n/a"
)

// SuggestInput is the input for Suggest.
type SuggestInput struct {
	Description    string
	NumSuggestions int // 0 means DefaultNumSuggestions
	UseHybrid      bool
}

// SuggestOutput is the result of Suggest. Suggestions always holds 1 to 5 entries.
type SuggestOutput struct {
	Suggestions         []string
	SimilarTasks        []model.RetrievedTask
	Confidence          string
	RetrievalConfidence retrieval.Confidence
	Query               quality.Metadata
	Rejected            bool
	Degraded            bool // a collaborator failed and fallback tasks were used
	ProcessingTime      time.Duration
}

// ValidateInput is the input for Validate.
type ValidateInput struct {
	Text string
}

// ValidateOutput is the result of Validate.
type ValidateOutput struct {
	Text            string
	EnhancedText    string
	Metadata        quality.Metadata
	Recommendations []string
}
