package http

import (
	"task-suggestion/internal/model"
	"task-suggestion/internal/quality"
	"task-suggestion/internal/suggestion"
)

// --- Request DTOs ---

type suggestReq struct {
	ProjectDescription string `json:"project_description"`
	NumSuggestions     int    `json:"num_suggestions"`
	UseHybridSearch    bool   `json:"use_hybrid_search"`
}

// validate accepts an omitted num_suggestions, which the use case defaults.
func (r suggestReq) validate() error {
	if r.NumSuggestions != 0 && (r.NumSuggestions < 1 || r.NumSuggestions > suggestion.MaxNumSuggestions) {
		return suggestion.ErrInvalidNumSuggestions
	}
	return nil
}

func (r suggestReq) toInput() suggestion.SuggestInput {
	return suggestion.SuggestInput{
		Description:    r.ProjectDescription,
		NumSuggestions: r.NumSuggestions,
		UseHybrid:      r.UseHybridSearch,
	}
}

// ---

// Text must be present; an empty string is scored by the quality gate like any other text.
type validateReq struct {
	Text *string `json:"text" binding:"required"`
}

func (r validateReq) toInput() suggestion.ValidateInput {
	return suggestion.ValidateInput{Text: *r.Text}
}

// --- Response DTOs ---

type taskSuggestionResp struct {
	TaskText string `json:"task_text"`
}

type similarTaskResp struct {
	TaskID             string  `json:"task_id"`
	TaskText           string  `json:"task_text"`
	ProjectID          string  `json:"project_id"`
	ProjectName        string  `json:"project_name"`
	ProjectDescription string  `json:"project_description"`
	Score              float64 `json:"score"`
	RawScore           float64 `json:"raw_score"`
}

func newSimilarTaskResp(t model.RetrievedTask) similarTaskResp {
	return similarTaskResp{
		TaskID:             t.TaskID,
		TaskText:           t.TaskText,
		ProjectID:          t.ProjectID,
		ProjectName:        t.ProjectName,
		ProjectDescription: t.ProjectDescription,
		Score:              t.NormalizedScore,
		RawScore:           t.RawScore,
	}
}

type suggestResp struct {
	Suggestions         []taskSuggestionResp `json:"suggestions"`
	SimilarTasks        []similarTaskResp    `json:"similar_tasks"`
	Confidence          string               `json:"confidence"`
	RetrievalConfidence string               `json:"retrieval_confidence"`
	Query               quality.Metadata     `json:"query"`
	Rejected            bool                 `json:"rejected"`
	Degraded            bool                 `json:"degraded"`
	ProcessingTime      float64              `json:"processing_time"` // seconds
}

func (h *handler) newSuggestResp(out suggestion.SuggestOutput) suggestResp {
	suggestions := make([]taskSuggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = taskSuggestionResp{TaskText: s}
	}

	similar := make([]similarTaskResp, len(out.SimilarTasks))
	for i, t := range out.SimilarTasks {
		similar[i] = newSimilarTaskResp(t)
	}

	return suggestResp{
		Suggestions:         suggestions,
		SimilarTasks:        similar,
		Confidence:          out.Confidence,
		RetrievalConfidence: string(out.RetrievalConfidence),
		Query:               out.Query,
		Rejected:            out.Rejected,
		Degraded:            out.Degraded,
		ProcessingTime:      out.ProcessingTime.Seconds(),
	}
}

type validateResp struct {
	Text            string           `json:"text"`
	EnhancedText    string           `json:"enhanced_text"`
	Metadata        quality.Metadata `json:"metadata"`
	Recommendations []string         `json:"recommendations"`
}

func (h *handler) newValidateResp(out suggestion.ValidateOutput) validateResp {
	return validateResp{
		Text:            out.Text,
		EnhancedText:    out.EnhancedText,
		Metadata:        out.Metadata,
		Recommendations: out.Recommendations,
	}
}
