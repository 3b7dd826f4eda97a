package usecase

import (
	"context"

	"task-suggestion/internal/quality"
	"task-suggestion/internal/suggestion"
	"task-suggestion/pkg/textnorm"
)

// Validate scores text with the quality gate and derives improvement hints.
// Blank text is scored like any other input and comes back incoherent.
func (uc *implUseCase) Validate(ctx context.Context, input suggestion.ValidateInput) (suggestion.ValidateOutput, error) {
	enhanced, md := uc.gate.ValidateAndEnhance(input.Text)
	if md.EnhancementApplied {
		enhanced = uc.cfg.Quality.ContextHint + textnorm.Preprocess(input.Text)
	}

	return suggestion.ValidateOutput{
		Text:            input.Text,
		EnhancedText:    enhanced,
		Metadata:        md,
		Recommendations: quality.Recommendations(md),
	}, nil
}
