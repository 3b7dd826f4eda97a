package suggestion

import (
	"context"
)

// UseCase defines the business logic interface for the suggestion domain.
type UseCase interface {
	// Suggest runs the gated retrieve-assess-generate pipeline for a project description.
	// Collaborator failures degrade to fallback tasks; only invalid input returns an error.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// Validate runs the query quality gate alone and explains how to improve the text.
	Validate(ctx context.Context, input ValidateInput) (ValidateOutput, error)
}
