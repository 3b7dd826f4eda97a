package repository

import (
	"context"

	"task-suggestion/internal/model"
)

// Embedder turns query text into a fixed-length vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// SearchRepository finds historical tasks similar to a query.
// Results are ordered by descending RawScore.
type SearchRepository interface {
	Search(ctx context.Context, opt SearchOptions) ([]model.RetrievedTask, error)
}

// Generator produces free-text candidate sequences for a prompt.
type Generator interface {
	Generate(ctx context.Context, opt GenerateOptions) ([]string, error)
}
