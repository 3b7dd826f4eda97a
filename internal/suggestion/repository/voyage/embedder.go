package voyage

import (
	"context"
	"fmt"

	"task-suggestion/internal/suggestion/repository"
	pkgLog "task-suggestion/pkg/log"
	pkgVoyage "task-suggestion/pkg/voyage"
)

type implRepository struct {
	client pkgVoyage.IVoyage
	l      pkgLog.Logger
}

// New creates an Embedder backed by Voyage AI.
func New(client pkgVoyage.IVoyage, l pkgLog.Logger) repository.Embedder {
	return &implRepository{client: client, l: l}
}

// EmbedQuery embeds text as a search query.
func (r *implRepository) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := r.client.Embed(ctx, pkgVoyage.InputQuery, []string{text})
	if err != nil {
		r.l.Errorf(ctx, "suggestion.repository.voyage.EmbedQuery: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("failed to generate query embedding: empty vector")
	}
	return vectors[0], nil
}
