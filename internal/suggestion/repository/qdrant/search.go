package qdrant

import (
	"context"
	"errors"
	"fmt"

	"task-suggestion/internal/model"
	"task-suggestion/internal/suggestion/repository"
	pkgLog "task-suggestion/pkg/log"
	pkgQdrant "task-suggestion/pkg/qdrant"
)

var errEmptyVector = errors.New("query vector is empty")

type implRepository struct {
	client         *pkgQdrant.Client
	collectionName string
	l              pkgLog.Logger
}

// New creates a vector-only search repository backed by Qdrant.
func New(client *pkgQdrant.Client, collectionName string, l pkgLog.Logger) repository.SearchRepository {
	return &implRepository{
		client:         client,
		collectionName: collectionName,
		l:              l,
	}
}

// Search performs cosine similarity search. QueryText is ignored.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.RetrievedTask, error) {
	if len(opt.QueryVector) == 0 {
		return nil, errEmptyVector
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:         opt.QueryVector,
		Limit:          opt.TopK,
		WithPayload:    true,
		ScoreThreshold: opt.MinScore,
	})
	if err != nil {
		r.l.Errorf(ctx, "suggestion.repository.qdrant.Search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]model.RetrievedTask, 0, len(resp.Result))
	for _, scored := range resp.Result {
		task, ok := model.RetrievedTaskFromPayload(scored.Payload, scored.Score)
		if !ok {
			r.l.Warnf(ctx, "suggestion.repository.qdrant.Search: task_id missing in payload for point %s", scored.ID)
			continue
		}
		results = append(results, task)
	}

	r.l.Debugf(ctx, "suggestion.repository.qdrant.Search: %d hits", len(results))
	return results, nil
}
