package qdrant

import (
	"context"
	"errors"
	"fmt"

	"task-suggestion/internal/catalog/repository"
	"task-suggestion/internal/model"
	pkgLog "task-suggestion/pkg/log"
	pkgQdrant "task-suggestion/pkg/qdrant"
)

// Config describes the collection the index writes to.
type Config struct {
	Collection string
	VectorSize int
	Distance   string
}

type implRepository struct {
	client *pkgQdrant.Client
	cfg    Config
	l      pkgLog.Logger
}

// New creates an index repository backed by Qdrant.
func New(client *pkgQdrant.Client, cfg Config, l pkgLog.Logger) repository.IndexRepository {
	if cfg.Distance == "" {
		cfg.Distance = "Cosine"
	}
	return &implRepository{client: client, cfg: cfg, l: l}
}

func (r *implRepository) Collection() string {
	return r.cfg.Collection
}

func (r *implRepository) EnsureCollection(ctx context.Context, recreate bool) error {
	_, err := r.client.GetCollection(ctx, r.cfg.Collection)
	switch {
	case err == nil && !recreate:
		return nil
	case err == nil && recreate:
		r.l.Infof(ctx, "catalog.repository.qdrant.EnsureCollection: dropping %s", r.cfg.Collection)
		if err := r.client.DeleteCollection(ctx, r.cfg.Collection); err != nil {
			return fmt.Errorf("failed to drop collection: %w", err)
		}
	case !errors.Is(err, pkgQdrant.ErrCollectionNotFound):
		return fmt.Errorf("failed to get collection: %w", err)
	}

	r.l.Infof(ctx, "catalog.repository.qdrant.EnsureCollection: creating %s (size=%d, distance=%s)",
		r.cfg.Collection, r.cfg.VectorSize, r.cfg.Distance)
	if err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.cfg.Collection,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.cfg.VectorSize,
			Distance: r.cfg.Distance,
		},
	}); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// Upsert writes points with deterministic ids derived from the task id.
func (r *implRepository) Upsert(ctx context.Context, points []repository.IndexedTask) error {
	if len(points) == 0 {
		return nil
	}

	req := pkgQdrant.UpsertPointsRequest{Points: make([]pkgQdrant.Point, len(points))}
	for i, p := range points {
		if len(p.Vector) != r.cfg.VectorSize {
			return fmt.Errorf("task %s: vector size %d, collection expects %d", p.Task.TaskID, len(p.Vector), r.cfg.VectorSize)
		}
		req.Points[i] = pkgQdrant.Point{
			ID:      model.PointID(p.Task.TaskID),
			Vector:  p.Vector,
			Payload: p.Task.Payload(),
		}
	}

	if err := r.client.UpsertPoints(ctx, r.cfg.Collection, req); err != nil {
		return fmt.Errorf("failed to upsert %d points: %w", len(points), err)
	}
	return nil
}

func (r *implRepository) Info(ctx context.Context) (repository.IndexInfo, error) {
	info, err := r.client.GetCollection(ctx, r.cfg.Collection)
	if err != nil {
		return repository.IndexInfo{}, err
	}
	return repository.IndexInfo{Status: info.Status, PointsCount: info.PointsCount}, nil
}
