package repository

import (
	"context"

	"task-suggestion/internal/model"
)

// CatalogRepository persists projects and tasks and serves keyword search over them.
type CatalogRepository interface {
	ImportProjects(ctx context.Context, projects []model.Project, tasks []model.Task) error
	ListTasks(ctx context.Context) ([]model.CatalogTask, error)
	Counts(ctx context.Context) (projects int, tasks int, err error)
	SearchLexical(ctx context.Context, query string, limit int) ([]model.RetrievedTask, error)
	Close() error
}

// IndexRepository maintains the vector collection.
type IndexRepository interface {
	// EnsureCollection creates the collection when missing, or drops and
	// recreates it when recreate is set.
	EnsureCollection(ctx context.Context, recreate bool) error
	Upsert(ctx context.Context, points []IndexedTask) error
	Info(ctx context.Context) (IndexInfo, error)
	Collection() string
}
