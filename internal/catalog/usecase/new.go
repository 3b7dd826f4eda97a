package usecase

import (
	"sync"

	"task-suggestion/internal/catalog"
	"task-suggestion/internal/catalog/repository"
	pkgLog "task-suggestion/pkg/log"
	pkgVoyage "task-suggestion/pkg/voyage"
)

// Config tunes reload batching and what Status reports.
type Config struct {
	BatchSize        int
	Workers          int
	GenerationModels []string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.CatalogRepository
	index    repository.IndexRepository
	embedder pkgVoyage.IVoyage
	cfg      Config

	mu      sync.Mutex
	running bool
	last    catalog.LastReload
}

// New creates a new catalog UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.CatalogRepository,
	index repository.IndexRepository,
	embedder pkgVoyage.IVoyage,
	cfg Config,
) catalog.UseCase {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		index:    index,
		embedder: embedder,
		cfg:      cfg,
		last:     catalog.LastReload{State: catalog.ReloadNever},
	}
}
