package usecase

import (
	"context"

	"task-suggestion/internal/catalog"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// Status reports the catalog size, the vector collection and the last reload.
// An unreachable vector store degrades the status instead of failing it.
func (uc *implUseCase) Status(ctx context.Context) (catalog.StatusOutput, error) {
	projects, tasks, err := uc.repo.Counts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.Status: %v", err)
		return catalog.StatusOutput{}, err
	}

	out := catalog.StatusOutput{
		Status:           statusOK,
		Catalog:          catalog.CatalogCounts{Projects: projects, Tasks: tasks},
		EmbeddingModel:   uc.embedder.Model(),
		GenerationModels: uc.cfg.GenerationModels,
		VectorStore:      catalog.VectorStoreStatus{Collection: uc.index.Collection()},
	}

	info, err := uc.index.Info(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "catalog.usecase.Status: vector store unavailable: %v", err)
		out.Status = statusDegraded
	} else {
		out.VectorStore.Available = true
		out.VectorStore.Status = info.Status
		out.VectorStore.PointsCount = info.PointsCount
	}

	uc.mu.Lock()
	out.LastReload = uc.last
	uc.mu.Unlock()

	return out, nil
}
