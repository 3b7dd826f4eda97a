package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"task-suggestion/internal/catalog"
	"task-suggestion/internal/catalog/repository"
	"task-suggestion/internal/model"
	"task-suggestion/pkg/textnorm"
	pkgVoyage "task-suggestion/pkg/voyage"
)

// Reload re-embeds every catalog task into the vector collection.
// Only one reload runs at a time.
func (uc *implUseCase) Reload(ctx context.Context, input catalog.ReloadInput) (catalog.ReloadOutput, error) {
	if err := uc.begin(); err != nil {
		return catalog.ReloadOutput{}, err
	}
	out, err := uc.reload(ctx, input)
	uc.finish(out, err)
	return out, err
}

// StartReload runs Reload in the background. The reload outlives ctx's
// cancellation but keeps its values.
func (uc *implUseCase) StartReload(ctx context.Context, input catalog.ReloadInput) error {
	if err := uc.begin(); err != nil {
		return err
	}

	bg := context.WithoutCancel(ctx)
	go func() {
		out, err := uc.reload(bg, input)
		uc.finish(out, err)
	}()
	return nil
}

func (uc *implUseCase) begin() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.running {
		return catalog.ErrReloadInProgress
	}
	uc.running = true
	uc.last = catalog.LastReload{State: catalog.ReloadRunning, StartedAt: time.Now()}
	return nil
}

func (uc *implUseCase) finish(out catalog.ReloadOutput, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.running = false
	uc.last.FinishedAt = time.Now()
	uc.last.Indexed = out.Indexed
	uc.last.Skipped = out.Skipped
	if err != nil {
		uc.last.State = catalog.ReloadFailed
		uc.last.Error = err.Error()
		return
	}
	uc.last.State = catalog.ReloadSucceeded
}

func (uc *implUseCase) reload(ctx context.Context, input catalog.ReloadInput) (catalog.ReloadOutput, error) {
	var out catalog.ReloadOutput
	start := time.Now()

	if err := uc.index.EnsureCollection(ctx, input.Recreate); err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.Reload: %v", err)
		return out, err
	}

	all, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.Reload: %v", err)
		return out, err
	}

	tasks := make([]model.CatalogTask, 0, len(all))
	for _, t := range all {
		t.TaskText = textnorm.Clean(t.TaskText)
		if t.TaskText == "" {
			out.Skipped++
			continue
		}
		tasks = append(tasks, t)
	}

	var indexed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Workers)

	for i := 0; i < len(tasks); i += uc.cfg.BatchSize {
		batch := tasks[i:min(i+uc.cfg.BatchSize, len(tasks))]
		g.Go(func() error {
			if err := uc.indexBatch(gctx, batch); err != nil {
				return err
			}
			indexed.Add(int64(len(batch)))
			return nil
		})
	}

	err = g.Wait()
	out.Indexed = int(indexed.Load())
	if err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.Reload: indexed %d of %d tasks: %v", out.Indexed, len(tasks), err)
		return out, err
	}

	uc.l.Infof(ctx, "catalog.usecase.Reload: indexed %d tasks, skipped %d in %s", out.Indexed, out.Skipped, time.Since(start))
	return out, nil
}

func (uc *implUseCase) indexBatch(ctx context.Context, batch []model.CatalogTask) error {
	texts := make([]string, len(batch))
	for i, t := range batch {
		texts[i] = t.TaskText
	}

	vectors, err := uc.embedder.Embed(ctx, pkgVoyage.InputDocument, texts)
	if err != nil {
		return fmt.Errorf("embed batch starting at %s: %w", batch[0].TaskID, err)
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("embed batch starting at %s: got %d vectors for %d tasks", batch[0].TaskID, len(vectors), len(batch))
	}

	points := make([]repository.IndexedTask, len(batch))
	for i, t := range batch {
		points[i] = repository.IndexedTask{Task: t, Vector: vectors[i]}
	}
	return uc.index.Upsert(ctx, points)
}
