package hybrid

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"task-suggestion/internal/model"
	"task-suggestion/internal/suggestion/repository"
	pkgLog "task-suggestion/pkg/log"
)

// LexicalSearcher runs full text search over the task catalog.
// Scores are positive, higher is better.
type LexicalSearcher interface {
	SearchLexical(ctx context.Context, query string, limit int) ([]model.RetrievedTask, error)
}

type implRepository struct {
	vector  repository.SearchRepository
	lexical LexicalSearcher
	l       pkgLog.Logger
}

// New creates a hybrid repository: vector similarity plus lexical score, summed per task.
func New(vector repository.SearchRepository, lexical LexicalSearcher, l pkgLog.Logger) repository.SearchRepository {
	return &implRepository{vector: vector, lexical: lexical, l: l}
}

// Search runs both searches concurrently. MinScore applies to the summed score.
// Without QueryText it is a plain vector search. A lexical failure degrades to
// vector-only results; a vector failure fails the search.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.RetrievedTask, error) {
	if strings.TrimSpace(opt.QueryText) == "" {
		return r.vector.Search(ctx, opt)
	}

	var vectorHits, lexicalHits []model.RetrievedTask

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vopt := opt
		vopt.MinScore = nil
		hits, err := r.vector.Search(gctx, vopt)
		if err != nil {
			return err
		}
		vectorHits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := r.lexical.SearchLexical(gctx, opt.QueryText, opt.TopK)
		if err != nil {
			r.l.Warnf(ctx, "suggestion.repository.hybrid.Search: lexical search failed, using vector only: %v", err)
			return nil
		}
		lexicalHits = hits
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return fuse(vectorHits, lexicalHits, opt.TopK, opt.MinScore), nil
}

// fuse sums scores of the same task across result lists, sorts by the sum
// and applies the floor and the limit. Task metadata comes from the first
// list that returned the task.
func fuse(vectorHits, lexicalHits []model.RetrievedTask, topK int, minScore *float64) []model.RetrievedTask {
	index := make(map[string]int)
	var merged []model.RetrievedTask

	for _, list := range [][]model.RetrievedTask{vectorHits, lexicalHits} {
		for _, h := range list {
			if i, ok := index[h.TaskID]; ok {
				merged[i].RawScore += h.RawScore
				continue
			}
			index[h.TaskID] = len(merged)
			merged = append(merged, h)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RawScore > merged[j].RawScore
	})

	out := merged[:0]
	for _, h := range merged {
		if minScore != nil && h.RawScore < *minScore {
			continue
		}
		out = append(out, h)
	}
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out
}
