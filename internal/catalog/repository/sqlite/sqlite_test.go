package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-suggestion/internal/catalog/repository"
	"task-suggestion/internal/model"
	pkgLog "task-suggestion/pkg/log"
)

func newTestRepo(t *testing.T) repository.CatalogRepository {
	t.Helper()
	repo, err := New(context.Background(), filepath.Join(t.TempDir(), "data", "catalog.db"), pkgLog.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seed(t *testing.T, repo repository.CatalogRepository) {
	t.Helper()
	err := repo.ImportProjects(context.Background(),
		[]model.Project{
			{ID: "p1", Name: "Online Shop", Description: "E-commerce site with payments"},
			{ID: "p2", Name: "Mobile Banking", Description: "Banking app for android"},
		},
		[]model.Task{
			{ID: "t1", ProjectID: "p1", Text: "Integrate payment gateway"},
			{ID: "t2", ProjectID: "p1", Text: "Design product catalog pages"},
			{ID: "t3", ProjectID: "p2", Text: "Implement biometric login"},
		},
	)
	require.NoError(t, err)
}

func TestImportAndList(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	projects, tasks, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, projects)
	assert.Equal(t, 3, tasks)

	list, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, model.CatalogTask{
		TaskID: "t1", TaskText: "Integrate payment gateway",
		ProjectID: "p1", ProjectName: "Online Shop", ProjectDescription: "E-commerce site with payments",
	}, list[0])
}

func TestImportUpserts(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	// rename a project and move a task
	err := repo.ImportProjects(ctx,
		[]model.Project{{ID: "p1", Name: "Web Store", Description: "E-commerce site with payments"}},
		[]model.Task{{ID: "t3", ProjectID: "p1", Text: "Implement biometric login"}},
	)
	require.NoError(t, err)

	projects, tasks, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, projects)
	assert.Equal(t, 3, tasks)

	hits, err := repo.SearchLexical(ctx, "store", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	hits, err = repo.SearchLexical(ctx, "biometric", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "p1", hits[0].ProjectID)
	assert.Equal(t, "Web Store", hits[0].ProjectName)

	hits, err = repo.SearchLexical(ctx, "shop", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestImportUnknownProject(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.ImportProjects(context.Background(), nil, []model.Task{{ID: "t1", ProjectID: "nope", Text: "Orphan task here"}})
	assert.Error(t, err)

	_, tasks, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, tasks)
}

func TestSearchLexical(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	t.Run("task text outranks project fields", func(t *testing.T) {
		hits, err := repo.SearchLexical(ctx, "payments gateway", 10)
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "t1", hits[0].TaskID)
		assert.Greater(t, hits[0].RawScore, hits[1].RawScore)
		for _, h := range hits {
			assert.Positive(t, h.RawScore)
		}
	})

	t.Run("tokens are OR-ed", func(t *testing.T) {
		hits, err := repo.SearchLexical(ctx, "biometric catalog", 10)
		require.NoError(t, err)
		assert.Len(t, hits, 2)
	})

	t.Run("limit", func(t *testing.T) {
		hits, err := repo.SearchLexical(ctx, "payments gateway", 1)
		require.NoError(t, err)
		assert.Len(t, hits, 1)
	})

	t.Run("operators are neutralised", func(t *testing.T) {
		hits, err := repo.SearchLexical(ctx, `login" OR NEAR(* -`, 10)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "t3", hits[0].TaskID)
	})

	t.Run("empty query", func(t *testing.T) {
		hits, err := repo.SearchLexical(ctx, " !! ", 10)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestSanitizeFTS(t *testing.T) {
	assert.Equal(t, `"web" OR "shop"`, sanitizeFTS("Web shop, web!"))
	assert.Equal(t, "", sanitizeFTS(`"*"`))
}
