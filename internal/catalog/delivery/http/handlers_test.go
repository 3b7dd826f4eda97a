package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-suggestion/internal/catalog"
	"task-suggestion/internal/middleware"
	"task-suggestion/pkg/log"
)

type mockUseCase struct {
	startErr  error
	startIn   *catalog.ReloadInput
	status    catalog.StatusOutput
	statusErr error
}

func (m *mockUseCase) Import(ctx context.Context, in catalog.ImportInput) (catalog.ImportOutput, error) {
	return catalog.ImportOutput{}, nil
}

func (m *mockUseCase) Reload(ctx context.Context, in catalog.ReloadInput) (catalog.ReloadOutput, error) {
	return catalog.ReloadOutput{}, nil
}

func (m *mockUseCase) StartReload(ctx context.Context, in catalog.ReloadInput) error {
	m.startIn = &in
	return m.startErr
}

func (m *mockUseCase) Status(ctx context.Context) (catalog.StatusOutput, error) {
	return m.status, m.statusErr
}

func newRouter(uc catalog.UseCase, adminToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{AdminToken: adminToken})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func serve(r *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReload(t *testing.T) {
	t.Run("accepted with options", func(t *testing.T) {
		uc := &mockUseCase{}
		w := serve(newRouter(uc, ""), http.MethodPost, "/api/v1/reload-data", `{"recreate":true}`, nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
		require.NotNil(t, uc.startIn)
		assert.True(t, uc.startIn.Recreate)
	})

	t.Run("empty body", func(t *testing.T) {
		uc := &mockUseCase{}
		w := serve(newRouter(uc, ""), http.MethodPost, "/api/v1/reload-data", "", nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
		require.NotNil(t, uc.startIn)
		assert.False(t, uc.startIn.Recreate)
	})

	t.Run("admin token", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newRouter(uc, "tok")

		w := serve(r, http.MethodPost, "/api/v1/reload-data", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, uc.startIn)

		w = serve(r, http.MethodPost, "/api/v1/reload-data", "", map[string]string{middleware.AdminTokenHeader: "tok"})
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("already running", func(t *testing.T) {
		w := serve(newRouter(&mockUseCase{startErr: catalog.ErrReloadInProgress}, ""), http.MethodPost, "/api/v1/reload-data", "", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestStatus(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	uc := &mockUseCase{status: catalog.StatusOutput{
		Status:         "degraded",
		VectorStore:    catalog.VectorStoreStatus{Collection: "tasks"},
		Catalog:        catalog.CatalogCounts{Projects: 3, Tasks: 12},
		EmbeddingModel: "voyage-3",
		LastReload:     catalog.LastReload{State: catalog.ReloadRunning, StartedAt: started},
	}}

	w := serve(newRouter(uc, ""), http.MethodGet, "/api/v1/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data struct {
			Status      string `json:"status"`
			VectorStore struct {
				Available bool `json:"available"`
			} `json:"vector_store"`
			Catalog          catalogResp `json:"catalog"`
			GenerationModels []string    `json:"generation_models"`
			LastReload       struct {
				State      string  `json:"state"`
				StartedAt  string  `json:"started_at"`
				FinishedAt *string `json:"finished_at"`
			} `json:"last_reload"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "degraded", env.Data.Status)
	assert.False(t, env.Data.VectorStore.Available)
	assert.Equal(t, catalogResp{Projects: 3, Tasks: 12}, env.Data.Catalog)
	assert.Equal(t, []string{}, env.Data.GenerationModels)
	assert.Equal(t, "running", env.Data.LastReload.State)
	assert.Equal(t, "2026-03-01 10:00:00", env.Data.LastReload.StartedAt)
	assert.Nil(t, env.Data.LastReload.FinishedAt)

	w = serve(newRouter(&mockUseCase{statusErr: errors.New("disk")}, ""), http.MethodGet, "/api/v1/status", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
