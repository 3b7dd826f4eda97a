package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-suggestion/internal/catalog"
	"task-suggestion/internal/middleware"
	"task-suggestion/internal/suggestion"
	"task-suggestion/pkg/log"
)

type stubSuggestion struct{}

func (stubSuggestion) Suggest(ctx context.Context, in suggestion.SuggestInput) (suggestion.SuggestOutput, error) {
	return suggestion.SuggestOutput{Suggestions: []string{"Write the project charter"}, Confidence: "medium_confidence"}, nil
}

func (stubSuggestion) Validate(ctx context.Context, in suggestion.ValidateInput) (suggestion.ValidateOutput, error) {
	return suggestion.ValidateOutput{Text: in.Text}, nil
}

type stubCatalog struct {
	catalog.UseCase
	available bool
}

func (s stubCatalog) Status(ctx context.Context) (catalog.StatusOutput, error) {
	if !s.available {
		return catalog.StatusOutput{}, errors.New("down")
	}
	return catalog.StatusOutput{VectorStore: catalog.VectorStoreStatus{Available: true}}, nil
}

func newServer(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	cfg.Logger = log.NewNop()
	cfg.Port = 8080
	cfg.Mode = "test"
	cfg.Environment = "production"
	if cfg.SuggestionUseCase == nil {
		cfg.SuggestionUseCase = stubSuggestion{}
	}
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	return srv.Handler()
}

func request(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Logger: log.NewNop(), Mode: "test", SuggestionUseCase: stubSuggestion{}})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{
		Logger: log.NewNop(), Mode: "test", Port: 8080, SuggestionUseCase: stubSuggestion{},
		TrustedProxies: []string{"not-an-ip"},
	})
	assert.Error(t, err)
}

func TestRateLimitIgnoresUntrustedForwarding(t *testing.T) {
	h := newServer(t, Config{Middleware: middleware.Config{RequestsPerMin: 10}})

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/validate-description", strings.NewReader(`{"text":"online shop"}`))
		req.Header.Set("Content-Type", "application/json")
		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send(""))
	assert.Equal(t, http.StatusTooManyRequests, send(""))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.50"))
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, Config{})
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := request(h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}
}

func TestReadyDependsOnVectorStore(t *testing.T) {
	w := request(newServer(t, Config{CatalogUseCase: stubCatalog{}}), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = request(newServer(t, Config{CatalogUseCase: stubCatalog{available: true}}), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainRoutes(t *testing.T) {
	h := newServer(t, Config{Middleware: middleware.Config{RequestsPerMin: 60}})

	w := request(h, http.MethodPost, "/api/v1/suggest-tasks", `{"project_description":"online shop"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Write the project charter")
	assert.NotEmpty(t, w.Header().Get(middleware.ProcessTimeHeader))
	assert.NotEmpty(t, w.Header().Get(middleware.TraceIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = request(h, http.MethodPost, "/api/v1/validate-description", `{"text":"online shop"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// catalog routes are absent without a catalog
	w = request(h, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, err := New(log.NewNop(), Config{
		Logger: log.NewNop(), Port: 18093, Mode: "test", SuggestionUseCase: stubSuggestion{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
