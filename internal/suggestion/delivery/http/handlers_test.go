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

	"task-suggestion/internal/middleware"
	"task-suggestion/internal/model"
	"task-suggestion/internal/quality"
	"task-suggestion/internal/retrieval"
	"task-suggestion/internal/suggestion"
	"task-suggestion/pkg/log"
	"task-suggestion/pkg/response"
)

type mockUseCase struct {
	suggestOut suggestion.SuggestOutput
	suggestErr error
	suggestIn  suggestion.SuggestInput

	validateOut suggestion.ValidateOutput
	validateErr error
	validateIn  suggestion.ValidateInput
}

func (m *mockUseCase) Suggest(ctx context.Context, in suggestion.SuggestInput) (suggestion.SuggestOutput, error) {
	m.suggestIn = in
	return m.suggestOut, m.suggestErr
}

func (m *mockUseCase) Validate(ctx context.Context, in suggestion.ValidateInput) (suggestion.ValidateOutput, error) {
	m.validateIn = in
	return m.validateOut, m.validateErr
}

func newRouter(uc suggestion.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSuggest(t *testing.T) {
	uc := &mockUseCase{suggestOut: suggestion.SuggestOutput{
		Suggestions: []string{"Design the database schema", "Implement login flow"},
		SimilarTasks: []model.RetrievedTask{
			{TaskID: "t1", TaskText: "Design login page", ProjectID: "p1", ProjectName: "Shop", RawScore: 3.1, NormalizedScore: 0.31},
		},
		Confidence:          "high_confidence",
		RetrievalConfidence: retrieval.ConfidenceMedium,
		Query:               quality.Metadata{IsCoherent: true, ShouldProcess: true, RelevanceScore: 0.8},
		ProcessingTime:      1500 * time.Millisecond,
	}}
	r := newRouter(uc)

	w := post(r, "/api/v1/suggest-tasks", `{"project_description":"online shop","num_suggestions":4,"use_hybrid_search":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, suggestion.SuggestInput{Description: "online shop", NumSuggestions: 4, UseHybrid: true}, uc.suggestIn)

	env := decode(t, w)
	assert.Equal(t, response.MessageSuccess, env.Message)

	var resp suggestResp
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, []taskSuggestionResp{{TaskText: "Design the database schema"}, {TaskText: "Implement login flow"}}, resp.Suggestions)
	require.Len(t, resp.SimilarTasks, 1)
	assert.InDelta(t, 0.31, resp.SimilarTasks[0].Score, 1e-9)
	assert.Equal(t, "high_confidence", resp.Confidence)
	assert.Equal(t, "medium", resp.RetrievalConfidence)
	assert.InDelta(t, 1.5, resp.ProcessingTime, 1e-9)
	assert.True(t, resp.Query.ShouldProcess)
}

func TestSuggest_DefaultsAndErrors(t *testing.T) {
	t.Run("omitted num_suggestions reaches the use case as zero", func(t *testing.T) {
		uc := &mockUseCase{}
		w := post(newRouter(uc), "/api/v1/suggest-tasks", `{"project_description":"x"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, uc.suggestIn.NumSuggestions)
	})

	t.Run("out of range num_suggestions", func(t *testing.T) {
		for _, body := range []string{`{"num_suggestions":6}`, `{"num_suggestions":-2}`} {
			uc := &mockUseCase{}
			w := post(newRouter(uc), "/api/v1/suggest-tasks", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, suggestion.ErrInvalidNumSuggestions.Error(), decode(t, w).Message, body)
			assert.Empty(t, uc.suggestIn.Description, body)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(newRouter(&mockUseCase{}), "/api/v1/suggest-tasks", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("use case errors", func(t *testing.T) {
		w := post(newRouter(&mockUseCase{suggestErr: suggestion.ErrInvalidNumSuggestions}), "/api/v1/suggest-tasks", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = post(newRouter(&mockUseCase{suggestErr: errors.New("boom")}), "/api/v1/suggest-tasks", `{}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestValidate(t *testing.T) {
	uc := &mockUseCase{validateOut: suggestion.ValidateOutput{
		Text:            "build api",
		EnhancedText:    "project task description: build api",
		Metadata:        quality.Metadata{IsCoherent: true, WordCount: 2, EnhancementApplied: true},
		Recommendations: []string{"Add more detail"},
	}}
	r := newRouter(uc)

	w := post(r, "/api/v1/validate-description", `{"text":"build api"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "build api", uc.validateIn.Text)

	var resp validateResp
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	assert.Equal(t, "project task description: build api", resp.EnhancedText)
	assert.Equal(t, 2, resp.Metadata.WordCount)
	assert.Equal(t, []string{"Add more detail"}, resp.Recommendations)

	w = post(newRouter(&mockUseCase{}), "/api/v1/validate-description", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// blank text is scored, not rejected
	for _, text := range []string{"", "   "} {
		uc := &mockUseCase{validateOut: suggestion.ValidateOutput{
			Text:            text,
			Recommendations: []string{"Describe the project in one or more clear sentences using ordinary words."},
		}}
		w := post(newRouter(uc), "/api/v1/validate-description", `{"text":"`+text+`"}`)
		require.Equal(t, http.StatusOK, w.Code, text)
		assert.Equal(t, text, uc.validateIn.Text)
	}
}

func TestSuggest_SimilarTaskFields(t *testing.T) {
	uc := &mockUseCase{suggestOut: suggestion.SuggestOutput{
		SimilarTasks: []model.RetrievedTask{{
			TaskID: "t1", TaskText: "Design login page", ProjectID: "p1", ProjectName: "Shop",
			ProjectDescription: "Online store for handmade goods", RawScore: 0.8, NormalizedScore: 0.8,
		}},
	}}

	w := post(newRouter(uc), "/api/v1/suggest-tasks", `{"project_description":"online shop"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SimilarTasks []map[string]any `json:"similar_tasks"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	require.Len(t, resp.SimilarTasks, 1)
	assert.Equal(t, "Online store for handmade goods", resp.SimilarTasks[0]["project_description"])
	assert.Equal(t, "Shop", resp.SimilarTasks[0]["project_name"])
}
