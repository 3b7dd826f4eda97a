package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-suggestion/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		path := r.URL.Path

		switch {
		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 {
				if val, ok := req.Points[0].Payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPut && strings.HasPrefix(path, "/collections/"):
			w.WriteHeader(http.StatusCreated)

		case r.Method == http.MethodGet && path == "/collections/tasks":
			w.Write([]byte(`{"result":{"status":"green","points_count":42,"vectors_count":42},"status":"ok"}`))

		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)

		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if req.ScoreThreshold == nil || *req.ScoreThreshold != 0.25 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{
				"result": [
					{"id": "6f1c", "version": 1, "score": 0.95, "payload": {"task_text": "Set up CI"}}
				],
				"status": "ok",
				"time": 0.05
			}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/delete"):
			var req qdrant.DeletePointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 && req.Points[0] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL+"/", qdrant.WithAPIKey("secret"))
	threshold := 0.25

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(context.Background(), qdrant.CreateCollectionRequest{
			Name:    "tasks",
			Vectors: qdrant.VectorConfig{Size: 1024, Distance: "Cosine"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("GetCollection", func(t *testing.T) {
		info, err := client.GetCollection(context.Background(), "tasks")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.PointsCount != 42 || info.Status != "green" {
			t.Errorf("unexpected info: %+v", info)
		}
	})

	t.Run("GetCollection NotFound", func(t *testing.T) {
		_, err := client.GetCollection(context.Background(), "missing")
		if !errors.Is(err, qdrant.ErrCollectionNotFound) {
			t.Fatalf("expected ErrCollectionNotFound, got %v", err)
		}
	})

	t.Run("DeleteCollection", func(t *testing.T) {
		if err := client.DeleteCollection(context.Background(), "tasks"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "tasks", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "6f1c", Payload: map[string]any{"task_text": "Set up CI"}, Vector: []float32{0.1, 0.2}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "tasks", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "6f1c", Payload: map[string]any{"cause_500": true}, Vector: []float32{0.1}}},
		})
		var se *qdrant.StatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected StatusError 500, got %v", err)
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(context.Background(), "tasks", qdrant.SearchRequest{
			Limit:          10,
			WithPayload:    true,
			ScoreThreshold: &threshold,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].ID != "6f1c" {
			t.Errorf("unexpected search results: %v", resp)
		}
		if resp.Result[0].Payload["task_text"] != "Set up CI" {
			t.Errorf("unexpected payload: %v", resp.Result[0].Payload)
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		_, err := client.SearchPoints(context.Background(), "tasks", qdrant.SearchRequest{Limit: 999})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("DeletePoints", func(t *testing.T) {
		if err := client.DeletePoints(context.Background(), "tasks", []string{"a", "b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeletePoints(context.Background(), "tasks", []string{"cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		anon := qdrant.NewClient(ts.URL)
		if _, err := anon.GetCollection(context.Background(), "tasks"); err == nil {
			t.Fatalf("expected unauthorized error")
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{Name: "tasks"}); err == nil {
			t.Errorf("expected error on canceled context")
		}
		if _, err := client.SearchPoints(ctx, "tasks", qdrant.SearchRequest{}); err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}
