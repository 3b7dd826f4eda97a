package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-suggestion/pkg/openai"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	N           int     `json:"n"`
	MaxTokens   int     `json:"max_tokens"`
}

func TestOpenAI_GenerateContent(t *testing.T) {
	var last chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			return
		}
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		last = chatRequest{}
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if last.Messages[len(last.Messages)-1].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "deepseek-chat",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "1. Design schema"}, "finish_reason": "stop"},
				{"index": 1, "message": {"role": "assistant", "content": ""}, "finish_reason": "stop"},
				{"index": 2, "message": {"role": "assistant", "content": "1. Write tests"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", Model: "deepseek-chat", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Validate", func(t *testing.T) {
		if _, err := openai.New(openai.Config{}); err == nil {
			t.Fatalf("expected error for empty api key")
		}
		cfg := openai.Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != openai.DefaultModel || cfg.BaseURL != openai.DefaultBaseURL || cfg.HTTPClient == nil {
			t.Errorf("defaults not applied: %+v", cfg)
		}
	})

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			SystemInstruction: "You plan projects.",
			Prompt:            "Project description: shop",
			Temperature:       0.8,
			TopP:              0.85,
			N:                 3,
			MaxTokens:         150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Texts) != 2 || resp.Texts[0] != "1. Design schema" || resp.Texts[1] != "1. Write tests" {
			t.Errorf("unexpected texts: %q", resp.Texts)
		}
		if resp.Usage.TotalTokens != 20 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}

		if last.Model != "deepseek-chat" || len(last.Messages) != 2 || last.Messages[0].Role != "system" {
			t.Errorf("unexpected request: %+v", last)
		}
		if last.N != 3 || last.MaxTokens != 150 || last.TopP != 0.85 || last.Temperature != 0.8 {
			t.Errorf("unexpected sampling params: %+v", last)
		}
	})

	t.Run("Single message without system", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &openai.Request{Prompt: "plain"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(last.Messages) != 1 || last.Messages[0].Role != "user" || last.N != 0 {
			t.Errorf("unexpected request: %+v", last)
		}
	})

	t.Run("Empty prompt", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &openai.Request{}); err == nil {
			t.Fatalf("expected error for empty prompt")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &openai.Request{Prompt: "cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, _ := openai.New(openai.Config{APIKey: "nope", BaseURL: ts.URL})
		if _, err := bad.GenerateContent(context.Background(), &openai.Request{Prompt: "hi"}); err == nil {
			t.Fatalf("expected error for bad key")
		}
	})
}
