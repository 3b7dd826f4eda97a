package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validYAML = `
http_server:
  port: 9090
  admin_token: secret
  request_timeout: 15s
qdrant:
  url: http://qdrant:6333
  collection_name: project_tasks
  vector_size: 384
voyage:
  api_key: ${TEST_VOYAGE_KEY}
suggestion:
  filter_threshold: 0.25
llm:
  retry_delay: 2s
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
      timeout: 30s
    - name: deepseek
      enabled: false
      priority: 2
      api_key: plain-key
      model: deepseek-chat
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_VOYAGE_KEY", "voyage-from-env")
	t.Setenv("TEST_GEMINI_KEY", "gemini-from-env")
	t.Setenv("CATALOG_EMBED_WORKERS", "8")

	cfg, err := LoadFile(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.AdminToken != "secret" {
		t.Errorf("unexpected http_server: %+v", cfg.HTTPServer)
	}
	if cfg.HTTPServer.RequestTimeout != 15*time.Second {
		t.Errorf("expected 15s request timeout, got %v", cfg.HTTPServer.RequestTimeout)
	}
	if cfg.Qdrant.CollectionName != "project_tasks" || cfg.Qdrant.VectorSize != 384 || cfg.Qdrant.Distance != "Cosine" {
		t.Errorf("unexpected qdrant: %+v", cfg.Qdrant)
	}
	if cfg.Voyage.APIKey != "voyage-from-env" {
		t.Errorf("voyage key not expanded: %q", cfg.Voyage.APIKey)
	}
	if cfg.Catalog.EmbedWorkers != 8 || cfg.Catalog.EmbedBatchSize != 20 {
		t.Errorf("unexpected catalog: %+v", cfg.Catalog)
	}

	s := cfg.Suggestion
	if s.FilterThreshold != 0.25 || s.RetrievalThreshold != 0.1 || s.SearchTopK != 8 || s.MaxSequences != 3 {
		t.Errorf("unexpected suggestion: %+v", s)
	}
	if s.ContextHint != "project task description: " {
		t.Errorf("unexpected context hint: %q", s.ContextHint)
	}

	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if p := cfg.LLM.Providers[0]; p.Name != "gemini" || p.APIKey != "gemini-from-env" || p.Priority != 1 || !p.Enabled {
		t.Errorf("unexpected provider: %+v", p)
	}
	if cfg.LLM.RetryAttempts != 1 {
		t.Errorf("expected 1 retry attempt by default, got %d", cfg.LLM.RetryAttempts)
	}
	if cfg.LLM.RetryDelayDuration() != 2*time.Second || cfg.LLM.MaxTotalTimeoutDuration() != 60*time.Second {
		t.Errorf("unexpected durations: %v %v", cfg.LLM.RetryDelayDuration(), cfg.LLM.MaxTotalTimeoutDuration())
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		wantErr string
	}{
		{"bad distance", [2]string{"vector_size: 384", "vector_size: 384\n  distance: Manhattan"}, "Distance"},
		{"zero vector size", [2]string{"vector_size: 384", "vector_size: 0"}, "VectorSize"},
		{"threshold out of range", [2]string{"filter_threshold: 0.25", "filter_threshold: 1.5"}, "FilterThreshold"},
		{"no enabled providers", [2]string{"enabled: true", "enabled: false"}, "no enabled LLM providers"},
		{"bad retry delay", [2]string{"retry_delay: 2s", "retry_delay: soon"}, "retry_delay"},
		{"too many sequences", [2]string{"filter_threshold: 0.25", "filter_threshold: 0.25\n  max_sequences: 4"}, "MaxSequences"},
		{"negative rate limit", [2]string{"request_timeout: 15s", "request_timeout: 15s\nrate_limit:\n  requests_per_min: -1"}, "RequestsPerMin"},
		{"bad trusted proxy", [2]string{"request_timeout: 15s", "request_timeout: 15s\n  trusted_proxies: [\"not-an-ip\"]"}, "TrustedProxies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Replace(validYAML, tt.replace[0], tt.replace[1], 1)
			_, err := LoadFile(writeConfig(t, body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFile_HTTPOptions(t *testing.T) {
	body := strings.Replace(validYAML, "request_timeout: 15s",
		"request_timeout: 15s\n  trusted_proxies: [\"10.0.0.1\", \"172.16.0.0/12\"]\nrate_limit:\n  requests_per_min: 0", 1)

	cfg, err := LoadFile(writeConfig(t, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateLimit.RequestsPerMin != 0 {
		t.Errorf("expected rate limiting disabled, got %d", cfg.RateLimit.RequestsPerMin)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 2 || cfg.HTTPServer.TrustedProxies[1] != "172.16.0.0/12" {
		t.Errorf("unexpected trusted proxies: %v", cfg.HTTPServer.TrustedProxies)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty", LLMConfig{}, true},
		{"missing name", LLMConfig{Providers: []ProviderConfig{{Model: "m", Enabled: true, Priority: 1}}}, true},
		{"missing model", LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}}, true},
		{"zero priority", LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Model: "m", Enabled: true}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
			{Name: "openai", Model: "m", Enabled: true, Priority: 1},
		}}, true},
		{"valid", LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Model: "m", Enabled: true, Priority: 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
