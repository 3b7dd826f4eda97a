package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Qdrant     QdrantConfig
	Voyage     VoyageConfig
	Catalog    CatalogConfig
	Suggestion SuggestionConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int    `validate:"min=1,max=65535"`
	Mode           string `validate:"oneof=debug release test"`
	AdminToken     string
	RequestTimeout time.Duration `validate:"gte=0"`
	TrustedProxies []string      `validate:"dive,ip|cidr"`
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type QdrantConfig struct {
	URL            string `validate:"required,url"`
	APIKey         string
	CollectionName string `validate:"required"`
	VectorSize     int    `validate:"gt=0"`
	Distance       string `validate:"oneof=Cosine Dot Euclid"`
}

type VoyageConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Dimension int `validate:"gte=0"`
}

// CatalogConfig configures the historical task catalog and its reload job.
type CatalogConfig struct {
	Path           string `validate:"required"`
	EmbedBatchSize int    `validate:"min=1"`
	EmbedWorkers   int    `validate:"min=1"`
}

// SuggestionConfig holds the tunable constants of the suggestion pipeline.
type SuggestionConfig struct {
	RetrievalThreshold  float64 `validate:"gte=0,lte=1"`
	FilterThreshold     float64 `validate:"gte=0,lte=1"`
	RawScoreCutoff      float64 `validate:"gt=0"`
	RawScoreDivisor     float64 `validate:"gt=0"`
	SearchTopK          int     `validate:"min=1"`
	MaxProjects         int     `validate:"min=1"`
	PromptProjects      int     `validate:"min=1"`
	PromptTasks         int     `validate:"min=1"`
	MaxLength           int     `validate:"min=1"`
	MaxSequences        int     `validate:"min=1,max=3"`
	MaxSuggestions      int     `validate:"min=1,max=5"`
	SkipGenerationBelow float64 `validate:"gte=0,lte=1"`
	MinRelevance        float64 `validate:"gte=0,lte=1"`
	EnhanceBelow        float64 `validate:"gte=0,lte=1"`
	ContextHint         string
}

type RateLimitConfig struct {
	RequestsPerMin int `validate:"gte=0"` // 0 disables rate limiting
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// RetryDelayDuration parses RetryDelay; invalid or empty values mean zero.
func (c LLMConfig) RetryDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryDelay)
	return d
}

// MaxTotalTimeoutDuration parses MaxTotalTimeout; invalid or empty values mean zero.
func (c LLMConfig) MaxTotalTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.MaxTotalTimeout)
	return d
}

var validate = validator.New()

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the default search paths when path is empty.
// A .env file in the working directory is loaded first when present.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AdminToken = expandEnvVar(v, v.GetString("http_server.admin_token"))
	cfg.HTTPServer.RequestTimeout = v.GetDuration("http_server.request_timeout")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Qdrant.URL = v.GetString("qdrant.url")
	cfg.Qdrant.APIKey = v.GetString("qdrant.api_key")
	cfg.Qdrant.CollectionName = v.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = v.GetInt("qdrant.vector_size")
	cfg.Qdrant.Distance = v.GetString("qdrant.distance")

	cfg.Voyage.APIKey = expandEnvVar(v, v.GetString("voyage.api_key"))
	cfg.Voyage.Model = v.GetString("voyage.model")
	cfg.Voyage.BaseURL = v.GetString("voyage.base_url")
	cfg.Voyage.Dimension = v.GetInt("voyage.dimension")

	cfg.Catalog.Path = v.GetString("catalog.path")
	cfg.Catalog.EmbedBatchSize = v.GetInt("catalog.embed_batch_size")
	cfg.Catalog.EmbedWorkers = v.GetInt("catalog.embed_workers")

	cfg.Suggestion.RetrievalThreshold = v.GetFloat64("suggestion.retrieval_threshold")
	cfg.Suggestion.FilterThreshold = v.GetFloat64("suggestion.filter_threshold")
	cfg.Suggestion.RawScoreCutoff = v.GetFloat64("suggestion.raw_score_cutoff")
	cfg.Suggestion.RawScoreDivisor = v.GetFloat64("suggestion.raw_score_divisor")
	cfg.Suggestion.SearchTopK = v.GetInt("suggestion.search_top_k")
	cfg.Suggestion.MaxProjects = v.GetInt("suggestion.max_projects")
	cfg.Suggestion.PromptProjects = v.GetInt("suggestion.prompt_projects")
	cfg.Suggestion.PromptTasks = v.GetInt("suggestion.prompt_tasks")
	cfg.Suggestion.MaxLength = v.GetInt("suggestion.max_length")
	cfg.Suggestion.MaxSequences = v.GetInt("suggestion.max_sequences")
	cfg.Suggestion.MaxSuggestions = v.GetInt("suggestion.max_suggestions")
	cfg.Suggestion.SkipGenerationBelow = v.GetFloat64("suggestion.skip_generation_below")
	cfg.Suggestion.MinRelevance = v.GetFloat64("suggestion.min_relevance")
	cfg.Suggestion.EnhanceBelow = v.GetFloat64("suggestion.enhance_below")
	cfg.Suggestion.ContextHint = v.GetString("suggestion.context_hint")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
		for _, p := range providersList {
			if providerMap, ok := p.(map[string]interface{}); ok {
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.request_timeout", "60s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("qdrant.url", "http://localhost:6333")
	v.SetDefault("qdrant.collection_name", "tasks")
	v.SetDefault("qdrant.vector_size", 1024)
	v.SetDefault("qdrant.distance", "Cosine")

	v.SetDefault("voyage.model", "voyage-3")

	v.SetDefault("catalog.path", "data/catalog.db")
	v.SetDefault("catalog.embed_batch_size", 20)
	v.SetDefault("catalog.embed_workers", 4)

	v.SetDefault("suggestion.retrieval_threshold", 0.1)
	v.SetDefault("suggestion.filter_threshold", 0.2)
	v.SetDefault("suggestion.raw_score_cutoff", 2.0)
	v.SetDefault("suggestion.raw_score_divisor", 10.0)
	v.SetDefault("suggestion.search_top_k", 8)
	v.SetDefault("suggestion.max_projects", 5)
	v.SetDefault("suggestion.prompt_projects", 3)
	v.SetDefault("suggestion.prompt_tasks", 5)
	v.SetDefault("suggestion.max_length", 150)
	v.SetDefault("suggestion.max_sequences", 3)
	v.SetDefault("suggestion.max_suggestions", 5)
	v.SetDefault("suggestion.skip_generation_below", 0.2)
	v.SetDefault("suggestion.min_relevance", 0.15)
	v.SetDefault("suggestion.enhance_below", 0.5)
	v.SetDefault("suggestion.context_hint", "project task description: ")

	v.SetDefault("rate_limit.requests_per_min", 60)

	// LLM defaults. The suggestion core performs no retries of its own.
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	if cfg.RetryDelay != "" {
		if _, err := time.ParseDuration(cfg.RetryDelay); err != nil {
			return fmt.Errorf("retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if _, err := time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return fmt.Errorf("max_total_timeout: %w", err)
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
