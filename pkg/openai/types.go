package openai

import (
	"fmt"
	"net/http"

	sdk "github.com/openai/openai-go/v3"
)

// Config holds client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type openAIImpl struct {
	client sdk.Client
	model  string
}

// Request is a single-turn chat completion request.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	TopP              float64
	N                 int
	MaxTokens         int
}

// Response holds the content of each returned choice, in order.
type Response struct {
	Texts []string
	Usage *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
