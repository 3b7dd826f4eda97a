package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized single-prompt generation request.
// Providers ignore sampling knobs they do not support.
type Request struct {
	SystemInstruction string
	Prompt            string
	MaxTokens         int
	NumSequences      int
	Temperature       float64
	TopK              int
	TopP              float64
}

// Response holds the decoded candidate sequences of one generation.
type Response struct {
	Candidates   []string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
