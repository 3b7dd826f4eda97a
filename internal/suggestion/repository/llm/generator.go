package llm

import (
	"context"
	"fmt"

	"task-suggestion/internal/suggestion/repository"
	"task-suggestion/pkg/llmprovider"
	pkgLog "task-suggestion/pkg/log"
)

// SystemInstruction is sent with every generation request.
const SystemInstruction = "You write short, concrete project tasks. Answer only with a numbered list, one task per line."

// ContentGenerator is satisfied by *llmprovider.Manager.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implRepository struct {
	gen ContentGenerator
	l   pkgLog.Logger
}

// New creates a Generator on top of the provider manager.
func New(gen ContentGenerator, l pkgLog.Logger) repository.Generator {
	return &implRepository{gen: gen, l: l}
}

// Generate returns the decoded candidate sequences.
func (r *implRepository) Generate(ctx context.Context, opt repository.GenerateOptions) ([]string, error) {
	resp, err := r.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: SystemInstruction,
		Prompt:            opt.Prompt,
		MaxTokens:         opt.MaxLength,
		NumSequences:      opt.NumSequences,
		Temperature:       opt.Temperature,
		TopK:              opt.TopK,
		TopP:              opt.TopP,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate: %w", err)
	}

	r.l.Debugf(ctx, "suggestion.repository.llm.Generate: %s/%s returned %d sequences",
		resp.ProviderName, resp.ModelName, len(resp.Candidates))
	return resp.Candidates, nil
}
