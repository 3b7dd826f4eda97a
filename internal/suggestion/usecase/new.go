package usecase

import (
	"task-suggestion/internal/generation"
	"task-suggestion/internal/quality"
	"task-suggestion/internal/retrieval"
	"task-suggestion/internal/suggestion"
	"task-suggestion/internal/suggestion/repository"
	pkgLog "task-suggestion/pkg/log"
)

// Config holds the pipeline thresholds and limits.
type Config struct {
	RetrievalThreshold  float64 // passed to the search engine
	FilterThreshold     float64 // applied to normalised scores
	SearchTopK          int
	MaxProjects         int
	PromptProjects      int
	PromptTasks         int
	MaxLength           int
	MaxSequences        int
	MaxSuggestions      int
	SkipGenerationBelow float64 // low confidence with less context relevance skips the model

	Quality   quality.Config
	Retrieval retrieval.Config
}

// DefaultConfig returns the production pipeline settings.
func DefaultConfig() Config {
	return Config{
		RetrievalThreshold:  0.1,
		FilterThreshold:     0.2,
		SearchTopK:          8,
		MaxProjects:         5,
		PromptProjects:      3,
		PromptTasks:         5,
		MaxLength:           150,
		MaxSequences:        3,
		MaxSuggestions:      5,
		SkipGenerationBelow: 0.2,
		Quality:             quality.DefaultConfig(),
		Retrieval:           retrieval.DefaultConfig(),
	}
}

type implUseCase struct {
	l          pkgLog.Logger
	embedder   repository.Embedder
	vectorRepo repository.SearchRepository
	hybridRepo repository.SearchRepository
	generator  repository.Generator
	gate       *quality.Gate
	filter     *retrieval.Filter
	fallbacks  generation.FallbackTable
	cfg        Config
}

// New creates a new suggestion UseCase instance. hybridRepo may be nil, in
// which case hybrid requests use vectorRepo.
func New(
	l pkgLog.Logger,
	embedder repository.Embedder,
	vectorRepo repository.SearchRepository,
	hybridRepo repository.SearchRepository,
	generator repository.Generator,
	cfg Config,
) suggestion.UseCase {
	return &implUseCase{
		l:          l,
		embedder:   embedder,
		vectorRepo: vectorRepo,
		hybridRepo: hybridRepo,
		generator:  generator,
		gate:       quality.New(cfg.Quality, quality.DefaultVocabulary()),
		filter:     retrieval.New(cfg.Retrieval),
		fallbacks:  generation.DefaultFallbackTable(),
		cfg:        cfg,
	}
}
