// Package app wires the suggestion and catalog domains from configuration.
// The HTTP server, the CLI and the MCP server all start from here.
package app

import (
	"context"
	"fmt"

	"task-suggestion/config"
	"task-suggestion/internal/catalog"
	catalogRepo "task-suggestion/internal/catalog/repository"
	catalogQdrant "task-suggestion/internal/catalog/repository/qdrant"
	catalogSqlite "task-suggestion/internal/catalog/repository/sqlite"
	catalogUsecase "task-suggestion/internal/catalog/usecase"
	"task-suggestion/internal/quality"
	"task-suggestion/internal/retrieval"
	"task-suggestion/internal/suggestion"
	"task-suggestion/internal/suggestion/repository/hybrid"
	"task-suggestion/internal/suggestion/repository/llm"
	suggestionQdrant "task-suggestion/internal/suggestion/repository/qdrant"
	"task-suggestion/internal/suggestion/repository/voyage"
	suggestionUsecase "task-suggestion/internal/suggestion/usecase"
	"task-suggestion/pkg/llmprovider"
	pkgLog "task-suggestion/pkg/log"
	pkgQdrant "task-suggestion/pkg/qdrant"
	pkgVoyage "task-suggestion/pkg/voyage"
)

// App holds the use cases shared by every entry point.
type App struct {
	Suggestion suggestion.UseCase
	Catalog    catalog.UseCase
	Models     []string

	store catalogRepo.CatalogRepository
}

// New builds the dependency graph. At least one LLM provider and a Voyage key are required.
func New(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (*App, error) {
	var qdrantOpts []pkgQdrant.Option
	if cfg.Qdrant.APIKey != "" {
		qdrantOpts = append(qdrantOpts, pkgQdrant.WithAPIKey(cfg.Qdrant.APIKey))
	}
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL, qdrantOpts...)

	voyageClient, err := pkgVoyage.New(cfg.Voyage.APIKey)
	if err != nil {
		return nil, fmt.Errorf("voyage: %w", err)
	}
	voyageClient = voyageClient.
		WithModel(cfg.Voyage.Model).
		WithBaseURL(cfg.Voyage.BaseURL).
		WithDimension(cfg.Voyage.Dimension)

	providers, initErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	for _, e := range initErrs {
		l.Warnf(ctx, "app.New: skipping provider: %v", e)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, l)

	store, err := catalogSqlite.New(ctx, cfg.Catalog.Path, l)
	if err != nil {
		return nil, fmt.Errorf("catalog store: %w", err)
	}

	vectorRepo := suggestionQdrant.New(qdrantClient, cfg.Qdrant.CollectionName, l)
	suggestionUC := suggestionUsecase.New(
		l,
		voyage.New(voyageClient, l),
		vectorRepo,
		hybrid.New(vectorRepo, store, l),
		llm.New(manager, l),
		suggestionConfig(cfg.Suggestion),
	)

	index := catalogQdrant.New(qdrantClient, catalogQdrant.Config{
		Collection: cfg.Qdrant.CollectionName,
		VectorSize: cfg.Qdrant.VectorSize,
		Distance:   cfg.Qdrant.Distance,
	}, l)
	catalogUC := catalogUsecase.New(l, store, index, voyageClient, catalogUsecase.Config{
		BatchSize:        cfg.Catalog.EmbedBatchSize,
		Workers:          cfg.Catalog.EmbedWorkers,
		GenerationModels: manager.Models(),
	})

	l.Infof(ctx, "app.New: models=%v collection=%s catalog=%s", manager.Models(), cfg.Qdrant.CollectionName, cfg.Catalog.Path)

	return &App{
		Suggestion: suggestionUC,
		Catalog:    catalogUC,
		Models:     manager.Models(),
		store:      store,
	}, nil
}

// Close releases the catalog database.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

func suggestionConfig(c config.SuggestionConfig) suggestionUsecase.Config {
	return suggestionUsecase.Config{
		RetrievalThreshold:  c.RetrievalThreshold,
		FilterThreshold:     c.FilterThreshold,
		SearchTopK:          c.SearchTopK,
		MaxProjects:         c.MaxProjects,
		PromptProjects:      c.PromptProjects,
		PromptTasks:         c.PromptTasks,
		MaxLength:           c.MaxLength,
		MaxSequences:        c.MaxSequences,
		MaxSuggestions:      c.MaxSuggestions,
		SkipGenerationBelow: c.SkipGenerationBelow,
		Quality: quality.Config{
			MinRelevance: c.MinRelevance,
			EnhanceBelow: c.EnhanceBelow,
			ContextHint:  c.ContextHint,
		},
		Retrieval: retrieval.Config{
			RawScoreCutoff:  c.RawScoreCutoff,
			RawScoreDivisor: c.RawScoreDivisor,
		},
	}
}
