package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"task-suggestion/internal/generation"
	"task-suggestion/internal/model"
	"task-suggestion/internal/quality"
	"task-suggestion/internal/retrieval"
	"task-suggestion/internal/suggestion"
	"task-suggestion/internal/suggestion/repository"
	"task-suggestion/pkg/textnorm"
)

// Generated entries of this many characters or fewer are dropped.
const minTaskChars = 5

// Suggest gates the description, retrieves similar tasks, assesses the
// context, generates and parses suggestions. Only an out of range
// NumSuggestions is reported as an error.
func (uc *implUseCase) Suggest(ctx context.Context, input suggestion.SuggestInput) (suggestion.SuggestOutput, error) {
	start := time.Now()

	num := input.NumSuggestions
	if num == 0 {
		num = suggestion.DefaultNumSuggestions
	}
	if num < 1 || num > suggestion.MaxNumSuggestions {
		return suggestion.SuggestOutput{}, suggestion.ErrInvalidNumSuggestions
	}

	_, md := uc.gate.ValidateAndEnhance(input.Description)
	if !md.ShouldProcess {
		uc.l.Infof(ctx, "suggestion.usecase.Suggest: description rejected (coherent=%t relevance=%.2f)",
			md.IsCoherent, md.RelevanceScore)
		return suggestion.SuggestOutput{
			Suggestions:         []string{generation.RejectedFallback},
			SimilarTasks:        []model.RetrievedTask{},
			Confidence:          suggestion.ConfidenceNotApplicable,
			RetrievalConfidence: retrieval.ConfidenceNoResults,
			Query:               md,
			Rejected:            true,
			ProcessingTime:      time.Since(start),
		}, nil
	}

	description := textnorm.Preprocess(input.Description)
	query := description
	if md.EnhancementApplied {
		query = uc.cfg.Quality.ContextHint + description
	}

	out := uc.run(ctx, description, query, md, num, input.UseHybrid)
	out.Query = md
	out.ProcessingTime = time.Since(start)

	uc.l.Infof(ctx, "suggestion.usecase.Suggest: confidence=%s retrieval=%s similar=%d suggestions=%d degraded=%t",
		out.Confidence, out.RetrievalConfidence, len(out.SimilarTasks), len(out.Suggestions), out.Degraded)
	return out, nil
}

// run executes retrieval through parsing. A collaborator error or a panic
// ends the run with the fallback list of the last computed tier, or the
// generic list when no tier was computed yet.
func (uc *implUseCase) run(ctx context.Context, description, query string, md quality.Metadata, num int, useHybrid bool) (out suggestion.SuggestOutput) {
	var tier generation.Confidence

	out.SimilarTasks = []model.RetrievedTask{}
	out.Confidence = suggestion.ConfidenceNotApplicable
	out.RetrievalConfidence = retrieval.ConfidenceNoResults

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "suggestion.usecase.Suggest: recovered from panic: %v", r)
			out.Suggestions = uc.limit(uc.fallbacks.For(tier))
			out.Degraded = true
		}
	}()

	vector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return uc.degrade(ctx, out, tier, "embedding", err)
	}

	floor := uc.cfg.RetrievalThreshold
	hits, err := uc.searchRepo(useHybrid).Search(ctx, repository.SearchOptions{
		QueryText:   description,
		QueryVector: vector,
		TopK:        uc.cfg.SearchTopK,
		MinScore:    &floor,
	})
	if err != nil {
		return uc.degrade(ctx, out, tier, "search", err)
	}

	filtered := uc.filter.Apply(hits, uc.cfg.FilterThreshold)
	projects := retrieval.GroupByProject(filtered, uc.cfg.MaxProjects)
	out.SimilarTasks = retrieval.Flatten(projects, filtered)
	out.RetrievalConfidence = retrieval.ResultConfidence(filtered, md.RelevanceScore)

	assessment := generation.Assess(description, projects)
	tier = generation.ConfidenceFor(assessment, &md)
	out.Confidence = string(tier)

	if tier == generation.ConfidenceVeryLow ||
		(tier == generation.ConfidenceLow && assessment.ContextRelevance < uc.cfg.SkipGenerationBelow) {
		uc.l.Debugf(ctx, "suggestion.usecase.Suggest: skipping generation for %s (context_relevance=%.2f)",
			tier, assessment.ContextRelevance)
		out.Suggestions = uc.limit(uc.fallbacks.For(tier))
		return out
	}

	prompt := generation.BuildPrompt(description, projects, assessment, generation.PromptConfig{
		MaxProjects:        uc.cfg.PromptProjects,
		MaxTasksPerProject: uc.cfg.PromptTasks,
		NumTasks:           uc.cfg.MaxSuggestions,
	})
	sampling := generation.SamplingFor(tier)

	sequences, err := uc.generator.Generate(ctx, repository.GenerateOptions{
		Prompt:       prompt,
		MaxLength:    uc.cfg.MaxLength,
		NumSequences: generation.CapSequences(num, uc.cfg.MaxSequences),
		Temperature:  sampling.Temperature,
		TopK:         sampling.TopK,
		TopP:         sampling.TopP,
	})
	if err != nil {
		return uc.degrade(ctx, out, tier, "generation", err)
	}

	out.Suggestions = uc.finalize(sequences, tier)
	return out
}

func (uc *implUseCase) searchRepo(useHybrid bool) repository.SearchRepository {
	if useHybrid && uc.hybridRepo != nil {
		return uc.hybridRepo
	}
	return uc.vectorRepo
}

func (uc *implUseCase) degrade(ctx context.Context, out suggestion.SuggestOutput, tier generation.Confidence, stage string, err error) suggestion.SuggestOutput {
	uc.l.Warnf(ctx, "suggestion.usecase.Suggest: %s failed, using fallback tasks: %v", stage, err)
	out.Suggestions = uc.limit(uc.fallbacks.For(tier))
	out.Degraded = true
	return out
}

// finalize parses every sequence, deduplicates across them and applies the
// fallback policy: under two tasks use the fallback list, under the maximum
// pad with it.
func (uc *implUseCase) finalize(sequences []string, tier generation.Confidence) []string {
	seen := make(map[string]struct{})
	var tasks []string

	for _, seq := range sequences {
		for _, t := range textnorm.ParseGenerated(seq) {
			t = strings.TrimSpace(t)
			if utf8.RuneCountInString(t) <= minTaskChars {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			tasks = append(tasks, t)
		}
	}

	switch {
	case len(tasks) < 2:
		return uc.limit(uc.fallbacks.For(tier))
	case len(tasks) < uc.cfg.MaxSuggestions:
		tasks = append(tasks, uc.fallbacks.For(tier)...)
	}
	return uc.limit(tasks)
}

func (uc *implUseCase) limit(tasks []string) []string {
	if len(tasks) > uc.cfg.MaxSuggestions {
		return tasks[:uc.cfg.MaxSuggestions]
	}
	return tasks
}
