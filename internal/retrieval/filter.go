// Package retrieval normalises and filters search hits and groups them into
// per-project context.
package retrieval

import (
	"math"

	"task-suggestion/internal/model"
)

// Confidence labels the quality of a filtered result set.
type Confidence string

const (
	ConfidenceHigh      Confidence = "high"
	ConfidenceMedium    Confidence = "medium"
	ConfidenceLow       Confidence = "low"
	ConfidenceVeryLow   Confidence = "very_low"
	ConfidenceNoResults Confidence = "no_results"
)

const (
	weightQueryRelevance = 0.4
	weightMeanScore      = 0.3
	weightMaxScore       = 0.3
)

// Config holds the score normalisation rule. Raw scores above RawScoreCutoff
// are divided by RawScoreDivisor.
type Config struct {
	RawScoreCutoff  float64
	RawScoreDivisor float64
}

// DefaultConfig matches a BM25-plus-cosine hybrid scale.
func DefaultConfig() Config {
	return Config{
		RawScoreCutoff:  2.0,
		RawScoreDivisor: 10.0,
	}
}

// Filter applies normalisation and thresholds.
type Filter struct {
	cfg Config
}

// New creates a Filter. A non-positive divisor falls back to the default.
func New(cfg Config) *Filter {
	if cfg.RawScoreDivisor <= 0 {
		cfg.RawScoreDivisor = DefaultConfig().RawScoreDivisor
	}
	return &Filter{cfg: cfg}
}

// Normalize maps a raw engine score into [0,1].
func (f *Filter) Normalize(raw float64) float64 {
	score := raw
	if raw > f.cfg.RawScoreCutoff {
		score = raw / f.cfg.RawScoreDivisor
	}
	return math.Max(0, math.Min(score, 1.0))
}

// Apply normalises every result and keeps those at or above threshold.
// Input order is preserved; the input slice is not modified.
func (f *Filter) Apply(results []model.RetrievedTask, threshold float64) []model.RetrievedTask {
	filtered := make([]model.RetrievedTask, 0, len(results))
	for _, r := range results {
		r.NormalizedScore = f.Normalize(r.RawScore)
		if r.NormalizedScore >= threshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ResultConfidence combines query relevance with the mean and max normalised
// scores of filtered results.
func ResultConfidence(filtered []model.RetrievedTask, queryRelevance float64) Confidence {
	if len(filtered) == 0 {
		return ConfidenceNoResults
	}

	sum, max := 0.0, 0.0
	for _, r := range filtered {
		sum += r.NormalizedScore
		if r.NormalizedScore > max {
			max = r.NormalizedScore
		}
	}
	mean := sum / float64(len(filtered))

	combined := weightQueryRelevance*queryRelevance + weightMeanScore*mean + weightMaxScore*max
	switch {
	case combined >= 0.7:
		return ConfidenceHigh
	case combined >= 0.5:
		return ConfidenceMedium
	case combined >= 0.3:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
