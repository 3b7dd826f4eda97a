// Package quality scores incoming project descriptions for coherence and
// domain relevance and decides whether they are worth processing.
package quality

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minCoherentChars      = 3
	minCoherentWords      = 2
	minUniqueWordRatio    = 0.30
	maxAlphaRun           = 20
	maxSpecialCharRatio   = 0.30
	minWordsForRelevance  = 2
	tierHighThreshold     = 0.7
	tierMediumThreshold   = 0.4
	tierLowThreshold      = 0.2
	relevanceScoreCeiling = 1.0
)

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Analyze measures text.
func Analyze(text string) Stats {
	words := strings.Fields(text)
	st := Stats{
		Length:    utf8.RuneCountInString(text),
		WordCount: len(words),
	}

	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[strings.ToLower(w)] = struct{}{}
		}
		st.UniqueWordRatio = float64(len(unique)) / float64(len(words))
	}

	special, run := 0, 0
	for _, r := range text {
		if isASCIILetter(r) {
			run++
			if run > st.LongestAlphaRun {
				st.LongestAlphaRun = run
			}
		} else {
			run = 0
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	if st.Length > 0 {
		st.SpecialCharRatio = float64(special) / float64(st.Length)
	}

	return st
}

// IsCoherent rejects too-short, repetitive, garbage-token and symbol-heavy text.
func IsCoherent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minCoherentChars {
		return false
	}
	return coherent(Analyze(text))
}

func coherent(st Stats) bool {
	if st.WordCount < minCoherentWords {
		return false
	}
	if st.UniqueWordRatio < minUniqueWordRatio {
		return false
	}
	if st.LongestAlphaRun >= maxAlphaRun {
		return false
	}
	return st.SpecialCharRatio <= maxSpecialCharRatio
}

// Relevance scores text against vocab.
func Relevance(text string, vocab Vocabulary) (float64, Tier) {
	lower := strings.ToLower(text)
	tokens := tokenRe.FindAllString(lower, -1)
	if len(tokens) < minWordsForRelevance {
		return 0.0, TierVeryLow
	}

	hits := 0.0
	for _, tok := range tokens {
		hits += vocab.Weights[tok]
	}
	score := math.Min(hits/(vocab.maxWeight()*float64(len(tokens))), relevanceScoreCeiling)

	for _, p := range vocab.Patterns {
		if p.MatchString(lower) {
			score += vocab.PatternBonus
		}
	}
	score = math.Min(score, relevanceScoreCeiling)

	return score, TierFor(score)
}

// TierFor maps a relevance score to its tier.
func TierFor(score float64) Tier {
	switch {
	case score >= tierHighThreshold:
		return TierHigh
	case score >= tierMediumThreshold:
		return TierMedium
	case score >= tierLowThreshold:
		return TierLow
	default:
		return TierVeryLow
	}
}

// Gate runs coherence and relevance checks with fixed thresholds.
type Gate struct {
	cfg   Config
	vocab Vocabulary
}

// New creates a Gate.
func New(cfg Config, vocab Vocabulary) *Gate {
	return &Gate{cfg: cfg, vocab: vocab}
}

// ValidateAndEnhance scores text and, for weak but acceptable queries,
// prefixes the configured context hint. Incoherent text is returned unchanged
// with ShouldProcess false.
func (g *Gate) ValidateAndEnhance(text string) (string, Metadata) {
	st := Analyze(text)
	md := Metadata{
		OriginalLength:   st.Length,
		WordCount:        st.WordCount,
		UniqueWordRatio:  st.UniqueWordRatio,
		SpecialCharRatio: st.SpecialCharRatio,
		IsCoherent:       IsCoherent(text),
		Confidence:       TierVeryLow,
	}
	if !md.IsCoherent {
		return text, md
	}

	md.RelevanceScore, md.Confidence = Relevance(text, g.vocab)
	md.ShouldProcess = md.RelevanceScore >= g.cfg.MinRelevance

	if md.ShouldProcess && md.RelevanceScore < g.cfg.EnhanceBelow && g.cfg.ContextHint != "" {
		md.EnhancementApplied = true
		return g.cfg.ContextHint + text, md
	}
	return text, md
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
