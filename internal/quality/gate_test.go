package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCoherent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"two chars", "ab", false},
		{"single word", "database", false},
		{"long alphabetic run", "aaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"garbage token inside sentence", "build the qwertyuiopasdfghjklzxcv app", false},
		{"repetitive spam", strings.Repeat("buy ", 10), false},
		{"symbol heavy", "!!! ??? ### $$$ build", false},
		{"plain description", "Build an online store with payment integration", true},
		{"short but fine", "mobile app", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCoherent(tt.text))
		})
	}
}

func TestRelevance(t *testing.T) {
	vocab := DefaultVocabulary()

	t.Run("domain heavy text is high or medium", func(t *testing.T) {
		score, tier := Relevance("Implement backend API integration testing", vocab)
		assert.Contains(t, []Tier{TierHigh, TierMedium}, tier)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("no domain terms is low or very low", func(t *testing.T) {
		score, tier := Relevance("xyz qwe rty", vocab)
		assert.Contains(t, []Tier{TierLow, TierVeryLow}, tier)
		assert.Zero(t, score)
	})

	t.Run("fewer than two words", func(t *testing.T) {
		score, tier := Relevance("project", vocab)
		assert.Zero(t, score)
		assert.Equal(t, TierVeryLow, tier)
	})

	t.Run("weighted and pattern bonus", func(t *testing.T) {
		// "user" weight 1, "guide" weight 1 over 4 words -> 2/12, no pattern matches.
		score, tier := Relevance("a user guide here", vocab)
		assert.InDelta(t, 2.0/12.0, score, 1e-9)
		assert.Equal(t, TierVeryLow, tier)

		// "build" matches the verb pattern only.
		score, _ = Relevance("we build houses", vocab)
		assert.InDelta(t, 0.1, score, 1e-9)
	})

	t.Run("score never exceeds one", func(t *testing.T) {
		score, tier := Relevance("project task design database api frontend backend", vocab)
		assert.LessOrEqual(t, score, 1.0)
		assert.Equal(t, TierHigh, tier)
	})

	t.Run("custom vocabulary", func(t *testing.T) {
		custom := Vocabulary{Weights: map[string]float64{"recipe": 3}}
		score, _ := Relevance("recipe recipe", custom)
		assert.InDelta(t, 1.0, score, 1e-9)
	})
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierHigh, TierFor(0.7))
	assert.Equal(t, TierMedium, TierFor(0.4))
	assert.Equal(t, TierLow, TierFor(0.2))
	assert.Equal(t, TierVeryLow, TierFor(0.19))
}

func TestValidateAndEnhance(t *testing.T) {
	gate := New(DefaultConfig(), DefaultVocabulary())

	t.Run("incoherent text is returned unchanged", func(t *testing.T) {
		in := "aaaaaaaaaaaaaaaaaaaaaaaa"
		out, md := gate.ValidateAndEnhance(in)
		assert.Equal(t, in, out)
		assert.False(t, md.ShouldProcess)
		assert.False(t, md.IsCoherent)
		assert.Zero(t, md.RelevanceScore)
		assert.Equal(t, TierVeryLow, md.Confidence)
		assert.Equal(t, len(in), md.OriginalLength)
	})

	t.Run("empty text", func(t *testing.T) {
		out, md := gate.ValidateAndEnhance("")
		assert.Equal(t, "", out)
		assert.False(t, md.ShouldProcess)
	})

	t.Run("strong query is not enhanced", func(t *testing.T) {
		in := "Implement backend API integration testing"
		out, md := gate.ValidateAndEnhance(in)
		assert.Equal(t, in, out)
		assert.True(t, md.ShouldProcess)
		assert.False(t, md.EnhancementApplied)
	})

	t.Run("weak but relevant query gets context hint", func(t *testing.T) {
		in := "build an online shop for handmade jewelry with customer support"
		out, md := gate.ValidateAndEnhance(in)
		require.True(t, md.ShouldProcess, "score %.2f", md.RelevanceScore)
		assert.Less(t, md.RelevanceScore, 0.5)
		assert.True(t, md.EnhancementApplied)
		assert.Equal(t, "project task description: "+in, out)
	})

	t.Run("irrelevant coherent query is not processed", func(t *testing.T) {
		in := "my cat likes sleeping on the warm sofa"
		out, md := gate.ValidateAndEnhance(in)
		assert.True(t, md.IsCoherent)
		assert.False(t, md.ShouldProcess)
		assert.False(t, md.EnhancementApplied)
		assert.Equal(t, in, out)
	})
}

func TestRecommendations(t *testing.T) {
	gate := New(DefaultConfig(), DefaultVocabulary())

	t.Run("incoherent", func(t *testing.T) {
		_, md := gate.ValidateAndEnhance("zz")
		recs := Recommendations(md)
		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "clear sentences")
	})

	t.Run("short and vague", func(t *testing.T) {
		_, md := gate.ValidateAndEnhance("nice thing")
		recs := Recommendations(md)
		assert.Len(t, recs, 3)
	})

	t.Run("good description", func(t *testing.T) {
		_, md := gate.ValidateAndEnhance("Design and implement the backend API with database integration and security review")
		recs := Recommendations(md)
		assert.Equal(t, []string{"The description looks good for task suggestion."}, recs)
	})
}
