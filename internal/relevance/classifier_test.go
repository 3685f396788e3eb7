package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelated_HardwareQuestions(t *testing.T) {
	c := New(70)

	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{"exact token", "What GPU should I buy for $500?", true},
		{"single token", "gpu", true},
		{"multi-word term via phrase pass", "best graphics card under 300", true},
		{"misspelled token still matches", "is this motherbord compatible", true},
		{"brand name", "ryzen or intel for gaming", true},
		{"off topic", "What's the capital of France?", false},
		{"off topic cooking", "best pasta recipe with garlic", false},
		{"empty input", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsRelated(tt.question))
		})
	}
}

func TestIsRelated_ThresholdControlsAcceptance(t *testing.T) {
	// A scorer that always returns 69 must reject at the default threshold
	// and accept at a lower one.
	fixed := func(a, b string) int { return 69 }

	assert.False(t, NewWithScorer(70, fixed).IsRelated("anything at all"))
	assert.True(t, NewWithScorer(69, fixed).IsRelated("anything at all"))
}

func TestIsRelated_SingleTokenSkipsPhrasePass(t *testing.T) {
	var candidates []string
	spy := func(a, b string) int {
		candidates = append(candidates, a)
		return 0
	}

	NewWithScorer(70, spy).IsRelated("hello")

	for _, cand := range candidates {
		assert.NotContains(t, cand, " ", "phrase pass must not run for single-token input")
	}
}

func TestHasFollowUpCue(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"What about 1440p monitors?", true},
		{"and how much RAM?", true},
		{"Why is the sky blue?", true}, // "why" bypasses even off-topic text
		{"ok then, which one", true},
		{"I have another question", true},
		{"Best CPU for streaming", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasFollowUpCue(tt.question), "question: %q", tt.question)
	}
}
