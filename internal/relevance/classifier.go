// Package relevance decides whether free-text input is about computer
// hardware before any model call is spent on it.
package relevance

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// vocabulary is the fixed set of domain terms a question is scored against.
var vocabulary = []string{
	"gpu", "graphics card", "video card", "cpu", "processor", "motherboard",
	"ram", "memory", "ssd", "nvme", "hard drive", "storage", "power supply",
	"psu", "cpu cooler", "liquid cooling", "case fan", "pc case", "monitor",
	"keyboard", "mouse", "headset", "laptop", "desktop", "gaming pc",
	"pc build", "budget build", "workstation", "nvidia", "geforce", "rtx",
	"radeon", "amd", "ryzen", "intel", "webcam", "microphone", "router",
	"ethernet", "thermal paste", "overclock", "benchmark", "refresh rate",
	"resolution", "vram", "upgrade",
}

// followUpCues short-circuit classification: if any appears as a substring
// the question is assumed to continue an in-domain conversation. The list is
// deliberately coarse ("and", "why", "then" match most multi-clause
// sentences) and mirrors the original heuristic unchanged.
var followUpCues = []string{
	"what about", "and", "then", "also", "why", "how about", "what if",
	"follow up", "another question",
}

// ScoreFunc scores the similarity of two strings on a 0–100 scale.
type ScoreFunc func(a, b string) int

// Classifier scores question tokens and adjacent-pair phrases against the
// hardware vocabulary with a fuzzy string match.
type Classifier struct {
	threshold int
	score     ScoreFunc
}

// New creates a Classifier accepting any token or phrase that scores at
// least threshold against a vocabulary entry.
func New(threshold int) *Classifier {
	return NewWithScorer(threshold, fuzzy.Ratio)
}

// NewWithScorer creates a Classifier with a custom similarity function.
// Any edit-distance style scorer with 0–100 output is substitutable.
func NewWithScorer(threshold int, score ScoreFunc) *Classifier {
	return &Classifier{threshold: threshold, score: score}
}

// IsRelated reports whether the question is about computer hardware.
func (c *Classifier) IsRelated(question string) bool {
	tokens := strings.Fields(strings.ToLower(question))
	if len(tokens) == 0 {
		return false
	}

	for _, tok := range tokens {
		if c.matches(tok) {
			return true
		}
	}

	// Adjacent-pair phrases catch multi-word terms like "graphics card".
	// Single-token input has no phrases to check.
	for i := 0; i+1 < len(tokens); i++ {
		if c.matches(tokens[i] + " " + tokens[i+1]) {
			return true
		}
	}

	return false
}

func (c *Classifier) matches(candidate string) bool {
	for _, term := range vocabulary {
		if c.score(candidate, term) >= c.threshold {
			return true
		}
	}
	return false
}

// HasFollowUpCue reports whether the question contains a follow-up cue and
// should bypass classification entirely.
func HasFollowUpCue(question string) bool {
	lower := strings.ToLower(question)
	for _, cue := range followUpCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
