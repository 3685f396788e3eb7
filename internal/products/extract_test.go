package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no markers",
			text: "Nothing to recommend here.",
			want: nil,
		},
		{
			name: "one marker",
			text: "Get the [[RTX 4070]] for 1440p gaming.",
			want: []string{"RTX 4070"},
		},
		{
			name: "three markers with one duplicate",
			text: "Pair a [[Ryzen 7 7800X3D]] with the [[RTX 4070]]. The [[RTX 4070]] handles 1440p well.",
			want: []string{"Ryzen 7 7800X3D", "RTX 4070"},
		},
		{
			name: "adjacent markers stay separate",
			text: "[[A]][[B]]",
			want: []string{"A", "B"},
		},
		{
			name: "unterminated marker ignored",
			text: "The [[RTX 4070 is great",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMentions(tt.text))
		})
	}
}

func TestExtractMentions_FirstOccurrenceOrder(t *testing.T) {
	text := "[[Zephyr]] then [[Alpha]] then [[Zephyr]] then [[Mid]]"
	assert.Equal(t, []string{"Zephyr", "Alpha", "Mid"}, ExtractMentions(text))
}
