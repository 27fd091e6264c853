package aggregate

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Acme Wins Award", "acme wins award"},
		{"  Acme   WINS\tAward!!! ", "acme wins award"},
		{"Acme's Q4: $1.2B revenue", "acmes q4 12b revenue"},
		{"Café Société", "cafe societe"},
		{"!!!", ""},
		{"line\nbreak", "line break"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestTextKeyFallsBackToDescription(t *testing.T) {
	assert.Equal(t, "headline", textKey(Article{Title: "Headline", Description: "Body"}))
	assert.Equal(t, "body text", textKey(Article{Description: "Body, text."}))
	// A title that normalizes to nothing does not fall back.
	assert.Equal(t, "", textKey(Article{Title: "???", Description: "Body"}))
}
