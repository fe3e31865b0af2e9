package speller

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewAlphabetDeduplicates(t *testing.T) {
	a := NewAlphabet("అఅఆఅ")
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Contains('అ'))
	assert.True(t, a.Contains('ఆ'))
	assert.False(t, a.Contains('క'))
}

func TestTeluguLetters(t *testing.T) {
	assert.Equal(t, 54, utf8.RuneCountInString(TeluguLetters))

	// క and ష appear twice via the క్ష cluster.
	a := NewAlphabet(TeluguLetters)
	assert.Equal(t, 52, a.Len())
	assert.True(t, a.Contains('్'))

	for _, r := range TeluguLetters {
		assert.True(t, IsTeluguRune(r), "letter %q outside the Telugu block", r)
	}
	assert.False(t, IsTeluguRune('a'))
	assert.False(t, IsTeluguRune(' '))
}

func TestSplitSpans(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{"empty", "", nil},
		{"single word", "మహా", []Span{{"మహా", true}}},
		{"only punctuation", " .!", []Span{{" .!", false}}},
		{
			"words and separators",
			"ఇది మహా, దేశం.",
			[]Span{
				{"ఇది", true}, {" ", false}, {"మహా", true},
				{", ", false}, {"దేశం", true}, {".", false},
			},
		},
		{
			"mixed scripts",
			"abc ఇది 123",
			[]Span{{"abc ", false}, {"ఇది", true}, {" 123", false}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSpans(tt.text)
			assert.Equal(t, tt.want, got)

			var b strings.Builder
			for _, sp := range got {
				b.WriteString(sp.Text)
			}
			assert.Equal(t, tt.text, b.String(), "partition must be lossless")
		})
	}
}
