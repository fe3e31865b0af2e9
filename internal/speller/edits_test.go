package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdits1Cardinality(t *testing.T) {
	// Word and alphabet share no runes, so no operations coincide and the
	// bound n + (n-1) + n·A + (n+1)·A is met exactly.
	a := NewAlphabet("అఆఇ")
	got := a.Edits1("కఖ")
	assert.Len(t, got, 2+1+2*3+3*3)

	assert.Contains(t, got, "ఖ")    // delete
	assert.Contains(t, got, "ఖక")   // transpose
	assert.Contains(t, got, "అఖ")   // replace
	assert.Contains(t, got, "కఖఇ")  // insert at end
	assert.Contains(t, got, "ఆకఖ")  // insert at front
	assert.NotContains(t, got, "కఖగ") // గ is not an alphabet letter
}

func TestEdits1Deduplicates(t *testing.T) {
	a := NewAlphabet("అఆ")
	got := a.Edits1("అఅ")
	// Deleting either rune yields the same string once.
	assert.Contains(t, got, "అ")
	bound := 2 + 1 + 2*2 + 3*2
	assert.Less(t, len(got), bound)
}

func TestEdits1EmptyWord(t *testing.T) {
	a := NewAlphabet("అఆఇ")
	got := a.Edits1("")
	// Only insertions are possible.
	assert.Equal(t, map[string]struct{}{
		"అ": {}, "ఆ": {}, "ఇ": {},
	}, got)
}

func TestEdits1ReachesReferenceCorrections(t *testing.T) {
	a := NewAlphabet(TeluguLetters)
	assert.Contains(t, a.Edits1("మహాన"), "మహా")  // delete
	assert.Contains(t, a.Edits1("దేసం"), "దేశం") // replace స -> శ
}

func TestEdits2Streams(t *testing.T) {
	a := NewAlphabet("అఆ")
	found := false
	a.Edits2("అఆఇఈ", func(s string) bool {
		if s == "అఆ" { // two deletions away
			found = true
			return false
		}
		return true
	})
	assert.True(t, found)
}
