package speller

import "strings"

// TeluguLetters are the letters candidate edits are built from: vowels,
// anusvara/visarga and consonants. The trailing క్ష cluster contributes
// three code points, two of which repeat earlier letters; NewAlphabet
// deduplicates them.
const TeluguLetters = "అఆఇఈఉఊఋౠఎఏఐఒఓఔంఃకఖగఘఙచఛజఝఞటఠడఢణతథదధనపఫబభమయరలవశషసహళక్షఱ"

// Telugu Unicode block. Word spans in running text are block runs, not
// alphabet runs: real text carries matras and viramas that the candidate
// alphabet deliberately excludes.
const (
	teluguBlockLo rune = 0x0C00
	teluguBlockHi rune = 0x0C7F
)

// IsTeluguRune reports whether r lies in the Telugu Unicode block.
func IsTeluguRune(r rune) bool {
	return r >= teluguBlockLo && r <= teluguBlockHi
}

// Alphabet is the fixed, ordered letter set used to generate replacement
// and insertion edits. Immutable after construction.
type Alphabet struct {
	letters []rune
	member  map[rune]bool
}

// NewAlphabet builds an alphabet from the runes of letters, keeping the
// first occurrence of each.
func NewAlphabet(letters string) *Alphabet {
	a := &Alphabet{member: make(map[rune]bool)}
	for _, r := range letters {
		if a.member[r] {
			continue
		}
		a.member[r] = true
		a.letters = append(a.letters, r)
	}
	return a
}

// Len returns the number of distinct letters.
func (a *Alphabet) Len() int { return len(a.letters) }

// Contains reports whether r is one of the alphabet letters.
func (a *Alphabet) Contains(r rune) bool { return a.member[r] }

// Span is a maximal run of text classified uniformly: either all
// Telugu-block runes (Word true) or none (Word false).
type Span struct {
	Text string
	Word bool
}

// SplitSpans partitions text into word and non-word spans. The partition
// is lossless: concatenating the span texts reproduces text exactly.
func SplitSpans(text string) []Span {
	var spans []Span
	var cur strings.Builder
	curWord := false
	for _, r := range text {
		word := IsTeluguRune(r)
		if cur.Len() > 0 && word != curWord {
			spans = append(spans, Span{Text: cur.String(), Word: curWord})
			cur.Reset()
		}
		curWord = word
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		spans = append(spans, Span{Text: cur.String(), Word: curWord})
	}
	return spans
}
