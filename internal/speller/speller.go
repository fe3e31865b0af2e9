package speller

import (
	"sort"
	"strings"
	"sync"

	"teluguspell/pkg/options"
)

// Candidate pairs a known word with its corpus frequency.
type Candidate struct {
	Word string `json:"word"`
	Freq int    `json:"freq"`
}

// CorrectionResult is built fresh by every CorrectText call; Candidates
// maps each replaced word to its ranked candidate list, best first.
type CorrectionResult struct {
	Original   string              `json:"original"`
	Corrected  string              `json:"corrected"`
	Candidates map[string][]string `json:"candidates"`
}

// Speller corrects Telugu words against a frequency model. The model is
// immutable; the supplemental custom vocabulary sits behind a lock so
// concurrent correction and custom-word updates are safe.
type Speller struct {
	model    *FrequencyModel
	alphabet *Alphabet
	opts     options.SpellerOptions

	mu     sync.RWMutex
	custom map[string]bool
}

// New builds a Speller over model. The default alphabet and limits come
// from options.DefaultOptions.
func New(model *FrequencyModel, opts ...options.Options) *Speller {
	o := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	letters := o.Alphabet
	if letters == "" {
		letters = TeluguLetters
	}
	return &Speller{
		model:    model,
		alphabet: NewAlphabet(letters),
		opts:     o,
		custom:   make(map[string]bool),
	}
}

// AddCustomWord marks word as known with the configured custom-word count.
func (s *Speller) AddCustomWord(word string) {
	s.mu.Lock()
	s.custom[word] = true
	s.mu.Unlock()
}

// RemoveCustomWord forgets a previously added custom word.
func (s *Speller) RemoveCustomWord(word string) {
	s.mu.Lock()
	delete(s.custom, word)
	s.mu.Unlock()
}

func (s *Speller) known(word string) bool {
	return s.model.IsKnown(word) || s.custom[word]
}

func (s *Speller) frequency(word string) int {
	if s.custom[word] {
		return s.opts.CustomWordCount
	}
	return s.model.Frequency(word)
}

// Candidates returns the ranked candidate list for word, best first.
// Tiers by edit cost: the word itself if known, then known one-edit
// neighbors; known two-edit neighbors only when both earlier tiers are
// empty. An empty union degrades to the word itself with frequency 0.
// Ranking is descending by frequency with a lexicographic tie-break.
func (s *Speller) Candidates(word string) []Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]struct{})
	if s.known(word) {
		found[word] = struct{}{}
	}
	for w := range s.alphabet.Edits1(word) {
		if s.known(w) {
			found[w] = struct{}{}
		}
	}
	if len(found) == 0 {
		// Fallback tier only: the two-edit stream is filtered string by
		// string, never materialized.
		s.alphabet.Edits2(word, func(e2 string) bool {
			if s.known(e2) {
				found[e2] = struct{}{}
			}
			return true
		})
	}
	if len(found) == 0 {
		return []Candidate{{Word: word, Freq: 0}}
	}

	ranked := make([]Candidate, 0, len(found))
	for w := range found {
		ranked = append(ranked, Candidate{Word: w, Freq: s.frequency(w)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Freq != ranked[j].Freq {
			return ranked[i].Freq > ranked[j].Freq
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}

// CorrectWord returns the best correction for word together with the full
// ranked list it was chosen from.
func (s *Speller) CorrectWord(word string) (string, []Candidate) {
	ranked := s.Candidates(word)
	return ranked[0].Word, ranked
}

// CorrectText corrects every Telugu word span in text, leaving non-word
// spans untouched, and reports the candidate lists of the words it
// actually replaced. Each call is independent; nothing is carried over
// from earlier calls.
func (s *Speller) CorrectText(text string) CorrectionResult {
	res := CorrectionResult{
		Original:   text,
		Candidates: make(map[string][]string),
	}
	var out strings.Builder
	for _, sp := range SplitSpans(text) {
		if !sp.Word {
			out.WriteString(sp.Text)
			continue
		}
		best, ranked := s.CorrectWord(sp.Text)
		out.WriteString(best)
		if best == sp.Text {
			continue
		}
		words := make([]string, len(ranked))
		for i, c := range ranked {
			words[i] = c.Word
		}
		if limit := s.opts.MaxSuggestions; limit > 0 && len(words) > limit {
			words = words[:limit]
		}
		res.Candidates[sp.Text] = words
	}
	res.Corrected = out.String()
	return res
}
