package speller

import (
	"errors"
	"fmt"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/tidwall/gjson"
)

var (
	// ErrModelNotFound reports an absent model file.
	ErrModelNotFound = errors.New("model file not found")
	// ErrModelInvalid reports a model file that is not a JSON word-count object.
	ErrModelInvalid = errors.New("model file is not a word-count object")
)

// FrequencyModel is the unigram language model: word → corpus count, plus
// the total count across all words. Read-only after construction and safe
// to share across concurrent correction calls.
type FrequencyModel struct {
	counts map[string]int
	total  int
}

// NewModel builds a model from counts. Negative counts are dropped; a
// stored count of zero still makes the word known.
func NewModel(counts map[string]int) *FrequencyModel {
	m := &FrequencyModel{counts: make(map[string]int, len(counts))}
	for w, c := range counts {
		if c < 0 {
			continue
		}
		m.counts[w] = c
		m.total += c
	}
	return m
}

// LoadModel reads the JSON model file written by the model builder. An
// absent or unreadable file is not fatal: the returned model is always
// usable, just empty, and the error says why. Callers that need a
// populated model check Total.
func LoadModel(path string) (*FrequencyModel, error) {
	empty := NewModel(nil)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return empty, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return empty, fmt.Errorf("stat model %s: %w", path, err)
	}
	if info.Size() == 0 {
		return empty, fmt.Errorf("%w: %s is empty", ErrModelInvalid, path)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return empty, fmt.Errorf("map model %s: %w", path, err)
	}
	defer data.Unmap()

	if !gjson.ValidBytes(data) {
		return empty, fmt.Errorf("%w: %s", ErrModelInvalid, path)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return empty, fmt.Errorf("%w: %s", ErrModelInvalid, path)
	}

	counts := make(map[string]int)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			return true
		}
		// gjson results alias the mapped buffer; copy before Unmap.
		counts[strings.Clone(key.String())] = int(value.Int())
		return true
	})
	return NewModel(counts), nil
}

// IsKnown reports whether word is present in the model.
func (m *FrequencyModel) IsKnown(word string) bool {
	_, ok := m.counts[word]
	return ok
}

// Frequency returns the stored count for word, 0 if absent.
func (m *FrequencyModel) Frequency(word string) int { return m.counts[word] }

// Size returns the number of known words.
func (m *FrequencyModel) Size() int { return len(m.counts) }

// Total returns the sum of all counts.
func (m *FrequencyModel) Total() int { return m.total }
