package options

// DefaultOptions: built-in Telugu alphabet, unlimited candidate lists,
// custom words ranked above every corpus word.
var DefaultOptions = SpellerOptions{
	Alphabet:        "",
	MaxSuggestions:  0,
	CustomWordCount: 1_000_000_000,
}

type SpellerOptions struct {
	// Alphabet overrides the letters used for replacement and insertion
	// edits. Empty selects the built-in Telugu alphabet.
	Alphabet string
	// MaxSuggestions caps the per-word candidate list reported by
	// CorrectText. Zero means no cap. Best-candidate selection is never
	// affected; the cap applies after ranking.
	MaxSuggestions int
	// CustomWordCount is the frequency assigned to custom dictionary
	// words when ranking candidates.
	CustomWordCount int
}

type Options interface {
	Apply(options *SpellerOptions)
}

type FuncConfig struct {
	ops func(options *SpellerOptions)
}

func (w FuncConfig) Apply(conf *SpellerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SpellerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithAlphabet(letters string) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.Alphabet = letters
	})
}

func WithMaxSuggestions(n int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.MaxSuggestions = n
	})
}

func WithCustomWordCount(count int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.CustomWordCount = count
	})
}
