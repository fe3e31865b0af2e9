package speller

// Edits1 returns every string exactly one edit away from word: delete one
// rune, transpose two adjacent runes, replace one rune with an alphabet
// letter, or insert an alphabet letter at any position. Coinciding
// operations collapse into the map's set semantics.
func (a *Alphabet) Edits1(word string) map[string]struct{} {
	runes := []rune(word)
	n := len(runes)
	out := make(map[string]struct{}, (2*n+1)*a.Len()+2*n)
	for i := 0; i <= n; i++ {
		left, right := string(runes[:i]), runes[i:]
		if len(right) > 0 {
			// delete
			out[left+string(right[1:])] = struct{}{}
		}
		if len(right) > 1 {
			// transpose
			out[left+string(right[1])+string(right[0])+string(right[2:])] = struct{}{}
		}
		for _, c := range a.letters {
			if len(right) > 0 {
				// replace
				out[left+string(c)+string(right[1:])] = struct{}{}
			}
			// insert
			out[left+string(c)+string(right)] = struct{}{}
		}
	}
	return out
}

// Edits2 streams every string two edits away from word, duplicates
// included, stopping early if fn returns false. The two-edit space is
// O(n²·A²); consumers must filter each string against the known
// vocabulary instead of collecting the stream.
func (a *Alphabet) Edits2(word string, fn func(string) bool) {
	for e1 := range a.Edits1(word) {
		for e2 := range a.Edits1(e1) {
			if !fn(e2) {
				return
			}
		}
	}
}
