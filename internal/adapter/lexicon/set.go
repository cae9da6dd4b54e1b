package lexicon

// Set is a word-list-backed Lexicon. Membership is exact: a word is
// known iff it appears in the set.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from the given words plus any extras. The input
// map is copied, so shared provider sets stay untouched.
func NewSet(words map[string]struct{}, extra ...string) *Set {
	copied := make(map[string]struct{}, len(words)+len(extra))
	for w := range words {
		copied[w] = struct{}{}
	}
	for _, w := range extra {
		copied[w] = struct{}{}
	}
	return &Set{words: copied}
}

// IsKnown reports whether the word is in the set.
func (s *Set) IsKnown(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}
