package port

// Lexicon answers whether a word form is recognized. Backends make no
// completeness guarantee; false negatives are accepted as measurement
// noise. Implementations must be safe for concurrent use.
type Lexicon interface {
	IsKnown(word string) bool
}
