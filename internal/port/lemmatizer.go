package port

// Lemmatizer resolves a token to its canonical base form. Implementations
// must be pure: the same token always maps to the same lemma within one
// process lifetime, and lookups are safe for concurrent use.
type Lemmatizer interface {
	// Lemma returns the lemma for token, or the token itself when no
	// mapping is known.
	Lemma(token string) string
}
