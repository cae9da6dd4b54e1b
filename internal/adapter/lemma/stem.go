package lemma

import (
	snowballeng "github.com/kljensen/snowball/english"
)

// StemLemmatizer approximates lemmas with a Snowball stem. Used when no
// precomputed lookup table is available; stems are not true dictionary
// forms, which is acceptable for set-membership style metrics.
type StemLemmatizer struct{}

// NewStemLemmatizer creates a stemmer-backed lemmatizer.
func NewStemLemmatizer() *StemLemmatizer {
	return &StemLemmatizer{}
}

// Lemma returns the English Snowball stem of the token.
func (s *StemLemmatizer) Lemma(token string) string {
	return snowballeng.Stem(token, false)
}
