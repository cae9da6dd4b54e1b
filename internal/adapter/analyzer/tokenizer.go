package analyzer

import "strings"

// Tokenizer normalizes raw text into lowercase alphabetic tokens.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize extracts maximal runs of ASCII letters, lowercased. Digits,
// punctuation and whitespace are discarded. Empty input yields nil.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		default:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Types returns the distinct tokens of the sequence.
func Types(tokens []string) map[string]struct{} {
	types := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		types[tok] = struct{}{}
	}
	return types
}

// TypeCount returns the number of distinct tokens in the sequence.
func TypeCount(tokens []string) int {
	return len(Types(tokens))
}
