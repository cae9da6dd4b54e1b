package estimator

import "lexdiv/internal/port"

// SpellFilter drops tokens whose lemma the lexicon does not recognize.
// It is the shared spellcheck stage for voc-D, MTLD and Maas.
type SpellFilter struct {
	Lemmatizer port.Lemmatizer
	Lexicon    port.Lexicon
}

// NewSpellFilter creates a filter over the given resources.
func NewSpellFilter(lemmatizer port.Lemmatizer, lexicon port.Lexicon) *SpellFilter {
	return &SpellFilter{Lemmatizer: lemmatizer, Lexicon: lexicon}
}

// Filter returns the tokens whose lemmas are known words. The input is
// not modified.
func (f *SpellFilter) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if f.Lexicon.IsKnown(f.Lemmatizer.Lemma(tok)) {
			kept = append(kept, tok)
		}
	}
	return kept
}
