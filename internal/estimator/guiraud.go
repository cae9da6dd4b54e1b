package estimator

import (
	"fmt"
	"math"

	"lexdiv/internal/adapter/lexicon"
	"lexdiv/internal/port"
)

// DefaultFreqList is the frequency list used when none is named.
const DefaultFreqList = "NGSL"

// dictionaryList is the broad word list backing the Guiraud spellcheck.
const dictionaryList = "ENABLE1"

// Guiraud computes the Advanced Guiraud index: advanced types divided by
// the square root of the token count. A type is advanced when its lemma
// is outside the common-vocabulary list and, with spellcheck on, present
// in the dictionary.
type Guiraud struct {
	lemmatizer port.Lemmatizer
	wordlists  port.WordlistProvider
}

// GuiraudOptions configures one scoring call.
type GuiraudOptions struct {
	// FreqList names the builtin common-vocabulary list. Empty means
	// DefaultFreqList.
	FreqList string
	// CustomList, when non-nil, replaces FreqList as the set of common
	// types to ignore.
	CustomList []string
	// Spellcheck drops candidates absent from the dictionary list, so
	// misspellings do not inflate the advanced-type count.
	Spellcheck bool
	// Supplementary unions the SUPP vocabulary into the common set.
	Supplementary bool
	// UseLemmas marks the input as already lemmatized; lemma resolution
	// is skipped.
	UseLemmas bool
}

// NewGuiraud creates an Advanced Guiraud estimator over the given
// resources.
func NewGuiraud(lemmatizer port.Lemmatizer, wordlists port.WordlistProvider) *Guiraud {
	return &Guiraud{lemmatizer: lemmatizer, wordlists: wordlists}
}

// Score computes the Advanced Guiraud index for the token sequence.
// An empty sequence scores 0.
func (g *Guiraud) Score(tokens []string, opts GuiraudOptions) (float64, error) {
	common, err := g.resolveCommonTypes(opts)
	if err != nil {
		return 0, err
	}

	// Single-letter words are real words but fall outside minimum-length
	// dictionary lists, so they are admitted explicitly.
	var dict *lexicon.Set
	if opts.Spellcheck {
		words, err := g.wordlists.Load(dictionaryList)
		if err != nil {
			return 0, fmt.Errorf("advanced guiraud: %w", err)
		}
		dict = lexicon.NewSet(words, "i", "a")
	}

	if len(tokens) == 0 {
		return 0, nil
	}

	advanced := make(map[string]struct{})
	for _, token := range tokens {
		candidate := token
		if !opts.UseLemmas {
			candidate = g.lemmatizer.Lemma(token)
		}
		if _, isCommon := common[candidate]; isCommon {
			continue
		}
		if opts.Spellcheck && !dict.IsKnown(candidate) {
			continue
		}
		advanced[candidate] = struct{}{}
	}

	return float64(len(advanced)) / math.Sqrt(float64(len(tokens))), nil
}

func (g *Guiraud) resolveCommonTypes(opts GuiraudOptions) (map[string]struct{}, error) {
	var common map[string]struct{}

	if opts.CustomList != nil {
		common = make(map[string]struct{}, len(opts.CustomList))
		for _, w := range opts.CustomList {
			common[w] = struct{}{}
		}
	} else {
		name := opts.FreqList
		if name == "" {
			name = DefaultFreqList
		}
		loaded, err := g.wordlists.Load(name)
		if err != nil {
			return nil, fmt.Errorf("advanced guiraud: %w", err)
		}
		common = loaded
	}

	if opts.Supplementary {
		supp, err := g.wordlists.Load("SUPP")
		if err != nil {
			return nil, fmt.Errorf("advanced guiraud: %w", err)
		}
		common = lexicon.Union(common, supp)
	}

	return common, nil
}
