package cli

import (
	"fmt"
	"os"

	"lexdiv/config"
	"lexdiv/internal/adapter/lemma"
	"lexdiv/internal/adapter/lexicon"
	"lexdiv/internal/adapter/store"
	"lexdiv/internal/estimator"
	"lexdiv/internal/port"
)

// resources bundles the read-only analysis resources built from config.
// Everything here is loaded once and safe for concurrent reads.
type resources struct {
	lemmatizer port.Lemmatizer
	wordlists  port.WordlistProvider
	oracle     port.Lexicon
	closer     func() error
}

func (r *resources) Close() error {
	if r.closer != nil {
		return r.closer()
	}
	return nil
}

// buildResources wires the lemmatizer, wordlist provider and lexical
// oracle from the configured sources. Preference order for lemmas:
// compiled database, raw TSV, stemmer, identity.
func buildResources(cfg *config.Config) (*resources, error) {
	res := &resources{}

	switch {
	case cfg.Resources.LemmaDB != "":
		if _, err := os.Stat(cfg.Resources.LemmaDB); err != nil {
			return nil, fmt.Errorf("lemma database %s not found; run 'lexdiv compile' first", cfg.Resources.LemmaDB)
		}
		st, err := store.Open(cfg.Resources.LemmaDB)
		if err != nil {
			return nil, err
		}
		table, err := st.LoadLemmas()
		if err != nil {
			st.Close()
			return nil, err
		}
		res.lemmatizer = lemma.NewMapLemmatizer(table)
		res.wordlists = st
		res.closer = st.Close
		log.Debugf("loaded %d lemmas from %s", len(table), cfg.Resources.LemmaDB)
	case cfg.Resources.LemmaTSV != "":
		m, err := lemma.LoadTSV(cfg.Resources.LemmaTSV)
		if err != nil {
			return nil, err
		}
		res.lemmatizer = m
		log.Debugf("loaded %d lemmas from %s", m.Len(), cfg.Resources.LemmaTSV)
	case cfg.Resources.Stemming:
		res.lemmatizer = lemma.NewStemLemmatizer()
	default:
		res.lemmatizer = lemma.NewMapLemmatizer(nil)
	}

	if res.wordlists == nil {
		res.wordlists = lexicon.NewFileProvider(cfg.Resources.WordlistDir)
	}

	if cfg.Resources.DictionaryURL != "" {
		res.oracle = lexicon.NewHTTPLexicon(cfg.Resources.DictionaryURL)
	} else {
		words, err := res.wordlists.Load("ENABLE1")
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary list: %w", err)
		}
		res.oracle = lexicon.NewSet(words, "i", "a")
	}

	return res, nil
}

// buildEstimators constructs the four estimators over the resources.
func buildEstimators(res *resources) (*estimator.Guiraud, *estimator.Vocd, *estimator.MTLD, *estimator.Maas) {
	filter := estimator.NewSpellFilter(res.lemmatizer, res.oracle)
	return estimator.NewGuiraud(res.lemmatizer, res.wordlists),
		estimator.NewVocd(filter),
		estimator.NewMTLD(filter),
		estimator.NewMaas(filter)
}
