package estimator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdiv/internal/adapter/lemma"
	"lexdiv/internal/adapter/lexicon"
)

// mapProvider is an in-memory WordlistProvider for tests.
type mapProvider map[string]map[string]struct{}

func (p mapProvider) Load(name string) (map[string]struct{}, error) {
	set, ok := p[name]
	if !ok {
		return nil, lexicon.ErrUnknownWordlist
	}
	return set, nil
}

func asSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func testProvider() mapProvider {
	return mapProvider{
		"NGSL":    asSet("the", "dog", "cat", "ran"),
		"SUPP":    asSet("okay"),
		"ENABLE1": asSet("the", "dog", "cat", "ran", "okay", "sesquipedalian", "perspicacious"),
	}
}

func newTestGuiraud(table map[string]string) *Guiraud {
	return NewGuiraud(lemma.NewMapLemmatizer(table), testProvider())
}

func TestGuiraud_Empty(t *testing.T) {
	g := newTestGuiraud(nil)

	got, err := g.Score(nil, GuiraudOptions{Spellcheck: true, Supplementary: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "empty input scores exactly 0")
}

func TestGuiraud_UnknownFreqList(t *testing.T) {
	g := newTestGuiraud(nil)

	_, err := g.Score(nil, GuiraudOptions{FreqList: "BNC"})
	assert.True(t, errors.Is(err, lexicon.ErrUnknownWordlist),
		"list resolution happens before the empty-input edge case")
}

func TestGuiraud_Score(t *testing.T) {
	g := newTestGuiraud(nil)

	tokens := []string{"the", "dog", "sesquipedalian", "perspicacious", "sesquipedalian"}
	got, err := g.Score(tokens, GuiraudOptions{Spellcheck: true, Supplementary: true})
	require.NoError(t, err)

	// Two advanced types over sqrt(5) tokens.
	assert.InDelta(t, 2.0/math.Sqrt(5), got, 1e-12)
}

func TestGuiraud_SpellcheckDropsTypos(t *testing.T) {
	g := newTestGuiraud(nil)
	tokens := []string{"the", "sesquipedalien"} // misspelled, absent from dictionary

	got, err := g.Score(tokens, GuiraudOptions{Spellcheck: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = g.Score(tokens, GuiraudOptions{Spellcheck: false})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/math.Sqrt(2), got, 1e-12, "without spellcheck the typo counts as advanced")
}

func TestGuiraud_SingleLetterWordsAreValid(t *testing.T) {
	g := newTestGuiraud(nil)

	// "i" is not in the dictionary list but is admitted explicitly.
	got, err := g.Score([]string{"i"}, GuiraudOptions{Spellcheck: true})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestGuiraud_Supplementary(t *testing.T) {
	g := newTestGuiraud(nil)
	tokens := []string{"okay"}

	got, err := g.Score(tokens, GuiraudOptions{Spellcheck: true, Supplementary: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "supplementary vocabulary counts as common")

	got, err = g.Score(tokens, GuiraudOptions{Spellcheck: true})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestGuiraud_CustomList(t *testing.T) {
	g := newTestGuiraud(nil)
	tokens := []string{"sesquipedalian", "perspicacious"}

	got, err := g.Score(tokens, GuiraudOptions{
		CustomList: []string{"sesquipedalian"},
		Spellcheck: true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/math.Sqrt(2), got, 1e-12)
}

func TestGuiraud_LemmaResolution(t *testing.T) {
	g := newTestGuiraud(map[string]string{"dogs": "dog"})

	// "dogs" lemmatizes to "dog", which is common.
	got, err := g.Score([]string{"dogs"}, GuiraudOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// With UseLemmas the token is taken as already lemmatized, so the
	// surface form "dogs" is not common.
	got, err = g.Score([]string{"dogs"}, GuiraudOptions{UseLemmas: true})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestGuiraud_GrowthWithAdvancedTokens(t *testing.T) {
	g := newTestGuiraud(nil)
	opts := GuiraudOptions{Spellcheck: true}

	// Adding a new advanced type grows the numerator faster than
	// sqrt(N) grows the denominator.
	short := []string{"sesquipedalian"}
	long := []string{"sesquipedalian", "perspicacious"}

	a, err := g.Score(short, opts)
	require.NoError(t, err)
	b, err := g.Score(long, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, b, a)
}
