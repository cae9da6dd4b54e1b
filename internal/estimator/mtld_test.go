package estimator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMTLD_Alternating(t *testing.T) {
	m := NewMTLD(nil)

	// a b a b a b a b a: a factor completes every three tokens in both
	// directions, with no final partial.
	tokens := []string{"a", "b", "a", "b", "a", "b", "a", "b", "a"}
	got, err := m.Score(tokens, MTLDOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestMTLD_AllDistinctFails(t *testing.T) {
	m := NewMTLD(nil)

	tokens := make([]string, 100)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("w%d", i)
	}

	// The running TTR stays at 1 forever and never completes a factor.
	_, err := m.Score(tokens, MTLDOptions{})
	assert.True(t, errors.Is(err, ErrNoFactors))
}

func TestMTLD_Empty(t *testing.T) {
	m := NewMTLD(nil)
	_, err := m.Score(nil, MTLDOptions{})
	assert.True(t, errors.Is(err, ErrNoFactors))
}

func TestMTLD_RepeatedToken(t *testing.T) {
	m := NewMTLD(nil)

	tokens := make([]string, 100)
	for i := range tokens {
		tokens[i] = "the"
	}

	// Every second repetition drops the window TTR to 0.5, completing a
	// factor: 50 factors each way.
	got, err := m.Score(tokens, MTLDOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestMTLD_PartialFactor(t *testing.T) {
	m := NewMTLD(nil)

	// Forward: one factor at "a a", then a clean final window (no
	// partial, TTR exactly 1 contributes zero). Backward: no completed
	// factor until the final window ends at TTR 3/4, crediting a partial
	// of 0.25/0.28.
	tokens := []string{"a", "a", "b", "c"}

	_, err := m.Score(tokens, MTLDOptions{})
	require.NoError(t, err)

	forward := mtldPass(tokens, 0.72)
	assert.InDelta(t, 1.0, forward, 1e-12)

	backward := mtldPass(reversed(tokens), 0.72)
	assert.InDelta(t, 0.25/0.28, backward, 1e-12)

	got, _ := m.Score(tokens, MTLDOptions{})
	assert.InDelta(t, (4.0/forward+4.0/backward)/2, got, 1e-12)
}

func TestMTLD_FactorSizeDefault(t *testing.T) {
	m := NewMTLD(nil)
	tokens := []string{"a", "b", "a", "b", "a", "b", "a", "b", "a"}

	// FactorSize zero means the documented default of 0.72.
	def, err := m.Score(tokens, MTLDOptions{})
	require.NoError(t, err)
	explicit, err := m.Score(tokens, MTLDOptions{FactorSize: 0.72})
	require.NoError(t, err)
	assert.Equal(t, def, explicit)
}

type suffixLexicon struct{}

func (suffixLexicon) IsKnown(word string) bool { return word != "zzz" }

type identityLemma struct{}

func (identityLemma) Lemma(token string) string { return token }

func TestMTLD_SpellcheckFiltersTokens(t *testing.T) {
	filter := NewSpellFilter(identityLemma{}, suffixLexicon{})
	m := NewMTLD(filter)

	base := []string{"a", "b", "a", "b", "a", "b", "a", "b", "a"}
	noisy := append([]string{"zzz"}, base...)

	got, err := m.Score(noisy, MTLDOptions{Spellcheck: true})
	require.NoError(t, err)

	want, err := m.Score(base, MTLDOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
