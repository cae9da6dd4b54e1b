package estimator

import (
	"fmt"
	"math"

	"lexdiv/internal/adapter/analyzer"
)

// Maas computes the a² Maas index: ln(N) − ln(V)/ln(N)², where N is the
// token count and V the type count. Lower values mean richer vocabulary.
type Maas struct {
	filter *SpellFilter
}

// NewMaas creates a Maas estimator. The filter may be nil when
// spellcheck will not be requested.
func NewMaas(filter *SpellFilter) *Maas {
	return &Maas{filter: filter}
}

// Score computes the Maas index. At least two tokens are required for
// ln(N) to be usable as a divisor.
func (m *Maas) Score(tokens []string, spellcheck bool) (float64, error) {
	if spellcheck && m.filter != nil {
		tokens = m.filter.Filter(tokens)
	}

	n := len(tokens)
	v := analyzer.TypeCount(tokens)
	if n <= 1 || v == 0 {
		return 0, fmt.Errorf("maas: %w (need at least 2 tokens, got %d)", ErrTooFewTokens, n)
	}

	logN := math.Log(float64(n))
	return logN - math.Log(float64(v))/(logN*logN), nil
}
