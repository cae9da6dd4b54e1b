package estimator

import (
	"fmt"

	"lexdiv/internal/adapter/analyzer"
)

// TTR computes the Type-Token Ratio: distinct types over total tokens.
// The input must be non-empty; an empty sequence is a precondition
// violation, not a zero.
func TTR(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("ttr: %w", ErrEmptyInput)
	}
	return float64(analyzer.TypeCount(tokens)) / float64(len(tokens)), nil
}
