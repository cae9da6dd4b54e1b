package estimator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTR(t *testing.T) {
	tokens := []string{"the", "the", "dog", "ran", "the", "cat", "ran"}

	got, err := TTR(tokens)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/7.0, got, 1e-12)
}

func TestTTR_Empty(t *testing.T) {
	_, err := TTR(nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestTTR_Bounds(t *testing.T) {
	allDistinct := []string{"a", "b", "c", "d"}
	got, err := TTR(allDistinct)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "all-distinct input has TTR 1")

	repeated := []string{"a", "a", "a"}
	got, err = TTR(repeated)
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}
