package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitScalar_RecoversKnownD(t *testing.T) {
	const trueD = 72.5

	var xs, ys []float64
	for n := 35; n <= 50; n++ {
		xs = append(xs, float64(n))
		ys = append(ys, ttrCurve(float64(n), trueD))
	}

	got, err := FitScalar(ttrCurve, xs, ys, 100)
	require.NoError(t, err)
	assert.InDelta(t, trueD, got, 0.5)
}

func TestFitScalar_FarGuess(t *testing.T) {
	const trueD = 13.0

	var xs, ys []float64
	for n := 10; n <= 30; n++ {
		xs = append(xs, float64(n))
		ys = append(ys, ttrCurve(float64(n), trueD))
	}

	got, err := FitScalar(ttrCurve, xs, ys, 100)
	require.NoError(t, err)
	assert.InDelta(t, trueD, got, 0.5)
}

func TestFitScalar_BadInput(t *testing.T) {
	_, err := FitScalar(ttrCurve, []float64{1, 2}, []float64{1}, 100)
	assert.Error(t, err)

	_, err = FitScalar(ttrCurve, nil, nil, 100)
	assert.Error(t, err)
}
