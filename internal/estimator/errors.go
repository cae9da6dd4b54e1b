package estimator

import "errors"

var (
	// ErrEmptyInput is returned when an estimator requires a non-empty
	// token sequence.
	ErrEmptyInput = errors.New("empty token sequence")

	// ErrSampleTooSmall is returned by voc-D when the token count is
	// below the largest requested sample size.
	ErrSampleTooSmall = errors.New("sample size exceeds token count")

	// ErrNoFactors is returned by MTLD when a scan direction completes
	// zero factors.
	ErrNoFactors = errors.New("ttr never fell below the factor size")

	// ErrFitFailed is returned by voc-D when the curve fit does not
	// converge.
	ErrFitFailed = errors.New("curve fit did not converge")

	// ErrTooFewTokens is returned by the Maas index when the token count
	// is too small for the logarithms to be defined.
	ErrTooFewTokens = errors.New("too few tokens")
)
