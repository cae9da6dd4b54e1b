package estimator

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Vocd estimates the D parameter of the theoretical TTR-vs-sample-size
// curve by repeated random subsampling and nonlinear least squares.
type Vocd struct {
	filter *SpellFilter
}

// VocdOptions configures one scoring call. Zero-valued fields take the
// documented defaults.
type VocdOptions struct {
	// Spellcheck drops unrecognized tokens before sampling.
	Spellcheck bool
	// MinLen and MaxLen bound the subsample sizes (defaults 35 and 50).
	MinLen int
	MaxLen int
	// Subsamples is the number of draws per sample size (default 100).
	Subsamples int
	// Trials is the number of independent D estimates averaged into the
	// result (default 3).
	Trials int
	// Seed makes the sampling reproducible. Zero seeds from the clock.
	Seed int64
}

// initial guess for the curve fit
const vocdInitialD = 100

// NewVocd creates a voc-D estimator. The filter may be nil when
// spellcheck will not be requested.
func NewVocd(filter *SpellFilter) *Vocd {
	return &Vocd{filter: filter}
}

// ttrCurve is the theoretical TTR for sample size n given diversity d.
func ttrCurve(n, d float64) float64 {
	if d <= 0 {
		return math.Inf(1)
	}
	return d / n * (math.Sqrt(1+2*n/d) - 1)
}

// Score computes the voc-D estimate for the token sequence. The pool is
// reused across trials; each subsample is drawn without replacement.
// Trials run concurrently with per-trial derived seeds, so results are
// deterministic for a fixed non-zero seed.
func (v *Vocd) Score(tokens []string, opts VocdOptions) (float64, error) {
	opts = withVocdDefaults(opts)
	if opts.MinLen > opts.MaxLen {
		return 0, fmt.Errorf("vocd: min sample size %d exceeds max %d", opts.MinLen, opts.MaxLen)
	}

	if opts.Spellcheck && v.filter != nil {
		tokens = v.filter.Filter(tokens)
	}

	if len(tokens) < opts.MaxLen {
		return 0, fmt.Errorf("vocd: %w (%d tokens, need %d); reduce the length range or use a longer text",
			ErrSampleTooSmall, len(tokens), opts.MaxLen)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	estimates := make([]float64, opts.Trials)
	errs := make([]error, opts.Trials)

	var wg sync.WaitGroup
	for trial := 0; trial < opts.Trials; trial++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(trial)))
			estimates[trial], errs[trial] = runTrial(tokens, opts, rng)
		}(trial)
	}
	wg.Wait()

	total := 0.0
	for trial := 0; trial < opts.Trials; trial++ {
		if errs[trial] != nil {
			return 0, fmt.Errorf("vocd trial %d: %w", trial+1, errs[trial])
		}
		total += estimates[trial]
	}

	return total / float64(opts.Trials), nil
}

// runTrial draws the subsamples for every sample size, averages their
// TTRs, and fits D to the resulting curve.
func runTrial(pool []string, opts VocdOptions, rng *rand.Rand) (float64, error) {
	sizes := opts.MaxLen - opts.MinLen + 1
	ns := make([]float64, 0, sizes)
	ttrs := make([]float64, 0, sizes)

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	seen := make(map[string]struct{}, opts.MaxLen)

	for n := opts.MinLen; n <= opts.MaxLen; n++ {
		total := 0.0
		for s := 0; s < opts.Subsamples; s++ {
			total += sampleTTR(rng, pool, idx, n, seen)
		}
		ns = append(ns, float64(n))
		ttrs = append(ttrs, total/float64(opts.Subsamples))
	}

	return FitScalar(ttrCurve, ns, ttrs, vocdInitialD)
}

// sampleTTR draws n tokens without replacement via a partial
// Fisher-Yates shuffle of the index slice and returns the sample's TTR.
func sampleTTR(rng *rand.Rand, pool []string, idx []int, n int, seen map[string]struct{}) float64 {
	clear(seen)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		seen[pool[idx[i]]] = struct{}{}
	}
	return float64(len(seen)) / float64(n)
}

func withVocdDefaults(opts VocdOptions) VocdOptions {
	if opts.MinLen == 0 {
		opts.MinLen = 35
	}
	if opts.MaxLen == 0 {
		opts.MaxLen = 50
	}
	if opts.Subsamples == 0 {
		opts.Subsamples = 100
	}
	if opts.Trials == 0 {
		opts.Trials = 3
	}
	return opts
}
