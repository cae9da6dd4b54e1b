package estimator

// DefaultFactorSize is the standard MTLD threshold.
const DefaultFactorSize = 0.72

// MTLD implements the Measure of Textual Lexical Diversity: the mean
// number of tokens it takes for the running TTR to fall below the
// factor size, averaged over a forward and a backward scan.
type MTLD struct {
	filter *SpellFilter
}

// MTLDOptions configures one scoring call.
type MTLDOptions struct {
	// Spellcheck drops unrecognized tokens before scanning.
	Spellcheck bool
	// FactorSize is the TTR threshold that completes a factor. Zero
	// means DefaultFactorSize.
	FactorSize float64
}

// NewMTLD creates an MTLD estimator. The filter may be nil when
// spellcheck will not be requested.
func NewMTLD(filter *SpellFilter) *MTLD {
	return &MTLD{filter: filter}
}

// Score computes MTLD over the token sequence. It fails when either scan
// direction completes zero factors, which means the text never reached
// the diversity threshold; raise the factor size or use longer input.
func (m *MTLD) Score(tokens []string, opts MTLDOptions) (float64, error) {
	factorSize := opts.FactorSize
	if factorSize == 0 {
		factorSize = DefaultFactorSize
	}

	if opts.Spellcheck && m.filter != nil {
		tokens = m.filter.Filter(tokens)
	}

	forward := mtldPass(tokens, factorSize)
	backward := mtldPass(reversed(tokens), factorSize)
	if forward == 0 || backward == 0 {
		return 0, ErrNoFactors
	}

	n := float64(len(tokens))
	return (n/forward + n/backward) / 2, nil
}

// mtldPass runs one directional scan: extend the window token by token,
// complete a factor and reset the window whenever the running TTR drops
// strictly below the factor size. A final window that stayed at or above
// the threshold earns partial credit proportional to its progress.
func mtldPass(tokens []string, factorSize float64) float64 {
	factors := 0.0
	lastTTR := 1.0
	types := 0
	windowLen := 0
	seen := make(map[string]struct{})

	for _, tok := range tokens {
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			types++
		}
		windowLen++
		lastTTR = float64(types) / float64(windowLen)
		if lastTTR < factorSize {
			factors++
			types = 0
			windowLen = 0
			clear(seen)
		}
	}

	if lastTTR > factorSize {
		factors += (1.0 - lastTTR) / (1.0 - factorSize)
	}

	return factors
}

func reversed(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[len(tokens)-1-i] = tok
	}
	return out
}
