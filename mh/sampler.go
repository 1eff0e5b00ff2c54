package mh

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sampler drives a random-walk Metropolis chain against a Target.
// Construct with New (validation happens there); a Sampler is reusable —
// each Run call produces an independent chain from the same configuration.
type Sampler struct {
	target  Target
	initial []float64
	sigma   *mat.SymDense
	cfg     Config
}

// New validates the run configuration and builds a Sampler.
//
// Contracts:
//   - target non-nil; initial non-empty with only finite entries;
//   - sigma is (dim×dim) where dim == len(initial), either
//     positive-definite or all-zero (degenerate mode, see proposal policy);
//   - cfg.Iterations is 0 (default) or ≥ 2.
//
// initial is copied; the caller keeps ownership of its slice. sigma is
// referenced and must stay untouched for the Sampler's lifetime.
//
// Errors: ErrNilTarget, ErrTooFewIterations, ErrDimensionMismatch,
// ErrNaNInf, ErrNotPositiveDefinite.
func New(target Target, initial []float64, sigma *mat.SymDense, cfg Config) (*Sampler, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.Iterations < 2 {
		return nil, ErrTooFewIterations
	}
	if len(initial) == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, v := range initial {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}
	if sigma == nil || sigma.SymmetricDim() != len(initial) {
		return nil, ErrDimensionMismatch
	}
	// Fail fast on an unusable covariance; Run factorizes again with its
	// own seeded source, which cannot fail after this succeeds.
	if _, err := newProposal(sigma, nil); err != nil {
		return nil, err
	}

	init := make([]float64, len(initial))
	copy(init, initial)
	return &Sampler{target: target, initial: init, sigma: sigma, cfg: cfg}, nil
}

// Run executes the chain: S−1 propose/accept iterations after the seeded
// initial state. Cancellation is cooperative — ctx is checked once per
// iteration and the partial chain is discarded on abort. A nil ctx is
// treated as context.Background().
//
// Per iteration, in fixed draw order (proposal first, uniform second):
//
//	star    = current + N(0, Σ)
//	newpost = target(star); oldpost = target(current)
//	accept iff log(u) ≤ newpost − oldpost
//
// The log-form comparison neither overflows when the ratio is huge nor
// underflows when it is tiny, and accepts ties (newpost == oldpost ⇒
// log(u) ≤ 0 always holds).
//
// Failure policy: a non-finite newpost rejects the proposal; a non-finite
// oldpost is fatal (ErrChainCorrupted) because accepted states are
// finite-density by construction.
//
// Complexity: O(S · cost(target)); memory O(S·dim) for the chain arena.
func (s *Sampler) Run(ctx context.Context) (*Chain, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rng := rngFromSeed(s.cfg.Seed)
	prop, err := newProposal(s.sigma, rng)
	if err != nil {
		// Covariance was validated in New; reaching this means it was
		// mutated behind the Sampler's back.
		return nil, err
	}

	dim := len(s.initial)
	chain := newChain(s.cfg.Iterations, dim, s.initial)

	if lp := s.target.LogPosterior(chain.At(0)); math.IsNaN(lp) || math.IsInf(lp, 0) {
		return nil, ErrBadInitialState
	}

	for i := 1; i < s.cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := chain.At(i - 1)
		star := chain.At(i) // scratch; overwritten on rejection

		prop.propose(star, current)
		newpost := s.target.LogPosterior(star)
		oldpost := s.target.LogPosterior(current)
		u := rng.Float64()

		if math.IsNaN(oldpost) || math.IsInf(oldpost, 0) {
			return nil, ErrChainCorrupted
		}

		accept := false
		if !math.IsNaN(newpost) && !math.IsInf(newpost, 0) {
			// Non-finite newpost never reaches the comparison: a zero-density
			// proposal is rejected outright regardless of u.
			accept = math.Log(u) <= newpost-oldpost
		}
		if accept {
			chain.accepted++
		} else {
			copy(star, current)
		}

		if s.cfg.ReportEvery > 0 && s.cfg.ProgressFn != nil && i%s.cfg.ReportEvery == 0 {
			s.cfg.ProgressFn(i, float64(chain.accepted)/float64(i))
		}
	}
	return chain, nil
}
