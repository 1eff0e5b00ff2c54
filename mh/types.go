package mh

import "errors"

// DEFAULTS - single source of truth for sampler configuration.
const (
	// DefaultIterations is the chain length S (initial state included)
	// when Config.Iterations is zero.
	DefaultIterations = 10000
)

// Sentinel errors for the mh package; match with errors.Is.
var (
	// ErrNilTarget indicates a nil log-density target.
	ErrNilTarget = errors.New("mh: nil target")

	// ErrTooFewIterations indicates a requested chain length below 2
	// (the chain must hold the initial state plus at least one transition).
	ErrTooFewIterations = errors.New("mh: chain length must be at least 2")

	// ErrDimensionMismatch indicates that the initial state and the proposal
	// covariance disagree on the coefficient dimension.
	ErrDimensionMismatch = errors.New("mh: dimension mismatch")

	// ErrNaNInf indicates a non-finite entry in the initial state or the
	// proposal covariance.
	ErrNaNInf = errors.New("mh: NaN or Inf encountered")

	// ErrNotPositiveDefinite indicates a proposal covariance that is neither
	// positive-definite nor the (accepted) degenerate all-zero matrix.
	ErrNotPositiveDefinite = errors.New("mh: proposal covariance not positive-definite")

	// ErrBadInitialState indicates a target log-density that is not finite
	// at the supplied initial state; the chain cannot start there.
	ErrBadInitialState = errors.New("mh: target not finite at initial state")

	// ErrChainCorrupted indicates a non-finite target log-density at the
	// current (already accepted) state mid-run. Entries are finite by
	// construction, so this signals a broken target, not a bad proposal.
	ErrChainCorrupted = errors.New("mh: non-finite log-density at current state")
)

// Target is the unnormalized log-density being sampled. LogPosterior must
// be pure (no hidden state) and should map degenerate input to −Inf rather
// than NaN; the sampler treats −Inf proposals as zero-density and rejects
// them.
type Target interface {
	LogPosterior(beta []float64) float64
}

// ProgressFn receives the iteration index and the running acceptance rate
// when Config.ReportEvery is set. Called synchronously from the sampling
// loop; keep it cheap.
type ProgressFn func(iteration int, acceptanceRate float64)

// Config tunes a Sampler. The zero value selects the documented defaults.
type Config struct {
	// Iterations is the total chain length S, initial state included.
	// 0 means DefaultIterations; values below 2 are rejected.
	Iterations int

	// Seed drives both the proposal and the accept/reject draws.
	// 0 selects a fixed default seed (deterministic by default).
	Seed uint64

	// ReportEvery invokes ProgressFn every that-many iterations; 0 disables
	// reporting. Purely observational, never alters the chain.
	ReportEvery int

	// ProgressFn is the reporting hook; ignored when ReportEvery is 0.
	ProgressFn ProgressFn
}
