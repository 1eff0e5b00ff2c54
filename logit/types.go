package logit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DEFAULTS - single source of truth for the model's tunable constants.
// These are configuration values, not derived quantities; override them
// via the corresponding options.
const (
	// DefaultPriorSD is the standard deviation of the independent zero-mean
	// Gaussian prior placed on every coefficient. Deliberately wide
	// (weakly informative).
	DefaultPriorSD = 10.0

	// DefaultProposalScale multiplies (XᵗX)⁻¹ when deriving the random-walk
	// proposal covariance. A tuning constant, not a derived value.
	DefaultProposalScale = 0.5

	// DefaultBurnIn is the chain prefix the predictive stream skips before
	// drawing, reducing dependence on the chain's starting point.
	DefaultBurnIn = 2000
)

// Model holds the immutable inputs of a Bayesian logistic regression:
// the design matrix, the binary response and the prior width.
// Build once via New; all methods are read-only and safe to share across
// goroutines (e.g. parallel chains targeting the same posterior).
type Model struct {
	x       *mat.Dense // N×(P+1), column 0 is the all-ones intercept
	y       []float64  // length N, entries in {0, 1}
	rows    int
	cols    int // P+1
	priorSD float64
}

// Option configures Model construction.
type Option func(*Model)

// WithPriorSD overrides DefaultPriorSD. Must be strictly positive and
// finite; New reports ErrNonPositiveScale / ErrNaNInf otherwise.
func WithPriorSD(sd float64) Option {
	return func(m *Model) { m.priorSD = sd }
}

// New validates X and y and builds a Model.
//
// Contracts:
//   - X must be non-nil with at least one row and one column;
//     every entry finite.
//   - len(y) must equal rows(X); every entry exactly 0 or 1.
//   - X and y are referenced, not copied; the caller must not mutate them
//     for the Model's lifetime.
//
// Errors: ErrEmptyData, ErrDimensionMismatch, ErrBadLabel, ErrNaNInf,
// ErrNonPositiveScale.
//
// Complexity: O(N·P) for the finiteness scan.
func New(x *mat.Dense, y []float64, opts ...Option) (*Model, error) {
	if x == nil {
		return nil, ErrEmptyData
	}
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return nil, ErrEmptyData
	}
	if len(y) != n {
		return nil, ErrDimensionMismatch
	}

	m := &Model{x: x, y: y, rows: n, cols: p, priorSD: DefaultPriorSD}
	for _, opt := range opts {
		opt(m)
	}
	if math.IsNaN(m.priorSD) || math.IsInf(m.priorSD, 0) {
		return nil, ErrNaNInf
	}
	if m.priorSD <= 0 {
		return nil, ErrNonPositiveScale
	}

	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			v := x.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
		if y[i] != 0 && y[i] != 1 {
			return nil, ErrBadLabel
		}
	}
	return m, nil
}

// Rows returns N, the number of observations.
func (m *Model) Rows() int { return m.rows }

// Dim returns P+1, the coefficient dimension (covariates plus intercept).
func (m *Model) Dim() int { return m.cols }

// PriorSD returns the configured prior standard deviation.
func (m *Model) PriorSD() float64 { return m.priorSD }
