package logit

import "errors"

// Sentinel errors for the logit package. Every message is prefixed with
// "logit: " for easy grepping; callers match with errors.Is.
var (
	// ErrDimensionMismatch indicates incompatible shapes between the design
	// matrix, the response vector, a coefficient vector or a new observation.
	ErrDimensionMismatch = errors.New("logit: dimension mismatch")

	// ErrEmptyData indicates a design matrix with zero rows or zero columns.
	ErrEmptyData = errors.New("logit: empty design matrix")

	// ErrBadLabel indicates a response entry outside {0, 1}.
	ErrBadLabel = errors.New("logit: response labels must be 0 or 1")

	// ErrNaNInf indicates a NaN or ±Inf value where finite input is required
	// (design matrix entries, prior standard deviation, new observations).
	ErrNaNInf = errors.New("logit: NaN or Inf encountered")

	// ErrNonPositiveScale indicates a proposal scale or prior standard
	// deviation that is not strictly positive.
	ErrNonPositiveScale = errors.New("logit: scale must be positive")

	// ErrSingularDesign indicates that XᵗX (or its IRLS-weighted variant)
	// is not positive-definite, so no Cholesky solve is possible.
	ErrSingularDesign = errors.New("logit: design matrix is rank-deficient")

	// ErrNoConvergence indicates that IRLS exhausted its iteration budget
	// before the Newton step shrank below tolerance.
	ErrNoConvergence = errors.New("logit: IRLS did not converge")

	// ErrEmptyChain indicates a posterior chain with no retained samples.
	ErrEmptyChain = errors.New("logit: empty coefficient chain")

	// ErrBadBurnIn indicates a burn-in prefix that is negative or consumes
	// the entire chain.
	ErrBadBurnIn = errors.New("logit: burn-in out of range")
)
