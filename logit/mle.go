package logit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IRLS tuning constants.
const (
	// DefaultMaxIRLSIter bounds the Newton iterations of FitMLE.
	DefaultMaxIRLSIter = 25

	// DefaultIRLSTol is the convergence threshold on the max-norm of the
	// Newton step.
	DefaultIRLSTol = 1e-8

	// minIRLSWeight floors the per-row working weight p(1−p) so a fitted
	// probability saturating at 0 or 1 cannot zero out a Cholesky pivot.
	minIRLSWeight = 1e-10
)

// FitConfig tunes FitMLE. The zero value selects the documented defaults.
type FitConfig struct {
	// MaxIter bounds the Newton iterations; 0 means DefaultMaxIRLSIter.
	MaxIter int

	// Tol is the max-norm step threshold; 0 means DefaultIRLSTol.
	Tol float64
}

// FitMLE computes the maximum-likelihood coefficients by iteratively
// reweighted least squares (Newton-Raphson on the Bernoulli log-likelihood):
//
//	beta ← beta + (XᵗWX)⁻¹ Xᵗ(y − p),  W = diag(pᵢ(1−pᵢ))
//
// starting from the zero vector. The result is the conventional seed for a
// posterior chain (the frequentist fit the sampler is initialized at).
//
// Errors: ErrSingularDesign when a weighted Gram matrix loses positive
// definiteness, ErrNoConvergence when MaxIter is exhausted.
//
// Complexity: O(MaxIter · (N·P² + P³)).
func (m *Model) FitMLE(cfg FitConfig) ([]float64, error) {
	maxIter := cfg.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIRLSIter
	}
	tol := cfg.Tol
	if tol <= 0 {
		tol = DefaultIRLSTol
	}

	n, p := m.rows, m.cols
	beta := make([]float64, p)
	eta := mat.NewVecDense(n, nil)
	wx := mat.NewDense(n, p, nil)
	resid := mat.NewVecDense(n, nil)

	for iter := 0; iter < maxIter; iter++ {
		eta.MulVec(m.x, mat.NewVecDense(p, beta))

		for i := 0; i < n; i++ {
			pi := sigmoid(eta.AtVec(i))
			w := pi * (1 - pi)
			if w < minIRLSWeight {
				w = minIRLSWeight
			}
			for j := 0; j < p; j++ {
				wx.Set(i, j, w*m.x.At(i, j))
			}
			resid.SetVec(i, m.y[i]-pi)
		}

		var xtwx mat.Dense
		xtwx.Mul(m.x.T(), wx)
		var chol mat.Cholesky
		if !chol.Factorize(symmetrize(&xtwx)) {
			return nil, ErrSingularDesign
		}

		var grad mat.VecDense
		grad.MulVec(m.x.T(), resid)
		var delta mat.VecDense
		if err := chol.SolveVecTo(&delta, &grad); err != nil {
			return nil, ErrSingularDesign
		}

		var step float64
		for j := 0; j < p; j++ {
			d := delta.AtVec(j)
			beta[j] += d
			if math.Abs(d) > step {
				step = math.Abs(d)
			}
		}
		if step < tol {
			return beta, nil
		}
	}
	return nil, ErrNoConvergence
}
