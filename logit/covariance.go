package logit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// symmetrize copies a square Dense into a SymDense, averaging a[i][j] and
// a[j][i] to wash out floating-point asymmetry from the Mul that built it.
// Assumes a is square (builders in this package guarantee it).
func symmetrize(a *mat.Dense) *mat.SymDense {
	n, _ := a.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, a.At(i, i))
		for j := i + 1; j < n; j++ {
			s.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	return s
}

// ProposalCovariance returns scale·(XᵗX)⁻¹ as a symmetric positive-definite
// matrix, the fixed covariance of the random-walk proposal.
//
// Contracts:
//   - scale must be strictly positive and finite (ErrNonPositiveScale /
//     ErrNaNInf otherwise); DefaultProposalScale is the conventional value.
//   - Computed once per run: the inverse requires a Cholesky factorization,
//     which fails with ErrSingularDesign when XᵗX is rank-deficient
//     (duplicated or constant covariate columns beyond the intercept).
//
// Complexity: O(N·P²) for the Gram product, O(P³) for the inverse.
func (m *Model) ProposalCovariance(scale float64) (*mat.SymDense, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrNaNInf
	}
	if scale <= 0 {
		return nil, ErrNonPositiveScale
	}

	var xtx mat.Dense
	xtx.Mul(m.x.T(), m.x)
	gram := symmetrize(&xtx)

	var chol mat.Cholesky
	if !chol.Factorize(gram) {
		return nil, ErrSingularDesign
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, ErrSingularDesign
	}

	var sigma mat.SymDense
	sigma.ScaleSym(scale, &inv)
	return &sigma, nil
}
