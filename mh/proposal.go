package mh

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// proposal draws symmetric multivariate-normal candidates around the
// current state. The zero-mean step distribution is built once from the
// fixed covariance; shifting it by the current state keeps
// q(star|current) == q(current|star), so no Hastings correction is needed.
type proposal struct {
	dim  int
	step *distmv.Normal // nil in the degenerate all-zero covariance mode
	buf  []float64
}

// isZeroSym reports whether every entry of s is exactly zero.
func isZeroSym(s *mat.SymDense) bool {
	n := s.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if s.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// newProposal validates sigma and binds the step distribution to src.
//
// Policy: a positive-definite sigma is the normal case. The all-zero matrix
// is accepted as an explicit degenerate mode (every candidate equals the
// current state — useful for tests and dry runs); any other factorization
// failure is ErrNotPositiveDefinite.
func newProposal(sigma *mat.SymDense, src rand.Source) (*proposal, error) {
	n := sigma.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := sigma.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
	}

	zero := make([]float64, n)
	step, ok := distmv.NewNormal(zero, sigma, src)
	if !ok {
		if !isZeroSym(sigma) {
			return nil, ErrNotPositiveDefinite
		}
		return &proposal{dim: n}, nil
	}
	return &proposal{dim: n, step: step, buf: make([]float64, n)}, nil
}

// propose writes one candidate into dst: current plus a fresh Gaussian
// step. In degenerate mode dst is a plain copy of current and no
// randomness is consumed.
func (p *proposal) propose(dst, current []float64) {
	if p.step == nil {
		copy(dst, current)
		return
	}
	p.step.Rand(p.buf)
	floats.AddTo(dst, current, p.buf)
}
