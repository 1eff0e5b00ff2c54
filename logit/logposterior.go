package logit

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// log1pExp returns log(1+exp(x)) without overflow on either tail.
// For x ≤ 0 the naive form is already safe; for x > 0 the identity
// log(1+e^x) = x + log(1+e^(−x)) keeps the exponent non-positive.
func log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// sigmoid returns exp(x)/(1+exp(x)) evaluated branch-wise so the
// exponential argument is never positive.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// LogPosterior returns the unnormalized log posterior density of beta:
// Bernoulli log-likelihood plus independent N(0, priorSD²) log-prior terms.
//
// Contracts:
//   - Pure: identical inputs always yield identical output; no hidden state.
//   - len(beta) != Dim(), or any non-finite intermediate (NaN/±Inf linear
//     predictor, NaN beta entry), yields −Inf rather than NaN. A Metropolis
//     sampler then rejects such a proposal outright.
//
// Stability: per row, log P(y=1) = −log1pexp(−eta) and
// log P(y=0) = −log1pexp(eta). Neither branch exponentiates a positive
// argument, so large |eta| cannot overflow, and log P(y=0) never passes
// through the fragile log(1−exp(logp)) subtraction.
//
// Complexity: O(N·P) for the matrix-vector product, O(N+P) for the sums.
func (m *Model) LogPosterior(beta []float64) float64 {
	if len(beta) != m.cols {
		return math.Inf(-1)
	}

	eta := mat.NewVecDense(m.rows, nil)
	eta.MulVec(m.x, mat.NewVecDense(m.cols, beta))

	var ll float64
	for i := 0; i < m.rows; i++ {
		e := eta.AtVec(i)
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return math.Inf(-1)
		}
		if m.y[i] == 1 {
			ll -= log1pExp(-e)
		} else {
			ll -= log1pExp(e)
		}
	}

	prior := distuv.Normal{Mu: 0, Sigma: m.priorSD}
	var lp float64
	for _, b := range beta {
		lp += prior.LogProb(b)
	}

	post := ll + lp
	if math.IsNaN(post) {
		return math.Inf(-1)
	}
	return post
}
