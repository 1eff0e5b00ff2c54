package logit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayeslogit/logit"
)

// randomDesign builds an n×p design (intercept + standard-normal covariates)
// from a fixed seed.
func randomDesign(t *testing.T, n, p int, seed uint64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j := 1; j < p; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
	}
	return x
}

// TestProposalCovariance_PositiveDefinite verifies the returned matrix is
// usable as a Gaussian covariance: symmetric by type, Cholesky-factorizable
// in practice.
func TestProposalCovariance_PositiveDefinite(t *testing.T) {
	x := randomDesign(t, 50, 3, 11)
	m, err := logit.New(x, make([]float64, 50))
	require.NoError(t, err)

	sigma, err := m.ProposalCovariance(logit.DefaultProposalScale)
	require.NoError(t, err)
	require.Equal(t, 3, sigma.SymmetricDim())

	var chol mat.Cholesky
	assert.True(t, chol.Factorize(sigma), "covariance must be positive-definite")
}

// TestProposalCovariance_ScaleIsLinear verifies that the scale factor
// multiplies the inverse Gram matrix entrywise.
func TestProposalCovariance_ScaleIsLinear(t *testing.T) {
	x := randomDesign(t, 40, 2, 5)
	m, err := logit.New(x, make([]float64, 40))
	require.NoError(t, err)

	unit, err := m.ProposalCovariance(1.0)
	require.NoError(t, err)
	half, err := m.ProposalCovariance(0.5)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0.5*unit.At(i, j), half.At(i, j), 1e-12)
		}
	}
}

// TestProposalCovariance_SingularDesign ensures a rank-deficient design
// (all-zero covariate column) is reported, not silently inverted.
func TestProposalCovariance_SingularDesign(t *testing.T) {
	x := mat.NewDense(10, 2, nil)
	for i := 0; i < 10; i++ {
		x.Set(i, 0, 1) // column 1 stays identically zero
	}
	m, err := logit.New(x, make([]float64, 10))
	require.NoError(t, err)

	_, err = m.ProposalCovariance(0.5)
	assert.ErrorIs(t, err, logit.ErrSingularDesign)
}

// TestProposalCovariance_BadScale covers the scale guards.
func TestProposalCovariance_BadScale(t *testing.T) {
	x := randomDesign(t, 20, 2, 3)
	m, err := logit.New(x, make([]float64, 20))
	require.NoError(t, err)

	_, err = m.ProposalCovariance(0)
	assert.ErrorIs(t, err, logit.ErrNonPositiveScale)
	_, err = m.ProposalCovariance(-1)
	assert.ErrorIs(t, err, logit.ErrNonPositiveScale)
	_, err = m.ProposalCovariance(math.NaN())
	assert.ErrorIs(t, err, logit.ErrNaNInf)
}
