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

// simulateLogistic draws an n-row dataset (design + labels) from the logistic
// model with the given true coefficients, deterministically from seed.
func simulateLogistic(t *testing.T, n int, truth []float64, seed uint64) (*mat.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	p := len(truth)
	x := mat.NewDense(n, p, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		eta := truth[0]
		for j := 1; j < p; j++ {
			v := rng.NormFloat64()
			x.Set(i, j, v)
			eta += truth[j] * v
		}
		if rng.Float64() < 1/(1+math.Exp(-eta)) {
			y[i] = 1
		}
	}
	return x, y
}

// TestFitMLE_RecoversTrueCoefficients fits IRLS on a large simulated sample
// and checks the estimate lands near the generating coefficients.
func TestFitMLE_RecoversTrueCoefficients(t *testing.T) {
	truth := []float64{0.3, 1.0, -0.7}
	x, y := simulateLogistic(t, 2000, truth, 17)

	m, err := logit.New(x, y)
	require.NoError(t, err)

	beta, err := m.FitMLE(logit.FitConfig{})
	require.NoError(t, err)
	require.Len(t, beta, 3)

	// MLE standard errors at n=2000 are roughly 0.06-0.08; half a unit of
	// slack keeps the assertion far outside noise.
	for j := range truth {
		assert.InDelta(t, truth[j], beta[j], 0.5, "coefficient %d", j)
	}
}

// TestFitMLE_DeterministicOnFixedData asserts two fits on the same inputs
// agree exactly (IRLS has no internal randomness).
func TestFitMLE_DeterministicOnFixedData(t *testing.T) {
	x, y := simulateLogistic(t, 300, []float64{0, 0.5}, 23)
	m, err := logit.New(x, y)
	require.NoError(t, err)

	a, err := m.FitMLE(logit.FitConfig{})
	require.NoError(t, err)
	b, err := m.FitMLE(logit.FitConfig{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestFitMLE_SingularDesign ensures a zero covariate column fails the
// weighted Cholesky instead of diverging.
func TestFitMLE_SingularDesign(t *testing.T) {
	x := mat.NewDense(20, 3, nil)
	y := make([]float64, 20)
	for i := 0; i < 20; i++ {
		x.Set(i, 0, 1)
		x.Set(i, 1, float64(i%5)) // column 2 stays identically zero
		y[i] = float64(i % 2)
	}
	m, err := logit.New(x, y)
	require.NoError(t, err)

	_, err = m.FitMLE(logit.FitConfig{})
	assert.ErrorIs(t, err, logit.ErrSingularDesign)
}

// TestFitMLE_IterationBudget verifies the ErrNoConvergence path when the
// budget is too small for any real progress.
func TestFitMLE_IterationBudget(t *testing.T) {
	x, y := simulateLogistic(t, 500, []float64{0.5, 2.0, -1.5}, 31)
	m, err := logit.New(x, y)
	require.NoError(t, err)

	_, err = m.FitMLE(logit.FitConfig{MaxIter: 1})
	assert.ErrorIs(t, err, logit.ErrNoConvergence)
}
