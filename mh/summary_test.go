package mh_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayeslogit/mh"
)

// degenerateChain runs a zero-covariance sampler: every retained row equals
// the initial state, giving exactly known summary moments.
func degenerateChain(t *testing.T, s int, initial []float64) *mh.Chain {
	t.Helper()
	smp, err := mh.New(gaussianTarget{}, initial, mat.NewSymDense(len(initial), nil), mh.Config{Iterations: s})
	require.NoError(t, err)
	chain, err := smp.Run(context.Background())
	require.NoError(t, err)
	return chain
}

// TestSummarize_ConstantChain: a constant chain has mean == state and zero
// spread, whatever the burn-in.
func TestSummarize_ConstantChain(t *testing.T) {
	initial := []float64{1.25, -0.5}
	chain := degenerateChain(t, 10, initial)

	sum, err := mh.Summarize(chain, 2)
	require.NoError(t, err)

	assert.Equal(t, 8, sum.Retained)
	assert.Equal(t, chain.Accepted(), sum.Accepted)
	assert.Equal(t, chain.AcceptanceRate(), sum.AcceptanceRate)
	for j := range initial {
		assert.InDelta(t, initial[j], sum.Mean[j], 1e-15)
		assert.InDelta(t, 0, sum.StdDev[j], 1e-15)
	}
}

// TestSummarize_BurnInBounds covers the ErrBadBurnIn guard.
func TestSummarize_BurnInBounds(t *testing.T) {
	chain := degenerateChain(t, 5, []float64{0})

	_, err := mh.Summarize(chain, -1)
	assert.ErrorIs(t, err, mh.ErrBadBurnIn)
	_, err = mh.Summarize(chain, 5)
	assert.ErrorIs(t, err, mh.ErrBadBurnIn)

	_, err = mh.Summarize(chain, 0)
	assert.NoError(t, err)
}
