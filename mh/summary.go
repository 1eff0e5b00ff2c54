package mh

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrBadBurnIn indicates a burn-in prefix that is negative or leaves no
// retained samples to summarize.
var ErrBadBurnIn = errors.New("mh: burn-in out of range")

// Summary holds per-coefficient posterior statistics over the retained
// (post-burn-in) part of a chain, for downstream reporting (trace plots,
// tables with MLE reference lines).
type Summary struct {
	// Mean and StdDev are per-coefficient moments over the retained rows.
	Mean   []float64
	StdDev []float64

	// Retained is the number of rows summarized (Len − burnIn).
	Retained int

	// Accepted and AcceptanceRate restate the chain's whole-run counters.
	Accepted       int
	AcceptanceRate float64
}

// Summarize computes a Summary over c.Draws()[burnIn:]. The chain is read,
// never mutated.
//
// Errors: ErrBadBurnIn when burnIn < 0 or burnIn ≥ c.Len().
//
// Complexity: O((S−burnIn) · dim).
func Summarize(c *Chain, burnIn int) (*Summary, error) {
	if burnIn < 0 || burnIn >= c.Len() {
		return nil, ErrBadBurnIn
	}
	retained := c.Len() - burnIn

	col := make([]float64, retained)
	mean := make([]float64, c.Dim())
	sd := make([]float64, c.Dim())
	for j := 0; j < c.Dim(); j++ {
		for i := 0; i < retained; i++ {
			col[i] = c.At(burnIn + i)[j]
		}
		mean[j] = stat.Mean(col, nil)
		sd[j] = stat.StdDev(col, nil)
	}

	return &Summary{
		Mean:           mean,
		StdDev:         sd,
		Retained:       retained,
		Accepted:       c.Accepted(),
		AcceptanceRate: c.AcceptanceRate(),
	}, nil
}
