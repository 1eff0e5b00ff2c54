package logit_test

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayeslogit/logit"
)

// benchmarkLogPosterior evaluates the target on an n×p design; the hot path
// of every sampler iteration.
func benchmarkLogPosterior(b *testing.B, n, p int) {
	rng := rand.New(rand.NewSource(1))
	x := mat.NewDense(n, p, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j := 1; j < p; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
		y[i] = float64(i % 2)
	}
	m, err := logit.New(x, y)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	beta := make([]float64, p)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.LogPosterior(beta)
	}
}

// BenchmarkLogPosterior_WineSized matches the red-wine dataset shape.
func BenchmarkLogPosterior_WineSized(b *testing.B) {
	benchmarkLogPosterior(b, 1599, 12)
}

// BenchmarkLogPosterior_Small is the unit-test sized baseline.
func BenchmarkLogPosterior_Small(b *testing.B) {
	benchmarkLogPosterior(b, 100, 3)
}
