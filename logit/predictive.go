package logit

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultPredictiveSeed is the fixed seed substituted when callers pass
// seed==0, keeping zero-value configuration deterministic.
const defaultPredictiveSeed uint64 = 1

// PredictiveConfig tunes NewPredictive. The zero value is ready to use:
// no burn-in and the fixed default seed.
type PredictiveConfig struct {
	// BurnIn is the chain prefix to skip; negative means DefaultBurnIn,
	// 0 means no burn-in. Must leave at least one retained sample.
	BurnIn int

	// Seed drives the Bernoulli draws; 0 selects a fixed default seed so
	// runs stay reproducible by default.
	Seed uint64
}

// Predictive is a lazy, finite, non-restartable stream of posterior
// predictive draws: for each retained chain sample beta it yields one
// Bernoulli(σ(betaᵗ·xNew)) outcome. Consumers aggregate the draws (e.g.
// into a frequency table) to approximate the posterior predictive
// distribution of a new observation.
//
// Not safe for concurrent use: the stream owns its random source.
type Predictive struct {
	chain [][]float64
	xNew  []float64
	idx   int // next chain row to consume
	src   rand.Source
}

// NewPredictive validates inputs and builds the draw stream over
// chain[burnIn:]. The chain is read, never mutated; identical chain, xNew
// and seed yield an identical draw sequence.
//
// Errors: ErrEmptyChain, ErrDimensionMismatch (xNew length differs from the
// chain's coefficient dimension), ErrNaNInf (non-finite xNew entry),
// ErrBadBurnIn (burn-in consumes the whole chain).
func NewPredictive(chain [][]float64, xNew []float64, cfg PredictiveConfig) (*Predictive, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	for _, beta := range chain {
		if len(beta) != len(xNew) {
			return nil, ErrDimensionMismatch
		}
	}
	for _, v := range xNew {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	burnIn := cfg.BurnIn
	if burnIn < 0 {
		burnIn = DefaultBurnIn
	}
	if burnIn >= len(chain) {
		return nil, ErrBadBurnIn
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultPredictiveSeed
	}
	return &Predictive{
		chain: chain[burnIn:],
		xNew:  xNew,
		src:   rand.NewSource(seed),
	}, nil
}

// Remaining reports how many draws the stream will still produce.
func (p *Predictive) Remaining() int { return len(p.chain) - p.idx }

// Next produces the next predictive draw (0 or 1). The second result is
// false once the retained chain is exhausted; the stream cannot be rewound.
func (p *Predictive) Next() (int, bool) {
	if p.idx >= len(p.chain) {
		return 0, false
	}
	eta := floats.Dot(p.chain[p.idx], p.xNew)
	p.idx++
	bern := distuv.Bernoulli{P: sigmoid(eta), Src: p.src}
	return int(bern.Rand()), true
}

// Draws consumes the remainder of the stream into a slice.
func (p *Predictive) Draws() []int {
	out := make([]int, 0, p.Remaining())
	for {
		d, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}

// Proportion returns the fraction of 1s among draws, the Monte-Carlo
// estimate of P(y=1 | xNew, data). Returns 0 for an empty slice.
func Proportion(draws []int) float64 {
	if len(draws) == 0 {
		return 0
	}
	var ones int
	for _, d := range draws {
		ones += d
	}
	return float64(ones) / float64(len(draws))
}
