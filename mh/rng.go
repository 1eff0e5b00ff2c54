// Package mh - RNG utilities for the sampler.
//
// This file centralizes deterministic random generation for the chain
// driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Compatibility: golang.org/x/exp/rand sources, so one stream feeds both
//     the gonum distmv proposal and the uniform accept/reject draw.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Each Run owns its generator
//     exclusively; parallel chains must use ChainSeed-derived seeds.
package mh

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// ChainSeed mixes a base seed and a chain index into a new 64-bit seed,
// giving independent streams for parallel chains run against the same
// target (reproducibility studies, multi-chain diagnostics).
//
// Rationale:
//   - Sequential seeds (base, base+1, ...) correlate poorly in some
//     generators; a SplitMix64-style avalanche mix eliminates that.
//   - Constants are the canonical SplitMix64 multipliers/finalizer
//     (Vigna 2014): small input changes produce well-distributed outputs.
//
// Complexity: O(1).
func ChainSeed(base uint64, chain uint64) uint64 {
	x := base ^ (chain + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		// Zero would trip the seed==0 default policy downstream.
		x = defaultRNGSeed
	}
	return x
}
