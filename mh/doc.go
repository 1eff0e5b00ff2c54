// Package mh implements a random-walk Metropolis-Hastings sampler over an
// arbitrary unnormalized log-density, with a fixed symmetric multivariate
// normal proposal.
//
// 🚀 How it works:
//
//	The sampler owns an append-only chain of S coefficient vectors,
//	chain[0] being the externally supplied initialization (typically a
//	maximum-likelihood fit). Each of the remaining S−1 iterations:
//	  1. draws a candidate: star = current + N(0, Σ) step,
//	  2. evaluates the target's log-density at both states,
//	  3. draws u ~ Uniform(0,1),
//	  4. accepts iff log(u) ≤ logp(star) − logp(current); ties accept.
//	Rejections repeat the previous state, so every stored vector is finite
//	by construction.
//
// ✨ Guarantees:
//
//   - Deterministic: one seeded random source is threaded through the
//     proposal draw and the uniform draw, in that fixed order, every
//     iteration — identical seed and inputs reproduce the chain exactly.
//   - Symmetric proposal: the Gaussian step does not depend on the current
//     state, so the Hastings correction ratio is identically 1.
//   - Non-finite log-density at a proposal rejects it; non-finite at the
//     current state aborts the run with ErrChainCorrupted.
//   - Cooperative cancellation: Run checks its context every iteration.
//
// The sampler is single-threaded by nature (each state depends on the
// previous one). Independent chains may run concurrently against the same
// read-only target and covariance; derive their seeds with ChainSeed.
//
// Observability is a hook, not a logger: set Config.ProgressFn to receive
// the running acceptance rate at fixed intervals.
package mh
