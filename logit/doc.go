// Package logit implements Bayesian logistic regression: the unnormalized
// log-posterior of a coefficient vector under a Bernoulli likelihood with
// independent zero-mean Gaussian priors, plus the supporting pieces a
// random-walk sampler needs around it.
//
// 🚀 What lives here?
//
//   - Model          — immutable design matrix X (N×(P+1), leading intercept
//     column) and {0,1} response y, with a configurable prior
//     standard deviation.
//   - LogPosterior   — numerically stable log-likelihood + log-prior of a
//     coefficient vector (the sampling target).
//   - FitMLE         — frequentist IRLS fit producing the maximum-likelihood
//     coefficients commonly used to seed an MCMC chain.
//   - ProposalCovariance — scale·(XᵗX)⁻¹, the fixed random-walk proposal
//     covariance for the mh package.
//   - Predictive     — lazy posterior-predictive Bernoulli draws for a new
//     covariate vector, one per retained chain sample.
//
// ✨ Numerical policy:
//
//   - log P(y=1) = −log1pexp(−eta) and log P(y=0) = −log1pexp(eta), evaluated
//     branch-wise so neither tail overflows nor hits log(0).
//   - Degenerate inputs (NaN/±Inf linear predictor, wrong-length coefficient
//     vector) map to −Inf rather than propagating NaN: a sampler treats such
//     a state as having zero posterior density and rejects it.
//
// All user-triggered failures are sentinel errors (errors.Is-matchable);
// the package never panics on user input and never logs.
//
// See example_test.go for end-to-end usage with the mh sampler.
package logit
