// Package bayeslogit is a self-contained toolkit for Bayesian logistic
// regression by random-walk Metropolis-Hastings — from a raw covariate
// table to a posterior coefficient chain and predictive draws.
//
// 🚀 What is bayeslogit?
//
//	A small, deterministic MCMC stack built on gonum:
//		• dataset/ — tabular parsing, covariate standardization, label
//		  binarization, design-matrix assembly
//		• logit/   — the model: numerically stable log-posterior, IRLS
//		  maximum-likelihood seeding, proposal covariance, posterior
//		  predictive streams
//		• mh/      — the sampler: fixed symmetric Gaussian proposal,
//		  accept/reject chain driver, acceptance accounting, chain
//		  summaries
//
// ✨ Why choose bayeslogit?
//
//   - Reproducible – one seeded random source per run, fixed draw order;
//     identical seeds replay chains bit for bit
//   - Rock-solid numerics – log-form acceptance, branch-stable log1pexp
//     likelihood, every stored chain state finite by construction
//   - Explicit failure taxonomy – sentinel errors for bad input, local
//     rejection for degenerate proposals, hard abort for corrupted chains
//   - Pure Go on gonum – no probabilistic-programming engine, no cgo
//
// Typical flow:
//
//	table  → dataset.Load(file)
//	model  → logit.New(table.Design(), table.Labels())
//	seed   → model.FitMLE(...)           // frequentist initialization
//	Σ      → model.ProposalCovariance(0.5)
//	chain  → mh.New(model, seed, Σ, cfg).Run(ctx)
//	report → mh.Summarize(chain, burnIn), logit.NewPredictive(chain.Draws(), xNew, ...)
//
// See examples/ for complete scenarios.
package bayeslogit
