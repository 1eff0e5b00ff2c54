// Package dataset turns a tabular file of named numeric columns — the wine
// quality layout: physicochemical covariates plus a quality score — into the
// immutable inputs the logit model consumes.
//
// ⚙️ Pipeline:
//
//  1. Parse: semicolon-separated values with a header row (the UCI wine
//     quality convention; the delimiter is configurable).
//  2. Standardize: every covariate column is centered and scaled to unit
//     standard deviation; the column means and standard deviations are kept
//     so fresh observations can be mapped into the same space.
//  3. Binarize: the score column becomes a {0,1} label via a threshold
//     (quality ≥ 6.5 ⇒ 1 by default).
//  4. Assemble: an N×(P+1) design matrix with a leading all-ones intercept
//     column, built once and never mutated.
//
// Degenerate input (missing score column, non-numeric cells, ragged rows,
// zero-variance covariates) surfaces as sentinel errors before any matrix
// is built.
package dataset
