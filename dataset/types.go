package dataset

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DEFAULTS - single source of truth for loader configuration.
const (
	// DefaultScoreColumn is the header name of the quality score.
	DefaultScoreColumn = "quality"

	// DefaultQualityThreshold binarizes the score: score ≥ threshold ⇒ 1.
	DefaultQualityThreshold = 6.5

	// DefaultComma is the field delimiter (the UCI wine files use ';').
	DefaultComma = ';'
)

// Sentinel errors for the dataset package; match with errors.Is.
var (
	// ErrNoRows indicates a file with a header but no data rows.
	ErrNoRows = errors.New("dataset: no data rows")

	// ErrMissingColumn indicates that the configured score column is absent
	// from the header, or the header itself is empty.
	ErrMissingColumn = errors.New("dataset: score column not found")

	// ErrBadValue indicates a cell that does not parse as a finite number.
	ErrBadValue = errors.New("dataset: non-numeric or non-finite value")

	// ErrConstantColumn indicates a covariate with zero variance, which
	// cannot be standardized.
	ErrConstantColumn = errors.New("dataset: constant covariate column")

	// ErrDimensionMismatch indicates a new observation whose length differs
	// from the covariate count.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")
)

// Option configures Load.
type Option func(*config)

type config struct {
	scoreColumn string
	threshold   float64
	comma       rune
}

// WithScoreColumn overrides DefaultScoreColumn.
func WithScoreColumn(name string) Option {
	return func(c *config) { c.scoreColumn = name }
}

// WithQualityThreshold overrides DefaultQualityThreshold.
func WithQualityThreshold(t float64) Option {
	return func(c *config) { c.threshold = t }
}

// WithComma overrides the field delimiter.
func WithComma(r rune) Option {
	return func(c *config) { c.comma = r }
}

// Table is the parsed, standardized dataset. Built once by Load; all
// accessors are read-only.
type Table struct {
	design *mat.Dense // N×(P+1), column 0 all ones
	labels []float64  // {0,1}, length N
	names  []string   // covariate names, length P, header order
	means  []float64  // raw covariate means, length P
	stddev []float64  // raw covariate standard deviations, length P
}

// Design returns the N×(P+1) design matrix. Treat it as read-only; the
// logit model references it without copying.
func (t *Table) Design() *mat.Dense { return t.design }

// Labels returns the {0,1} response vector. Treat it as read-only.
func (t *Table) Labels() []float64 { return t.labels }

// CovariateNames returns the covariate header names in design-column order
// (design column j+1 corresponds to name j).
func (t *Table) CovariateNames() []string { return t.names }

// Rows returns N.
func (t *Table) Rows() int { return len(t.labels) }

// Dim returns P+1, the design-matrix column count.
func (t *Table) Dim() int { return len(t.names) + 1 }
