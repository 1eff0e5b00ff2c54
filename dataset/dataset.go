package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Load parses, standardizes and binarizes a tabular dataset.
//
// Contracts:
//   - The first record is a header of column names; exactly one of them
//     (the configured score column) is the quality score, every other
//     column is a numeric covariate.
//   - Records must be rectangular (encoding/csv enforces this). Parsing
//     failures keep the offending row and column name in the message.
//
// Errors: ErrMissingColumn, ErrNoRows, ErrBadValue, ErrConstantColumn,
// plus wrapped csv reader errors.
//
// Complexity: O(N·P).
func Load(r io.Reader, opts ...Option) (*Table, error) {
	cfg := config{
		scoreColumn: DefaultScoreColumn,
		threshold:   DefaultQualityThreshold,
		comma:       DefaultComma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading header: %w", err)
	}
	scoreIdx := -1
	for i, name := range header {
		if name == cfg.scoreColumn {
			scoreIdx = i
			break
		}
	}
	if scoreIdx < 0 || len(header) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cfg.scoreColumn)
	}

	names := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != scoreIdx {
			names = append(names, name)
		}
	}
	p := len(names)

	// raw[j] collects covariate column j; scores collects the score column.
	raw := make([][]float64, p)
	var scores []float64
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", row, err)
		}
		col := 0
		for i, cell := range record {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d column %q", ErrBadValue, row, header[i])
			}
			if i == scoreIdx {
				scores = append(scores, v)
				continue
			}
			raw[col] = append(raw[col], v)
			col++
		}
	}
	n := len(scores)
	if n == 0 {
		return nil, ErrNoRows
	}

	t := &Table{
		names:  names,
		labels: make([]float64, n),
		means:  make([]float64, p),
		stddev: make([]float64, p),
	}
	for i, s := range scores {
		if s >= cfg.threshold {
			t.labels[i] = 1
		}
	}

	// Standardize in place, then assemble the design matrix with the
	// intercept in column 0.
	t.design = mat.NewDense(n, p+1, nil)
	for j := 0; j < p; j++ {
		t.means[j] = stat.Mean(raw[j], nil)
		t.stddev[j] = stat.StdDev(raw[j], nil)
		if t.stddev[j] == 0 || math.IsNaN(t.stddev[j]) {
			return nil, fmt.Errorf("%w: %q", ErrConstantColumn, names[j])
		}
		for i := 0; i < n; i++ {
			t.design.Set(i, j+1, (raw[j][i]-t.means[j])/t.stddev[j])
		}
	}
	for i := 0; i < n; i++ {
		t.design.Set(i, 0, 1)
	}
	return t, nil
}

// NewObservation maps a raw covariate vector (design-column order, no
// intercept) into the model's standardized space and prepends the leading 1,
// producing the xNew vector the posterior-predictive simulator expects.
//
// Errors: ErrDimensionMismatch, ErrBadValue (non-finite entry).
func (t *Table) NewObservation(raw []float64) ([]float64, error) {
	if len(raw) != len(t.names) {
		return nil, fmt.Errorf("%w: got %d covariates, want %d",
			ErrDimensionMismatch, len(raw), len(t.names))
	}
	x := make([]float64, len(raw)+1)
	x[0] = 1
	for j, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: covariate %q", ErrBadValue, t.names[j])
		}
		x[j+1] = (v - t.means[j]) / t.stddev[j]
	}
	return x, nil
}
