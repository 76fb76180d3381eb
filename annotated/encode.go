// SPDX-License-Identifier: MIT
// Package annotated: role-driven operations used by training pipelines.
//
// Purpose:
//   - EncodeResults: labels → positions in the ResultPresentation column.
//   - ReduceParameters: Parameter columns → ParameterReduction columns (PCA).
//   - ObserveSourceRange: data extrema → SourceMin/SourceMax header rows.
//   - EvaluationSummary: descriptive statistics of the score series.

package annotated

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algodata/matrix"
	"github.com/katalvlaran/algodata/tags"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	opEncodeResults      = "EncodeResults"
	opReduceParameters   = "ReduceParameters"
	opObserveSourceRange = "ObserveSourceRange"
)

// EncodeResults writes, for every data row i, the position of original[i]
// in order into the single ResultPresentation column, then records order as
// the result values.
//
// Errors:
//   - ErrResultValuesSet, ErrAmbiguousColumn, ErrShapeMismatch (len(original)
//     differs from Rows()), ErrUnknownLabel. Nothing is written on error.
func (m *Matrix) EncodeResults(original, order []string) error {
	if m.resultValues != nil {
		return fmt.Errorf("%s: %w", opEncodeResults, ErrResultValuesSet)
	}
	col, err := m.ColumnOf(tags.ResultPresentation)
	if err != nil {
		return fmt.Errorf("%s: %w", opEncodeResults, err)
	}
	if len(original) != m.Rows() {
		return fmt.Errorf("%s: %d labels for %d rows: %w", opEncodeResults, len(original), m.Rows(), ErrShapeMismatch)
	}

	code := make(map[string]int, len(order))
	for i, label := range order {
		if _, dup := code[label]; !dup {
			code[label] = i
		}
	}
	encoded := make([][]float64, len(original))
	for i, label := range original {
		c, ok := code[label]
		if !ok {
			return fmt.Errorf("%s: row %d label %q: %w", opEncodeResults, i, label, ErrUnknownLabel)
		}
		encoded[i] = []float64{float64(c)}
	}

	if err = m.CopyTo(encoded, All(), Pos(col)); err != nil {
		return fmt.Errorf("%s: %w", opEncodeResults, err)
	}

	return m.SetResultValues(order)
}

// ReduceParameters projects the Parameter columns onto their first k
// principal components and writes them into the k ParameterReduction
// columns (in ascending column order).
// MAIN DESCRIPTION:
//   - k = number of ParameterReduction columns; k == 0 is a no-op.
//
// Implementation:
//   - Stage 1: gather the N×d parameter block into a gonum matrix.
//   - Stage 2: stat.PC → loading vectors; center each column on its mean.
//   - Stage 3: scores = centered × vectors[:, :k]; write through CopyTo.
//
// Errors:
//   - ErrShapeMismatch (k > min(N, d)), ErrReduction (decomposition failed).
//
// Complexity:
//   - Time O(N*d*min(N,d)) for the SVD, Space O(N*d).
func (m *Matrix) ReduceParameters() error {
	reduced := m.ColumnsOf(tags.ParameterReduction)
	k := len(reduced)
	if k == 0 {
		return nil
	}
	params := m.ColumnsOf(tags.Parameter)
	n, d := m.Rows(), len(params)
	if k > d || k > n {
		return fmt.Errorf("%s: %d reduction columns for %d×%d parameters: %w", opReduceParameters, k, n, d, ErrShapeMismatch)
	}

	// Stage 1
	block, err := m.data.Induced(seq(n), params)
	if err != nil {
		return fmt.Errorf("%s: %w", opReduceParameters, err)
	}
	x, err := matrix.ToGonum(block)
	if err != nil {
		return fmt.Errorf("%s: %w", opReduceParameters, err)
	}

	// Stage 2
	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return fmt.Errorf("%s: %w", opReduceParameters, ErrReduction)
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	centered := mat.DenseCopyOf(x)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			centered.Set(i, j, col[i]-mean)
		}
	}

	// Stage 3
	var scores mat.Dense
	scores.Mul(centered, vecs.Slice(0, d, 0, k))
	out := make([][]float64, n)
	for i := range out {
		out[i] = mat.Row(nil, i, &scores)
	}
	if err = m.CopyTo(out, All(), Positions(reduced...)); err != nil {
		return fmt.Errorf("%s: %w", opReduceParameters, err)
	}

	return nil
}

// ObserveSourceRange stores the finite min/max of every selected column's
// data into SourceMin/SourceMax. Columns without finite data become Unset.
//
// Errors:
//   - ErrUnsupportedIndexKind, ErrIndexOutOfRange.
func (m *Matrix) ObserveSourceRange(cols Index) error {
	cs, err := m.ResolveColumns(cols)
	if err != nil {
		return fmt.Errorf("%s: %w", opObserveSourceRange, err)
	}
	lo := make([]float64, len(cs))
	hi := make([]float64, len(cs))
	for k, c := range cs {
		if lo[k], err = matrix.ColumnMin(m.data, c); err != nil {
			return fmt.Errorf("%s: %w", opObserveSourceRange, err)
		}
		if hi[k], err = matrix.ColumnMax(m.data, c); err != nil {
			return fmt.Errorf("%s: %w", opObserveSourceRange, err)
		}
	}
	for k, c := range cs {
		m.header.SourceMin[c] = lo[k]
		m.header.SourceMax[c] = hi[k]
	}

	return nil
}

// Summary describes the evaluation series. Std is the sample standard
// deviation (0 for a single score). For an empty series every statistic is NaN.
type Summary struct {
	Count       int
	Min, Max    float64
	Mean, Std   float64
	First, Last float64
}

// EvaluationSummary summarizes the recorded scores.
func (m *Matrix) EvaluationSummary() Summary {
	n := len(m.evaluations)
	if n == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, Std: nan, First: nan, Last: nan}
	}

	mean, std := stat.MeanStdDev(m.evaluations, nil)
	if n == 1 {
		std = 0
	}

	return Summary{
		Count: n,
		Min:   floats.Min(m.evaluations),
		Max:   floats.Max(m.evaluations),
		Mean:  mean,
		Std:   std,
		First: m.evaluations[0],
		Last:  m.evaluations[n-1],
	}
}
