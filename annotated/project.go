// SPDX-License-Identifier: MIT
// Package annotated: projections and bulk writes.
//
// Purpose:
//   - Cols/Rows: build a new, independent Matrix restricted to a subset.
//   - HStack: operand-major column concatenation (no sorting, no de-dup).
//   - Fill/CopyTo/CopyRowTo: bulk in-place writes through the resolver.
//
// Contracts:
//   - Projections never mutate the receiver.
//   - Bulk writes validate shape, bounds and values before the first write;
//     a failing call leaves the receiver untouched.

package annotated

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algodata/matrix"
)

const (
	opCols      = "Cols"
	opRows      = "Rows"
	opHStack    = "HStack"
	opFill      = "Fill"
	opCopyTo    = "CopyTo"
	opCopyRowTo = "CopyRowTo"
)

// Cols returns a new Matrix holding the selected columns in ascending order.
// Positions outside [0, Cols()) are dropped silently. Evaluations and result
// values are not carried over.
//
// Errors:
//   - ErrUnsupportedIndexKind.
//
// Complexity:
//   - Time O(N*K), Space O(N*K) for K retained columns.
func (m *Matrix) Cols(expr Index) (*Matrix, error) {
	cs, err := m.ResolveColumns(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCols, err)
	}
	kept := make([]int, 0, len(cs))
	for _, c := range cs {
		if c >= 0 && c < m.Cols() {
			kept = append(kept, c)
		}
	}

	d, err := m.data.Induced(seq(m.Rows()), kept)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCols, err)
	}

	return &Matrix{data: d, header: m.header.Gather(kept)}, nil
}

// Rows returns a new Matrix holding the selected data rows in resolved order.
// Positions outside [0, Rows()) are dropped silently; the header is copied
// unchanged.
//
// Errors:
//   - ErrUnsupportedIndexKind (including header-row selectors).
func (m *Matrix) Rows(expr Index) (*Matrix, error) {
	rs, err := m.ResolveRows(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRows, err)
	}
	kept := make([]int, 0, len(rs))
	for _, r := range rs {
		if r.IsHeader() {
			return nil, fmt.Errorf("%s(%v): header row %s: %w", opRows, expr, r, ErrUnsupportedIndexKind)
		}
		if r.Pos() >= 0 && r.Pos() < m.Rows() {
			kept = append(kept, r.Pos())
		}
	}

	d, err := m.data.Induced(kept, seq(m.Cols()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRows, err)
	}

	return &Matrix{data: d, header: m.header.Clone()}, nil
}

// HStack concatenates operands column-wise in operand order. All operands
// must have the same number of data rows.
//
// Errors:
//   - ErrShape (no operands or a nil operand), ErrShapeMismatch (row counts differ).
//
// Complexity:
//   - Time O(N*ΣM), Space O(N*ΣM).
func HStack(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: no operands: %w", opHStack, ErrShape)
	}
	blocks := make([]matrix.Matrix, len(ms))
	headers := make([]Header, len(ms))
	for k, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("%s: operand %d is nil: %w", opHStack, k, ErrShape)
		}
		if m.Rows() != ms[0].Rows() {
			return nil, fmt.Errorf("%s: operand %d has %d rows, want %d: %w",
				opHStack, k, m.Rows(), ms[0].Rows(), ErrShapeMismatch)
		}
		blocks[k] = m.data
		headers[k] = m.header
	}

	d, err := matrix.HStack(blocks...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHStack, err)
	}

	return &Matrix{data: d, header: ConcatHeaders(headers...).Clone()}, nil
}

// Fill sets every data cell of the selected columns to v. A selection with
// no columns is a no-op.
//
// Errors:
//   - ErrUnsupportedIndexKind, ErrIndexOutOfRange, matrix.ErrNaNInf.
func (m *Matrix) Fill(cols Index, v float64) error {
	cs, err := m.ResolveColumns(cols)
	if err != nil {
		return fmt.Errorf("%s: %w", opFill, err)
	}
	for _, c := range cs {
		if c < 0 || c >= m.Cols() {
			return fmt.Errorf("%s(%v): column %d: %w", opFill, cols, c, ErrIndexOutOfRange)
		}
	}
	if m.data.ValidatesNaNInf() && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("%s(%v): %w", opFill, cols, matrix.ErrNaNInf)
	}

	selected := make(map[int]bool, len(cs))
	for _, c := range cs {
		selected[c] = true
	}
	err = m.data.Apply(func(_, j int, cur float64) float64 {
		if selected[j] {
			return v
		}
		return cur
	})
	if err != nil {
		return fmt.Errorf("%s: %w", opFill, err)
	}

	return nil
}

// CopyTo writes a 2-D source into the cells addressed by rows × cols.
// MAIN DESCRIPTION:
//   - src must have exactly one row per resolved row and one value per
//     resolved column; a nil cols expression means every column.
//   - Header rows are writable only when they are numeric (min/max rows).
//
// Implementation:
//   - Stage 1: resolve both axes; check the shape.
//   - Stage 2: check bounds, header writability and the numeric policy.
//   - Stage 3: write element by element.
//
// Errors:
//   - ErrShapeMismatch, ErrIndexOutOfRange, ErrTypeMismatch,
//     ErrUnsupportedIndexKind, matrix.ErrNaNInf.
func (m *Matrix) CopyTo(src [][]float64, rows, cols Index) error {
	if cols == nil {
		cols = All()
	}
	rs, err := m.ResolveRows(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", opCopyTo, err)
	}
	cs, err := m.ResolveColumns(cols)
	if err != nil {
		return fmt.Errorf("%s: %w", opCopyTo, err)
	}

	// Stage 1
	if len(src) != len(rs) {
		return fmt.Errorf("%s: source has %d rows, selection %d: %w", opCopyTo, len(src), len(rs), ErrShapeMismatch)
	}
	for i, row := range src {
		if len(row) != len(cs) {
			return fmt.Errorf("%s: source row %d has %d values, selection %d: %w",
				opCopyTo, i, len(row), len(cs), ErrShapeMismatch)
		}
	}

	// Stage 2
	for _, c := range cs {
		if c < 0 || c >= m.Cols() {
			return fmt.Errorf("%s: column %d: %w", opCopyTo, c, ErrIndexOutOfRange)
		}
	}
	for i, r := range rs {
		if r.IsHeader() {
			if !r.Field().IsNumeric() {
				return fmt.Errorf("%s: header row %s is not numeric: %w", opCopyTo, r, ErrTypeMismatch)
			}
			continue
		}
		if r.Pos() < 0 || r.Pos() >= m.Rows() {
			return fmt.Errorf("%s: row %d: %w", opCopyTo, r.Pos(), ErrIndexOutOfRange)
		}
		if m.data.ValidatesNaNInf() {
			for _, v := range src[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%s: source row %d: %w", opCopyTo, i, matrix.ErrNaNInf)
				}
			}
		}
	}

	// Stage 3
	for i, r := range rs {
		for k, c := range cs {
			if err = m.setCell(r, c, src[i][k]); err != nil {
				return fmt.Errorf("%s: %w", opCopyTo, err)
			}
		}
	}

	return nil
}

// CopyRowTo writes a 1-D source into a single resolved row.
// Errors: ErrShapeMismatch when rows does not resolve to exactly one row or
// the value count differs from the column count; otherwise as CopyTo.
func (m *Matrix) CopyRowTo(src []float64, row, cols Index) error {
	rs, err := m.ResolveRows(row)
	if err != nil {
		return fmt.Errorf("%s: %w", opCopyRowTo, err)
	}
	if len(rs) != 1 {
		return fmt.Errorf("%s: %d rows selected, want 1: %w", opCopyRowTo, len(rs), ErrShapeMismatch)
	}
	if err = m.CopyTo([][]float64{src}, row, cols); err != nil {
		return fmt.Errorf("%s: %w", opCopyRowTo, err)
	}

	return nil
}

// seq returns 0..n-1.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
