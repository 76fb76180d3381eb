// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise concatenation (HStack) of heterogeneous Matrix operands.
//   - Per-column extrema used to record source ranges for normalization.
//
// Determinism & Performance:
//   - Fixed operand-major, then row-major traversal.
//   - Dense fast-path copies whole row segments; other implementations go through At.

package matrix

import (
	"fmt"
	"math"
)

const (
	opHStack    = "HStack"
	opColumnMin = "ColumnMin"
	opColumnMax = "ColumnMax"
)

// HStack concatenates operands along the column axis in operand order.
// MAIN DESCRIPTION:
//   - Result column k belongs to the operand whose column range covers k;
//     no sorting or de-duplication is applied.
//
// Implementation:
//   - Stage 1: require at least one operand and equal row counts.
//   - Stage 2: allocate r×Σc; numeric policy is taken from the first *Dense operand.
//   - Stage 3: copy each operand into its column window.
//
// Errors:
//   - ErrBadShape (no operands), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*Σc), Space O(r*Σc).
func HStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", opHStack, ErrBadShape)
	}
	if err := ValidateSameRows(ms...); err != nil {
		return nil, fmt.Errorf("%s: %w", opHStack, err)
	}

	r, total := ms[0].Rows(), 0
	policy := DefaultValidateNaNInf
	policySet := false
	for _, m := range ms {
		total += m.Cols()
		if d, ok := m.(*Dense); ok && !policySet {
			policy, policySet = d.validateNaNInf, true
		}
	}
	out, err := NewDense(r, total, WithValidateNaNInf(policy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHStack, err)
	}

	var i, j, off int
	var v float64
	for _, m := range ms {
		c := m.Cols()
		if d, ok := m.(*Dense); ok {
			for i = 0; i < r; i++ {
				copy(out.data[i*total+off:i*total+off+c], d.data[i*c:(i+1)*c])
			}
			off += c
			continue
		}
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", opHStack, err)
				}
				out.data[i*total+off+j] = v
			}
		}
		off += c
	}

	return out, nil
}

// ColumnMin returns the smallest finite value of column j, or NaN when the
// column holds no finite value (including zero-row matrices).
func ColumnMin(m *Dense, j int) (float64, error) {
	return columnExtremum(opColumnMin, m, j, func(a, b float64) bool { return a < b })
}

// ColumnMax returns the largest finite value of column j, or NaN when the
// column holds no finite value.
func ColumnMax(m *Dense, j int) (float64, error) {
	return columnExtremum(opColumnMax, m, j, func(a, b float64) bool { return a > b })
}

// columnExtremum scans a copy of column j keeping the value preferred by better.
func columnExtremum(op string, m *Dense, j int, better func(a, b float64) bool) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return math.NaN(), fmt.Errorf("%s: %w", op, err)
	}
	col, err := m.Col(j)
	if err != nil {
		return math.NaN(), fmt.Errorf("%s: %w", op, err)
	}

	best := math.NaN()
	for _, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(best) || better(v, best) {
			best = v
		}
	}

	return best, nil
}
