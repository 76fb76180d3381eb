// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense and gonum's mat package so decompositions and statistics
//     (PCA, SVD, covariance) can run on the same numbers without hand-written kernels.
//
// Notes:
//   - gonum refuses zero-length dense matrices, so zero-area inputs are
//     rejected with ErrBadShape rather than panicking inside mat.NewDense.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGonum, r, c, ErrBadShape)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data) // identical row-major layout
	} else {
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", opToGonum, err)
				}
				buf[i*c+j] = v
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense, applying the numeric policy.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", opFromGonum, err)
			}
		}
	}

	return out, nil
}
