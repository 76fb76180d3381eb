// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them uniformly with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameRows ensures every operand has the same row count as the first.
// Used by column-wise concatenation.
func ValidateSameRows(ms ...Matrix) error {
	for i, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateSameRows[%d]", i), err)
		}
		if m.Rows() != ms[0].Rows() {
			return validatorErrorf(fmt.Sprintf("ValidateSameRows[%d]", i), ErrDimensionMismatch)
		}
	}

	return nil
}
