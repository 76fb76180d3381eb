// Package matrix_test contains unit tests for the matrix validators.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/algodata/matrix"
	"github.com/stretchr/testify/require"
)

func block(t *testing.T, r, c int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// TestValidateNotNil covers untyped and typed nil inputs.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(block(t, 0, 0)))
}

// TestValidateSameRows covers nil operands and row-count mismatches.
func TestValidateSameRows(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameRows())
	require.NoError(t, matrix.ValidateSameRows(block(t, 2, 1), block(t, 2, 5), block(t, 2, 0)))
	require.ErrorIs(t, matrix.ValidateSameRows(block(t, 2, 1), nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameRows(block(t, 2, 1), block(t, 3, 1)), matrix.ErrDimensionMismatch)
}
