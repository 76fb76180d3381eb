// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algodata/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts zero-area shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(3, 0) // legal empty projection
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 0, c)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNumericPolicy checks the NaN/Inf guard and its opt-out.
func TestNumericPolicy(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
	require.False(t, loose.ValidatesNaNInf())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestNewDenseFromRows(t *testing.T) {
	tests := []struct {
		name    string
		in      [][]float64
		wantErr error
	}{
		{"rectangular", [][]float64{{1, 2, 3}, {4, 5, 6}}, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"empty", nil, matrix.ErrBadShape},
		{"zero width", [][]float64{{}}, matrix.ErrBadShape},
		{"nan", [][]float64{{math.NaN()}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFromRows(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.in, m.RawRows())
		})
	}
}

func TestNewDenseFromVector(t *testing.T) {
	m, err := matrix.NewDenseFromVector([]float64{1, 2, 3})
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)

	col, err := m.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, col)

	_, err = matrix.NewDenseFromVector(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestInduced covers ordered, duplicated and out-of-range index sets.
func TestInduced(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	sub, err := m.Induced([]int{2, 0}, []int{1, 1})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{8, 8}, {2, 2}}, sub.RawRows())

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestApply(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, m.RawRows())

	err = m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
