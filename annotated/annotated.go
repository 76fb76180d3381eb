// SPDX-License-Identifier: MIT

// Package annotated - Matrix construction & training-facing state.
//
// Purpose:
//   - Compose a numeric block (matrix.Dense) with a column Header instead of
//     extending a general-purpose array type.
//   - Coerce every accepted raw source (nested rows, 1-D vector, pre-shaped
//     block, gonum matrix, raw string matrix) into one N×M block.
//   - Guarantee that every header row has exactly M entries after construction.
//
// Complexity quicksheet:
//   - New*: O(N*M); Clone: O(N*M + M); Evaluations: O(len).

package annotated

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/algodata/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opNew           = "New"
	opNewVector     = "NewVector"
	opNewFromMatrix = "NewFromMatrix"
	opNewFromGonum  = "NewFromGonum"
	opFromStrings   = "FromStrings"
)

// Matrix is an N×M numeric block with an eight-row column header.
//
// The data region is mutable in place; header cells only accept values of the
// type they already hold. Projections (Cols, Rows) and concatenation (HStack)
// always return a new Matrix. A Matrix is not safe for concurrent use; one
// logical thread of control owns it at a time.
type Matrix struct {
	data         *matrix.Dense
	header       Header
	evaluations  []float64
	resultValues []string
}

// New builds a Matrix from rectangular nested rows.
// MAIN DESCRIPTION:
//   - The first row fixes the column count M; header rows are fitted to M.
//
// Errors:
//   - ErrShape (empty or ragged rows), matrix.ErrNaNInf under the numeric policy,
//     ErrInvalidTag (role/type outside its closed set).
//
// Complexity:
//   - Time O(N*M), Space O(N*M).
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	d, err := matrix.NewDenseFromRows(rows, matrix.WithValidateNaNInf(o.validateNaNInf))
	if err != nil {
		return nil, wrapShape(opNew, err)
	}

	return assemble(opNew, d, o)
}

// NewVector builds an N×1 Matrix from a 1-D slice.
func NewVector(v []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	d, err := matrix.NewDenseFromVector(v, matrix.WithValidateNaNInf(o.validateNaNInf))
	if err != nil {
		return nil, wrapShape(opNewVector, err)
	}

	return assemble(opNewVector, d, o)
}

// NewFromMatrix builds a Matrix from a pre-shaped block. The block is copied;
// zero-area blocks are accepted.
func NewFromMatrix(src matrix.Matrix, opts ...Option) (*Matrix, error) {
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewFromMatrix, ErrShape, err)
	}
	o := gatherOptions(opts...)
	d, err := matrix.NewDense(src.Rows(), src.Cols(), matrix.WithValidateNaNInf(o.validateNaNInf))
	if err != nil {
		return nil, wrapShape(opNewFromMatrix, err)
	}
	var i, j int
	var v float64
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opNewFromMatrix, err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opNewFromMatrix, err)
			}
		}
	}

	return assemble(opNewFromMatrix, d, o)
}

// NewFromGonum builds a Matrix from any gonum matrix.
func NewFromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	d, err := matrix.FromGonum(src, matrix.WithValidateNaNInf(o.validateNaNInf))
	if err != nil {
		return nil, wrapShape(opNewFromGonum, err)
	}

	return assemble(opNewFromGonum, d, o)
}

// FromStrings builds a Matrix from a raw string matrix as produced by file
// loaders: row 0 holds the column names, the remaining rows hold numeric
// cells. Options apply after the names row, so WithNames overrides it.
//
// Errors:
//   - ErrShape when the names row is empty, a row is ragged or a cell does
//     not parse as a number (the error names the cell).
func FromStrings(raw [][]string, opts ...Option) (*Matrix, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, fmt.Errorf("%s: no names row: %w", opFromStrings, ErrShape)
	}
	names := make([]string, len(raw[0]))
	for j, n := range raw[0] {
		names[j] = strings.TrimSpace(n)
	}
	o := gatherOptions(append([]Option{WithNames(names...)}, opts...)...)

	cols := len(names)
	d, err := matrix.NewDense(len(raw)-1, cols, matrix.WithValidateNaNInf(o.validateNaNInf))
	if err != nil {
		return nil, wrapShape(opFromStrings, err)
	}
	for i, row := range raw[1:] {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", opFromStrings, i, len(row), cols, ErrShape)
		}
		for j, cell := range row {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("%s: cell (%d,%d) %q is not numeric: %w", opFromStrings, i, j, cell, ErrShape)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opFromStrings, err)
			}
		}
	}

	return assemble(opFromStrings, d, o)
}

// assemble fits the optional header to the block and wraps both.
func assemble(op string, d *matrix.Dense, o options) (*Matrix, error) {
	h, err := normalizeHeader(o.header, d.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Matrix{data: d, header: h}, nil
}

// wrapShape maps matrix shape failures onto ErrShape, keeping the cause.
func wrapShape(op string, err error) error {
	if errors.Is(err, matrix.ErrBadShape) || errors.Is(err, matrix.ErrInvalidDimensions) || errors.Is(err, matrix.ErrNilMatrix) {
		return fmt.Errorf("%s: %w: %w", op, ErrShape, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// Rows returns the number of data rows.
func (m *Matrix) Rows() int { return m.data.Rows() }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.data.Cols() }

// Shape returns (data rows, columns).
func (m *Matrix) Shape() (rows, cols int) { return m.data.Shape() }

// Header returns a deep copy of the header.
func (m *Matrix) Header() Header { return m.header.Clone() }

// Data returns a deep copy of the numeric block.
func (m *Matrix) Data() *matrix.Dense { return m.data.CloneDense() }

// At reads data cell (row, col).
func (m *Matrix) At(row, col int) (float64, error) { return m.data.At(row, col) }

// SetAt writes data cell (row, col).
func (m *Matrix) SetAt(row, col int, v float64) error { return m.data.Set(row, col, v) }

// Clone returns an independent deep copy, including evaluations and result values.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		data:         m.data.CloneDense(),
		header:       m.header.Clone(),
		evaluations:  append([]float64(nil), m.evaluations...),
		resultValues: append([]string(nil), m.resultValues...),
	}
}

// String renders the header rows followed by the data rows.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, ref := range headerRefs() {
		b.WriteString(ref.String())
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.header.Cell(ref.Field(), j)
			b.WriteString("\t")
			b.WriteString(formatValue(v))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.data.String())

	return b.String()
}

// AppendEvaluation records one per-iteration score.
func (m *Matrix) AppendEvaluation(v float64) { m.evaluations = append(m.evaluations, v) }

// Evaluations returns a copy of the recorded scores in append order.
func (m *Matrix) Evaluations() []float64 { return append([]float64(nil), m.evaluations...) }

// SetResultValues records the ordered result labels. It may be called once.
func (m *Matrix) SetResultValues(labels []string) error {
	if m.resultValues != nil {
		return fmt.Errorf("SetResultValues: %w", ErrResultValuesSet)
	}
	m.resultValues = append(make([]string, 0, len(labels)), labels...)

	return nil
}

// ResultValues returns a copy of the result labels (nil until set).
func (m *Matrix) ResultValues() []string {
	if m.resultValues == nil {
		return nil
	}

	return append([]string(nil), m.resultValues...)
}

// ResultLabel maps an encoded result back to its label. Codes are rounded to
// the nearest integer position; NaN and codes rounding outside the labels
// fail with ErrUnknownLabel.
func (m *Matrix) ResultLabel(code float64) (string, error) {
	// range-check the float before converting: int(NaN) and int(±Inf) are undefined
	if math.IsNaN(code) || code < -0.5 || code >= float64(len(m.resultValues))-0.5 {
		return "", fmt.Errorf("ResultLabel(%g): %w", code, ErrUnknownLabel)
	}

	return m.resultValues[int(math.Floor(code+0.5))], nil
}
