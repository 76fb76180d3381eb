// SPDX-License-Identifier: MIT

package annotated

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/algodata/tags"
)

// Selection is the result of Get: a scalar (Dim 0), a 1-D sequence (Dim 1)
// or a 2-D block (Dim 2). Values are stored row-major in resolved order.
type Selection struct {
	dim        int
	rows, cols int
	values     []any
	textual    bool
}

// Dim returns 0 for a scalar, 1 for a sequence and 2 for a block.
func (s Selection) Dim() int { return s.dim }

// Shape returns the resolved (rows, cols) counts.
func (s Selection) Shape() (rows, cols int) { return s.rows, s.cols }

// Len returns the number of selected cells.
func (s Selection) Len() int { return len(s.values) }

// Textual reports whether the values were coerced to strings because a
// multi-row selection mixed non-numeric header cells in.
func (s Selection) Textual() bool { return s.textual }

// Scalar returns the first selected value (the only one when Dim is 0).
func (s Selection) Scalar() any {
	if len(s.values) == 0 {
		return nil
	}

	return s.values[0]
}

// Values returns a copy of the selected values, row-major.
func (s Selection) Values() []any { return append([]any(nil), s.values...) }

// At returns the value at (i, j) of the selection.
func (s Selection) At(i, j int) (any, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return nil, fmt.Errorf("Selection.At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}

	return s.values[i*s.cols+j], nil
}

// Floats returns the values as float64, row-major.
// Errors: ErrTypeMismatch when any value is not a number.
func (s Selection) Floats() ([]float64, error) {
	out := make([]float64, len(s.values))
	for k, v := range s.values {
		x, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("Selection.Floats: value %d is %T: %w", k, v, ErrTypeMismatch)
		}
		out[k] = x
	}

	return out, nil
}

// Strings returns the values formatted as strings, row-major.
func (s Selection) Strings() []string {
	out := make([]string, len(s.values))
	for k, v := range s.values {
		out[k] = formatValue(v)
	}

	return out
}

// Get reads the cells addressed by a row and a column expression.
// MAIN DESCRIPTION:
//   - One row and one column: a scalar read from the header or the data.
//   - One row, many columns: a sequence in column order (a single row is
//     always homogeneous).
//   - Many rows: a sequence (one column) or a block; when any selected cell
//     is non-numeric every value is coerced to its string form.
//
// Errors:
//   - ErrUnsupportedIndexKind, ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(R*C) after resolution; no side effects.
func (m *Matrix) Get(rows, cols Index) (Selection, error) {
	rs, err := m.ResolveRows(rows)
	if err != nil {
		return Selection{}, fmt.Errorf("Get: %w", err)
	}
	cs, err := m.ResolveColumns(cols)
	if err != nil {
		return Selection{}, fmt.Errorf("Get: %w", err)
	}

	sel := Selection{rows: len(rs), cols: len(cs), values: make([]any, 0, len(rs)*len(cs))}
	switch {
	case len(rs) == 1 && len(cs) == 1:
		sel.dim = 0
	case len(rs) == 1 || len(cs) == 1:
		sel.dim = 1
	default:
		sel.dim = 2
	}

	mixed := false
	for _, r := range rs {
		for _, c := range cs {
			v, err := m.cell(r, c)
			if err != nil {
				return Selection{}, fmt.Errorf("Get(%v, %v): %w", rows, cols, err)
			}
			if _, num := toFloat(v); !num {
				mixed = true
			}
			sel.values = append(sel.values, v)
		}
	}
	if mixed && len(rs) > 1 {
		for k, v := range sel.values {
			sel.values[k] = formatValue(v)
		}
		sel.textual = true
	}

	return sel, nil
}

// Set writes a single cell.
// MAIN DESCRIPTION:
//   - cols must resolve to exactly one column and rows to exactly one row.
//   - Header cells accept only values of the existing cell's type (any
//     number for the numeric rows); data cells accept any Go number.
//
// Errors:
//   - ErrAmbiguousColumn, ErrAmbiguousRow, ErrTypeMismatch, ErrInvalidTag,
//     ErrIndexOutOfRange, ErrUnsupportedIndexKind, matrix.ErrNaNInf.
//
// On error no cell is modified.
func (m *Matrix) Set(rows, cols Index, v any) error {
	cs, err := m.ResolveColumns(cols)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if len(cs) != 1 {
		return fmt.Errorf("Set(%v, %v): %d columns: %w", rows, cols, len(cs), ErrAmbiguousColumn)
	}
	rs, err := m.ResolveRows(rows)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if len(rs) != 1 {
		return fmt.Errorf("Set(%v, %v): %d rows: %w", rows, cols, len(rs), ErrAmbiguousRow)
	}
	if err = m.setCell(rs[0], cs[0], v); err != nil {
		return fmt.Errorf("Set(%v, %v): %w", rows, cols, err)
	}

	return nil
}

// cell reads one resolved cell.
func (m *Matrix) cell(r RowRef, c int) (any, error) {
	if r.IsHeader() {
		return m.header.Cell(r.Field(), c)
	}

	return m.data.At(r.Pos(), c)
}

// setCell writes one resolved cell.
func (m *Matrix) setCell(r RowRef, c int, v any) error {
	if r.IsHeader() {
		return m.header.SetCell(r.Field(), c, v)
	}
	x, ok := toFloat(v)
	if !ok {
		return fmt.Errorf("data cell takes a number, got %T: %w", v, ErrTypeMismatch)
	}

	return m.data.Set(r.Pos(), c, x)
}

// formatValue renders a cell value the way tables and CSV exports show it.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return fmt.Sprint(v)
}

// FormatCell returns the display form of the cell at (r, col), as table
// views and exporters show it.
func (m *Matrix) FormatCell(r RowRef, col int) (string, error) {
	v, err := m.cell(r, col)
	if err != nil {
		return "", err
	}

	return formatValue(v), nil
}

// HeaderCell reads header field f at column col.
func (m *Matrix) HeaderCell(f tags.HeaderField, col int) (any, error) {
	return m.header.Cell(f, col)
}

// SetHeaderCell writes header field f at column col under the type rules of Set.
func (m *Matrix) SetHeaderCell(f tags.HeaderField, col int, v any) error {
	return m.header.SetCell(f, col, v)
}
