// SPDX-License-Identifier: MIT

// Package listview presents an annotated.Matrix as one flat sequence of
// rows, the way table models and other list-consuming code expect it.
//
//	index                        row
//	0 .. HeaderRows-1            header rows, in tags.HeaderField order
//	HeaderRows .. Len()-1        data rows 0, 1, ...
//
// Every row is itself a sequence of Cols()+1 cells: cell 0 is a synthetic,
// read-only name ("Role", "Data 3", ...), cells 1..Cols() map to column j-1.
//
// Views hold no copies. Writes through a RowView reach the matrix at once,
// under the same type rules as annotated.Matrix.Set.
package listview

import (
	"fmt"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/tags"
)

// HeaderRows is the number of leading header rows in every view.
const HeaderRows = tags.HeaderFieldCount

// View is a list-style window over a Matrix.
type View struct {
	m *annotated.Matrix
}

// New wraps m. Errors: ErrNilMatrix.
func New(m *annotated.Matrix) (*View, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &View{m: m}, nil
}

// Matrix returns the wrapped matrix (not a copy).
func (v *View) Matrix() *annotated.Matrix { return v.m }

// Len returns HeaderRows + data rows.
func (v *View) Len() int { return HeaderRows + v.m.Rows() }

// Width returns the length of every row: Cols() + 1.
func (v *View) Width() int { return v.m.Cols() + 1 }

// Row returns the row at adapter index i.
// Errors: annotated.ErrIndexOutOfRange.
func (v *View) Row(i int) (RowView, error) {
	if i < 0 || i >= v.Len() {
		return RowView{}, fmt.Errorf("View.Row(%d): %w", i, annotated.ErrIndexOutOfRange)
	}
	if i < HeaderRows {
		return RowView{m: v.m, ref: annotated.HeaderRow(tags.HeaderField(i))}, nil
	}

	return RowView{m: v.m, ref: annotated.DataRow(i - HeaderRows)}, nil
}

// Item returns the cells of row i, name slot included.
func (v *View) Item(i int) ([]any, error) {
	row, err := v.Row(i)
	if err != nil {
		return nil, err
	}
	out := make([]any, row.Len())
	for j := range out {
		if out[j], err = row.At(j); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Cols projects the matrix on adapter column positions: Pos(j) addresses
// matrix column j-1, Pos(0) (the name slot) selects nothing. Names and roles
// pass through unchanged.
func (v *View) Cols(expr annotated.Index) (*View, error) {
	shifted, err := v.shiftCols(expr)
	if err != nil {
		return nil, err
	}
	m, err := v.m.Cols(shifted)
	if err != nil {
		return nil, err
	}

	return &View{m: m}, nil
}

// Rows projects the matrix on adapter row positions. Header-row positions
// are dropped; data positions are rebased onto the data region.
func (v *View) Rows(expr annotated.Index) (*View, error) {
	rebased, err := v.rebaseRows(expr)
	if err != nil {
		return nil, err
	}
	m, err := v.m.Rows(rebased)
	if err != nil {
		return nil, err
	}

	return &View{m: m}, nil
}

// HStack concatenates the views' matrices column-wise.
func HStack(views ...*View) (*View, error) {
	ms := make([]*annotated.Matrix, len(views))
	for k, v := range views {
		if v == nil {
			return nil, fmt.Errorf("HStack: view %d: %w", k, ErrNilMatrix)
		}
		ms[k] = v.m
	}
	m, err := annotated.HStack(ms...)
	if err != nil {
		return nil, err
	}

	return &View{m: m}, nil
}

func (v *View) shiftCols(expr annotated.Index) (annotated.Index, error) {
	switch e := expr.(type) {
	case annotated.Pos:
		if e == 0 {
			return annotated.List{}, nil
		}
		return e - 1, nil
	case annotated.List:
		out := make(annotated.List, 0, len(e))
		for _, item := range e {
			if p, ok := item.(annotated.Pos); ok {
				if p == 0 {
					continue
				}
				item = p - 1
			}
			out = append(out, item)
		}
		return out, nil
	case annotated.Slice:
		idx, err := e.Indices(v.Width())
		if err != nil {
			return nil, err
		}
		out := make([]int, 0, len(idx))
		for _, j := range idx {
			if j > 0 {
				out = append(out, j-1)
			}
		}
		return annotated.Positions(out...), nil
	}

	return expr, nil
}

func (v *View) rebaseRows(expr annotated.Index) (annotated.Index, error) {
	switch e := expr.(type) {
	case annotated.Pos:
		if int(e) < HeaderRows {
			return annotated.List{}, nil
		}
		return annotated.Pos(int(e) - HeaderRows), nil
	case annotated.List:
		out := make(annotated.List, 0, len(e))
		for _, item := range e {
			if p, ok := item.(annotated.Pos); ok {
				if int(p) < HeaderRows {
					continue
				}
				item = annotated.Pos(int(p) - HeaderRows)
			}
			out = append(out, item)
		}
		return out, nil
	case annotated.Slice:
		idx, err := e.Indices(v.Len())
		if err != nil {
			return nil, err
		}
		out := make([]int, 0, len(idx))
		for _, i := range idx {
			if i >= HeaderRows {
				out = append(out, i-HeaderRows)
			}
		}
		return annotated.Positions(out...), nil
	}

	return expr, nil
}

// RowView is one adapter row. The zero value is not usable.
type RowView struct {
	m   *annotated.Matrix
	ref annotated.RowRef
}

// Len returns Cols() + 1.
func (r RowView) Len() int { return r.m.Cols() + 1 }

// Name returns the synthetic row name: the header field name or "Data <i>".
func (r RowView) Name() string { return r.ref.String() }

// Ref returns the matrix row this view addresses.
func (r RowView) Ref() annotated.RowRef { return r.ref }

// At returns cell j: the row name for j == 0, else column j-1.
func (r RowView) At(j int) (any, error) {
	if j < 0 || j >= r.Len() {
		return nil, fmt.Errorf("RowView.At(%d): %w", j, annotated.ErrIndexOutOfRange)
	}
	if j == 0 {
		return r.Name(), nil
	}
	sel, err := r.m.Get(r.rowIndex(), annotated.Pos(j-1))
	if err != nil {
		return nil, err
	}

	return sel.Scalar(), nil
}

// Text returns cell j in display form.
func (r RowView) Text(j int) (string, error) {
	if j < 0 || j >= r.Len() {
		return "", fmt.Errorf("RowView.Text(%d): %w", j, annotated.ErrIndexOutOfRange)
	}
	if j == 0 {
		return r.Name(), nil
	}

	return r.m.FormatCell(r.ref, j-1)
}

// Set writes cell j (j >= 1) through annotated.Matrix.Set.
// Errors: ErrReadOnlyField (j == 0), annotated.ErrIndexOutOfRange and the
// type errors of Matrix.Set.
func (r RowView) Set(j int, v any) error {
	if j == 0 {
		return fmt.Errorf("RowView.Set(%s): %w", r.Name(), ErrReadOnlyField)
	}
	if j < 0 || j >= r.Len() {
		return fmt.Errorf("RowView.Set(%d): %w", j, annotated.ErrIndexOutOfRange)
	}

	return r.m.Set(r.rowIndex(), annotated.Pos(j-1), v)
}

func (r RowView) rowIndex() annotated.Index {
	if r.ref.IsHeader() {
		return annotated.Field(r.ref.Field())
	}

	return annotated.Pos(r.ref.Pos())
}
