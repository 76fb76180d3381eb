// SPDX-License-Identifier: MIT

package annotated

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algodata/tags"
)

// Index is an index expression addressing rows or columns of a Matrix.
//
// The set of variants is closed: Pos, Name, Role, Field, List and Slice.
// Which variants an axis accepts is decided by ResolveColumns/ResolveRows.
type Index interface {
	fmt.Stringer
	index()
}

// Pos selects one position: a column, or a data row (0-based, independent
// of the header). Bounds are checked at access time, not at resolution.
type Pos int

// Name selects every column whose display name equals it exactly.
type Name string

// Role selects every column tagged with the role.
type Role tags.FieldRole

// Field selects one header row. Rows only.
type Field tags.HeaderField

// List unions its elements. Columns: Pos, Name and Role elements, result
// sorted and de-duplicated. Rows: Field and Pos elements, header rows first.
type List []Index

func (Pos) index()   {}
func (Name) index()  {}
func (Role) index()  {}
func (Field) index() {}
func (List) index()  {}
func (Slice) index() {}

func (p Pos) String() string   { return strconv.Itoa(int(p)) }
func (n Name) String() string  { return strconv.Quote(string(n)) }
func (r Role) String() string  { return tags.FieldRole(r).String() }
func (f Field) String() string { return tags.HeaderField(f).String() }

func (l List) String() string {
	parts := make([]string, len(l))
	for i, e := range l {
		if e == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Many builds a List.
func Many(items ...Index) List { return List(items) }

// Positions builds a List of Pos.
func Positions(ps ...int) List {
	out := make(List, len(ps))
	for i, p := range ps {
		out[i] = Pos(p)
	}

	return out
}

// Slice is a start:stop:step range with the usual half-open semantics:
// negative bounds count from the end, out-of-range bounds are clamped and a
// negative step walks backwards. The zero value selects everything.
type Slice struct {
	start, stop       int
	step              int
	hasStart, hasStop bool
	hasStep           bool
}

// All selects every position (":").
func All() Slice { return Slice{} }

// From selects start: .
func From(start int) Slice { return Slice{start: start, hasStart: true} }

// To selects :stop .
func To(stop int) Slice { return Slice{stop: stop, hasStop: true} }

// Span selects start:stop .
func Span(start, stop int) Slice {
	return Slice{start: start, stop: stop, hasStart: true, hasStop: true}
}

// By returns a copy of s with the given step. Step 0 is rejected at
// resolution time with ErrUnsupportedIndexKind.
func (s Slice) By(step int) Slice {
	s.step, s.hasStep = step, true

	return s
}

func (s Slice) String() string {
	var b strings.Builder
	if s.hasStart {
		b.WriteString(strconv.Itoa(s.start))
	}
	b.WriteString(":")
	if s.hasStop {
		b.WriteString(strconv.Itoa(s.stop))
	}
	if s.hasStep {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(s.step))
	}

	return b.String()
}

// Indices materializes the slice against a sequence of length n.
// Errors: ErrUnsupportedIndexKind when the step is zero.
func (s Slice) Indices(n int) ([]int, error) {
	step := 1
	if s.hasStep {
		if s.step == 0 {
			return nil, fmt.Errorf("slice %s: step 0: %w", s, ErrUnsupportedIndexKind)
		}
		step = s.step
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(v int) int {
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	start, stop := lower, upper
	if step < 0 {
		start, stop = upper, lower
	}
	if s.hasStart {
		start = clamp(s.start)
	}
	if s.hasStop {
		stop = clamp(s.stop)
	}

	out := make([]int, 0, rangeLen(start, stop, step))
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}

	return out, nil
}

func rangeLen(start, stop, step int) int {
	if step > 0 && stop > start {
		return (stop - start + step - 1) / step
	}
	if step < 0 && start > stop {
		return (start - stop - step - 1) / -step
	}

	return 0
}

// RowRef is one resolved row selector: a header row or a data row.
type RowRef struct {
	field  tags.HeaderField
	pos    int
	header bool
}

// DataRow refers to data row i.
func DataRow(i int) RowRef { return RowRef{pos: i} }

// HeaderRow refers to header row f.
func HeaderRow(f tags.HeaderField) RowRef { return RowRef{field: f, header: true} }

// IsHeader reports whether the selector addresses a header row.
func (r RowRef) IsHeader() bool { return r.header }

// Field returns the header field of a header selector.
func (r RowRef) Field() tags.HeaderField { return r.field }

// Pos returns the data row of a data selector.
func (r RowRef) Pos() int { return r.pos }

// String returns the header field name, or "Data <i>" for data rows.
func (r RowRef) String() string {
	if r.header {
		return r.field.String()
	}

	return "Data " + strconv.Itoa(r.pos)
}

// headerRefs lists every header row in physical order.
func headerRefs() []RowRef {
	fields := tags.HeaderFields()
	out := make([]RowRef, len(fields))
	for i, f := range fields {
		out[i] = HeaderRow(f)
	}

	return out
}
