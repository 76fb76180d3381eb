// SPDX-License-Identifier: MIT
// Package annotated: index resolution.
//
// Purpose:
//   - Turn an Index expression into concrete positions exactly once per axis,
//     so Get, Set, Cols, Rows, Fill and CopyTo share one ordering policy.
//
// Determinism:
//   - Column lists are sorted ascending and de-duplicated; equivalent
//     expressions in different order ([3,1] vs [1,3]) resolve identically.
//   - Row lists put header rows first (declaration order), then data rows
//     ascending. Duplicated data rows are kept.

package annotated

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algodata/tags"
)

// ResolveColumns maps a column expression onto column positions.
// MAIN DESCRIPTION:
//   - Pos → [p] (no bounds check here).
//   - Name → every column with that exact display name, ascending.
//   - Role → every column tagged with that role, ascending (may be empty).
//   - List of Pos/Name/Role → union, sorted, de-duplicated.
//   - Slice → positions over the column count.
//
// Errors:
//   - ErrUnsupportedIndexKind (nil, Field, nested List/Slice in a List, zero step).
func (m *Matrix) ResolveColumns(expr Index) ([]int, error) {
	switch e := expr.(type) {
	case Pos, Name, Role:
		return m.resolveColumnAtom(e), nil
	case List:
		seen := make(map[int]struct{}, len(e))
		out := make([]int, 0, len(e))
		for _, item := range e {
			switch item.(type) {
			case Pos, Name, Role:
			default:
				return nil, fmt.Errorf("ResolveColumns(%s): element %v: %w", e, item, ErrUnsupportedIndexKind)
			}
			for _, c := range m.resolveColumnAtom(item) {
				if _, dup := seen[c]; dup {
					continue
				}
				seen[c] = struct{}{}
				out = append(out, c)
			}
		}
		sort.Ints(out)

		return out, nil
	case Slice:
		out, err := e.Indices(m.Cols())
		if err != nil {
			return nil, fmt.Errorf("ResolveColumns: %w", err)
		}

		return out, nil
	}

	return nil, fmt.Errorf("ResolveColumns(%v): %w", expr, ErrUnsupportedIndexKind)
}

// resolveColumnAtom handles the single-selector forms.
func (m *Matrix) resolveColumnAtom(expr Index) []int {
	switch e := expr.(type) {
	case Pos:
		return []int{int(e)}
	case Name:
		out := []int{}
		for j, n := range m.header.Names {
			if n == string(e) {
				out = append(out, j)
			}
		}
		return out
	case Role:
		return m.ColumnsOf(tags.FieldRole(e))
	}

	return nil
}

// ResolveRows maps a row expression onto row selectors.
// MAIN DESCRIPTION:
//   - Field → [header row]; Pos → [data row] (no bounds check here).
//   - List of Field/Pos → header rows in declaration order, then data rows ascending.
//   - Slice → data rows over the data row count.
//
// Errors:
//   - ErrUnsupportedIndexKind (nil, Name, Role, nested List/Slice, zero step).
func (m *Matrix) ResolveRows(expr Index) ([]RowRef, error) {
	switch e := expr.(type) {
	case Field:
		return []RowRef{HeaderRow(tags.HeaderField(e))}, nil
	case Pos:
		return []RowRef{DataRow(int(e))}, nil
	case List:
		var fields []tags.HeaderField
		var positions []int
		for _, item := range e {
			switch it := item.(type) {
			case Field:
				fields = append(fields, tags.HeaderField(it))
			case Pos:
				positions = append(positions, int(it))
			default:
				return nil, fmt.Errorf("ResolveRows(%s): element %v: %w", e, item, ErrUnsupportedIndexKind)
			}
		}
		sort.Slice(fields, func(a, b int) bool { return fields[a] < fields[b] })
		sort.Ints(positions)
		out := make([]RowRef, 0, len(fields)+len(positions))
		for _, f := range fields {
			out = append(out, HeaderRow(f))
		}
		for _, p := range positions {
			out = append(out, DataRow(p))
		}

		return out, nil
	case Slice:
		idx, err := e.Indices(m.Rows())
		if err != nil {
			return nil, fmt.Errorf("ResolveRows: %w", err)
		}
		out := make([]RowRef, len(idx))
		for k, p := range idx {
			out[k] = DataRow(p)
		}

		return out, nil
	}

	return nil, fmt.Errorf("ResolveRows(%v): %w", expr, ErrUnsupportedIndexKind)
}

// ColumnsOf returns every column tagged with role, ascending. The result may
// be empty; it is never nil.
func (m *Matrix) ColumnsOf(role tags.FieldRole) []int {
	out := []int{}
	for j, r := range m.header.Roles {
		if r == role {
			out = append(out, j)
		}
	}

	return out
}

// ColumnOf returns the single column tagged with role.
// Errors: ErrAmbiguousColumn when zero or several columns carry the role.
func (m *Matrix) ColumnOf(role tags.FieldRole) (int, error) {
	cols := m.ColumnsOf(role)
	if len(cols) != 1 {
		return 0, fmt.Errorf("ColumnOf(%s): %d matches: %w", role, len(cols), ErrAmbiguousColumn)
	}

	return cols[0], nil
}
