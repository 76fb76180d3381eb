// SPDX-License-Identifier: MIT

package listview

import "reflect"

// Sequence is anything that can be walked as a list of rows.
// *View and Rows implement it.
type Sequence interface {
	Len() int
	Item(i int) ([]any, error)
}

// Rows adapts plain nested slices to Sequence.
type Rows [][]any

// Len returns the number of rows.
func (r Rows) Len() int { return len(r) }

// Item returns row i (not a copy).
func (r Rows) Item(i int) ([]any, error) { return r[i], nil }

// IndexOf returns the first position whose row equals item element-wise,
// or -1. Numbers compare by value regardless of their Go type; rows that
// fail to read are skipped.
func IndexOf(seq Sequence, item []any) int {
	for i := 0; i < seq.Len(); i++ {
		row, err := seq.Item(i)
		if err != nil {
			continue
		}
		if sameRow(row, item) {
			return i
		}
	}

	return -1
}

func sameRow(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !sameValue(a[k], b[k]) {
			return false
		}
	}

	return true
}

func sameValue(a, b any) bool {
	x, aNum := number(a)
	y, bNum := number(b)
	if aNum && bNum {
		return x == y
	}

	return reflect.DeepEqual(a, b)
}

// number widens Go's basic numeric kinds; named enum types are not numbers.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}

	return 0, false
}
