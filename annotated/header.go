// SPDX-License-Identifier: MIT

package annotated

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/algodata/tags"
)

// Header defaults.
const (
	DefaultName      = "Name"
	DefaultRole      = tags.Parameter
	DefaultType      = tags.Ratio
	DefaultTargetMin = 0.0
	DefaultTargetMax = 1.0
)

// Unset is the sentinel stored in SourceMin/SourceMax before a source range
// has been observed. Test with IsUnset; NaN never compares equal.
var Unset = math.NaN()

// IsUnset reports whether v is the Unset sentinel.
func IsUnset(v float64) bool { return math.IsNaN(v) }

// Header holds the eight metadata rows of an annotated matrix, one slice per
// tags.HeaderField. Inside a Matrix every slice has exactly Cols() entries.
// A nil slice passed to a constructor means "omitted" and is synthesized
// from defaults.
type Header struct {
	Names     []string
	Roles     []tags.FieldRole
	Types     []tags.FieldType
	Methods   []tags.NormalizeMethod
	TargetMin []float64
	TargetMax []float64
	SourceMin []float64
	SourceMax []float64
}

// Len returns the column count described by the header (the Names length).
func (h Header) Len() int { return len(h.Names) }

// fit pads or truncates s to n entries, filling new slots with def.
func fit[T any](s []T, n int, def T) []T {
	out := make([]T, n)
	k := copy(out, s)
	for i := k; i < n; i++ {
		out[i] = def
	}

	return out
}

// normalizeHeader returns a header whose rows all have exactly n entries.
// Each row is padded or truncated independently; methods are corrected
// against the final Types row, so incompatible pairs silently fall back to
// the type's default method.
func normalizeHeader(h Header, n int) (Header, error) {
	out := Header{
		Names:     fit(h.Names, n, DefaultName),
		Roles:     fit(h.Roles, n, DefaultRole),
		Types:     fit(h.Types, n, DefaultType),
		TargetMin: fit(h.TargetMin, n, DefaultTargetMin),
		TargetMax: fit(h.TargetMax, n, DefaultTargetMax),
		SourceMin: fit(h.SourceMin, n, Unset),
		SourceMax: fit(h.SourceMax, n, Unset),
	}
	for j := 0; j < n; j++ {
		if !out.Roles[j].IsValid() {
			return Header{}, fmt.Errorf("role %d at column %d: %w", out.Roles[j], j, ErrInvalidTag)
		}
		if !out.Types[j].IsValid() {
			return Header{}, fmt.Errorf("type %d at column %d: %w", out.Types[j], j, ErrInvalidTag)
		}
	}
	out.Methods = make([]tags.NormalizeMethod, n)
	for j := 0; j < n; j++ {
		if j < len(h.Methods) {
			out.Methods[j] = tags.CorrectMethod(out.Types[j], h.Methods[j])
		} else {
			out.Methods[j] = tags.DefaultMethod(out.Types[j])
		}
	}

	return out, nil
}

// Clone returns a deep copy of the header.
func (h Header) Clone() Header {
	return Header{
		Names:     append([]string(nil), h.Names...),
		Roles:     append([]tags.FieldRole(nil), h.Roles...),
		Types:     append([]tags.FieldType(nil), h.Types...),
		Methods:   append([]tags.NormalizeMethod(nil), h.Methods...),
		TargetMin: append([]float64(nil), h.TargetMin...),
		TargetMax: append([]float64(nil), h.TargetMax...),
		SourceMin: append([]float64(nil), h.SourceMin...),
		SourceMax: append([]float64(nil), h.SourceMax...),
	}
}

// Gather returns a header holding the given columns in the given order.
// Callers guarantee every position is in range.
func (h Header) Gather(cols []int) Header {
	out := Header{
		Names:     make([]string, len(cols)),
		Roles:     make([]tags.FieldRole, len(cols)),
		Types:     make([]tags.FieldType, len(cols)),
		Methods:   make([]tags.NormalizeMethod, len(cols)),
		TargetMin: make([]float64, len(cols)),
		TargetMax: make([]float64, len(cols)),
		SourceMin: make([]float64, len(cols)),
		SourceMax: make([]float64, len(cols)),
	}
	for k, c := range cols {
		out.Names[k] = h.Names[c]
		out.Roles[k] = h.Roles[c]
		out.Types[k] = h.Types[c]
		out.Methods[k] = h.Methods[c]
		out.TargetMin[k] = h.TargetMin[c]
		out.TargetMax[k] = h.TargetMax[c]
		out.SourceMin[k] = h.SourceMin[c]
		out.SourceMax[k] = h.SourceMax[c]
	}

	return out
}

// ConcatHeaders appends headers column-wise in argument order.
func ConcatHeaders(hs ...Header) Header {
	var out Header
	for _, h := range hs {
		out.Names = append(out.Names, h.Names...)
		out.Roles = append(out.Roles, h.Roles...)
		out.Types = append(out.Types, h.Types...)
		out.Methods = append(out.Methods, h.Methods...)
		out.TargetMin = append(out.TargetMin, h.TargetMin...)
		out.TargetMax = append(out.TargetMax, h.TargetMax...)
		out.SourceMin = append(out.SourceMin, h.SourceMin...)
		out.SourceMax = append(out.SourceMax, h.SourceMax...)
	}

	return out
}

// Cell returns the header value of field f at column col. The dynamic type is
// string (Names), tags.FieldRole, tags.FieldType, tags.NormalizeMethod or
// float64 (the four range rows).
func (h Header) Cell(f tags.HeaderField, col int) (any, error) {
	if col < 0 || col >= h.Len() {
		return nil, fmt.Errorf("Header.Cell(%s,%d): %w", f, col, ErrIndexOutOfRange)
	}
	switch f {
	case tags.Names:
		return h.Names[col], nil
	case tags.Role:
		return h.Roles[col], nil
	case tags.Type:
		return h.Types[col], nil
	case tags.Method:
		return h.Methods[col], nil
	case tags.TargetMin:
		return h.TargetMin[col], nil
	case tags.TargetMax:
		return h.TargetMax[col], nil
	case tags.SourceMin:
		return h.SourceMin[col], nil
	case tags.SourceMax:
		return h.SourceMax[col], nil
	}

	return nil, fmt.Errorf("Header.Cell(%s,%d): %w", f, col, ErrIndexOutOfRange)
}

// SetCell assigns v to field f at column col.
// MAIN DESCRIPTION:
//   - v must have the runtime type of the existing cell; any Go number is
//     accepted for the numeric range rows.
//
// Behavior highlights:
//   - Setting Type re-corrects the column's normalize method when the old
//     method is incompatible with the new type.
//   - Setting a normalize method incompatible with the column type fails.
//
// Errors:
//   - ErrIndexOutOfRange, ErrTypeMismatch, ErrInvalidTag.
func (h Header) SetCell(f tags.HeaderField, col int, v any) error {
	cur, err := h.Cell(f, col)
	if err != nil {
		return err
	}
	if !compatibleTypes(v, cur) {
		return fmt.Errorf("Header.SetCell(%s,%d): %T into %T: %w", f, col, v, cur, ErrTypeMismatch)
	}

	switch f {
	case tags.Names:
		h.Names[col] = v.(string)
	case tags.Role:
		r := v.(tags.FieldRole)
		if !r.IsValid() {
			return fmt.Errorf("Header.SetCell(%s,%d): %w", f, col, ErrInvalidTag)
		}
		h.Roles[col] = r
	case tags.Type:
		t := v.(tags.FieldType)
		if !t.IsValid() {
			return fmt.Errorf("Header.SetCell(%s,%d): %w", f, col, ErrInvalidTag)
		}
		h.Types[col] = t
		h.Methods[col] = tags.CorrectMethod(t, h.Methods[col])
	case tags.Method:
		m := v.(tags.NormalizeMethod)
		if !tags.Compatible(h.Types[col], m) {
			return fmt.Errorf("Header.SetCell(%s,%d): %s with %s: %w", f, col, m, h.Types[col], ErrInvalidTag)
		}
		h.Methods[col] = m
	default:
		x, _ := toFloat(v)
		h.numericRow(f)[col] = x
	}

	return nil
}

// numericRow returns the backing slice of a numeric header row.
func (h Header) numericRow(f tags.HeaderField) []float64 {
	switch f {
	case tags.TargetMin:
		return h.TargetMin
	case tags.TargetMax:
		return h.TargetMax
	case tags.SourceMin:
		return h.SourceMin
	default:
		return h.SourceMax
	}
}

// Range reports the normalize range described by the target bounds of col.
func (h Header) Range(col int) (tags.NormalizeRange, bool) {
	if col < 0 || col >= h.Len() {
		return 0, false
	}

	return tags.RangeOf(h.TargetMin[col], h.TargetMax[col])
}

// toFloat converts any Go number to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}

	return 0, false
}

// compatibleTypes: numbers are mutually compatible; anything else needs an
// exact dynamic type match.
func compatibleTypes(v, cur any) bool {
	_, vNum := toFloat(v)
	_, cNum := toFloat(cur)
	if vNum && cNum {
		return true
	}
	if v == nil || cur == nil {
		return false
	}

	return reflect.TypeOf(v) == reflect.TypeOf(cur)
}
