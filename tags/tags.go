// SPDX-License-Identifier: MIT

// Package tags defines the closed sets of symbolic constants used as column
// metadata: which header row is addressed (HeaderField), what a column is used
// for (FieldRole), its measurement level (FieldType) and how it is normalized
// (NormalizeMethod, NormalizeRange).
//
// Ordinals follow declaration order and are significant: HeaderField order
// fixes the physical order of header rows.
//
// Every tag implements fmt.Stringer and encoding.TextMarshaler /
// TextUnmarshaler, so schema files and CSV exports read and write bare member
// names ("Parameter", "Ratio", ...). Parsing is case-insensitive.
package tags

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTag is returned when a name does not denote a member of the enum.
var ErrUnknownTag = errors.New("tags: unknown tag")

// HeaderField identifies one header row of an annotated matrix.
type HeaderField int

// Header rows, in physical order.
const (
	Names HeaderField = iota
	Role
	Type
	Method
	TargetMin
	TargetMax
	SourceMin
	SourceMax
)

// HeaderFieldCount is the number of header rows.
const HeaderFieldCount = int(SourceMax) + 1

// FieldRole tags what a column is used for in an ML pipeline.
type FieldRole int

const (
	Parameter FieldRole = iota
	ParameterReduction
	Result
	ResultEncoding
	ExpectedResultReduction
	StepResult
	ResultPresentation
	Other
)

// FieldType is the measurement level of a column.
type FieldType int

const (
	Nominal FieldType = iota
	Ordinal
	Interval
	Ratio
)

// NormalizeMethod selects how a column is normalized.
type NormalizeMethod int

const (
	OneOfN NormalizeMethod = iota
	QualitativeToRange
	EquilateralEncoding
	NormalizeToRange
	ReciprocalNormalization
)

// NormalizeRange is the target interval of a normalization.
type NormalizeRange int

const (
	ZeroToOne NormalizeRange = iota
	MinusOneToOne
)

var (
	headerFieldNames     = []string{"Names", "Role", "Type", "NormalizeMethod", "TargetMin", "TargetMax", "SourceMin", "SourceMax"}
	fieldRoleNames       = []string{"Parameter", "ParameterReduction", "Result", "ResultEncoding", "ExpectedResultReduction", "StepResult", "ResultPresentation", "Other"}
	fieldTypeNames       = []string{"Nominal", "Ordinal", "Interval", "Ratio"}
	normalizeMethodNames = []string{"OneOfN", "QualitativeToRange", "EquilateralEncoding", "NormalizeToRange", "ReciprocalNormalization"}
	normalizeRangeNames  = []string{"ZeroToOne", "MinusOneToOne"}
)

// nameOf renders member i of an enum, or "<kind>(i)" when out of range.
func nameOf(names []string, kind string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}

	return names[i]
}

// parseName finds s (case-insensitive, surrounding space ignored) in names.
func parseName(names []string, kind, s string) (int, error) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownTag)
}

// HeaderFields returns every header field in physical order.
func HeaderFields() []HeaderField {
	out := make([]HeaderField, HeaderFieldCount)
	for i := range out {
		out[i] = HeaderField(i)
	}

	return out
}

func (f HeaderField) String() string { return nameOf(headerFieldNames, "HeaderField", int(f)) }
func (f HeaderField) IsValid() bool { return f >= Names && f <= SourceMax }
func (r FieldRole) String() string { return nameOf(fieldRoleNames, "FieldRole", int(r)) }
func (r FieldRole) IsValid() bool { return r >= Parameter && r <= Other }
func (t FieldType) String() string { return nameOf(fieldTypeNames, "FieldType", int(t)) }
func (t FieldType) IsValid() bool { return t >= Nominal && t <= Ratio }
func (m NormalizeMethod) String() string {
	return nameOf(normalizeMethodNames, "NormalizeMethod", int(m))
}
func (m NormalizeMethod) IsValid() bool { return m >= OneOfN && m <= ReciprocalNormalization }
func (n NormalizeRange) String() string { return nameOf(normalizeRangeNames, "NormalizeRange", int(n)) }
func (n NormalizeRange) IsValid() bool { return n == ZeroToOne || n == MinusOneToOne }

// IsNumeric reports whether the header row holds float64 cells.
func (f HeaderField) IsNumeric() bool { return f >= TargetMin && f <= SourceMax }

// ParseHeaderField parses a header field name.
func ParseHeaderField(s string) (HeaderField, error) {
	i, err := parseName(headerFieldNames, "HeaderField", s)
	return HeaderField(i), err
}

// ParseFieldRole parses a role name.
func ParseFieldRole(s string) (FieldRole, error) {
	i, err := parseName(fieldRoleNames, "FieldRole", s)
	return FieldRole(i), err
}

// ParseFieldType parses a field type name.
func ParseFieldType(s string) (FieldType, error) {
	i, err := parseName(fieldTypeNames, "FieldType", s)
	return FieldType(i), err
}

// ParseNormalizeMethod parses a normalize method name.
func ParseNormalizeMethod(s string) (NormalizeMethod, error) {
	i, err := parseName(normalizeMethodNames, "NormalizeMethod", s)
	return NormalizeMethod(i), err
}

// ParseNormalizeRange parses a normalize range name.
func ParseNormalizeRange(s string) (NormalizeRange, error) {
	i, err := parseName(normalizeRangeNames, "NormalizeRange", s)
	return NormalizeRange(i), err
}
