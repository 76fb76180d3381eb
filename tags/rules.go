// SPDX-License-Identifier: MIT

package tags

// IsQualitative reports whether values of this type are labels (nominal, ordinal).
func (t FieldType) IsQualitative() bool { return t == Nominal || t == Ordinal }

// IsQuantitative reports whether values of this type are measurements (interval, ratio).
func (t FieldType) IsQuantitative() bool { return t == Interval || t == Ratio }

// IsQualitative reports whether the method encodes labels.
func (m NormalizeMethod) IsQualitative() bool {
	return m == OneOfN || m == QualitativeToRange || m == EquilateralEncoding
}

// DefaultMethod returns the method a column of type t gets when none (or an
// incompatible one) is supplied.
func DefaultMethod(t FieldType) NormalizeMethod {
	if t.IsQualitative() {
		return OneOfN
	}

	return NormalizeToRange
}

// Compatible reports whether method m may normalize a column of type t.
// Qualitative types pair with {OneOfN, QualitativeToRange, EquilateralEncoding};
// quantitative types pair with {NormalizeToRange, ReciprocalNormalization}.
func Compatible(t FieldType, m NormalizeMethod) bool {
	if !m.IsValid() {
		return false
	}
	if t.IsQualitative() {
		return m.IsQualitative()
	}

	return !m.IsQualitative()
}

// CorrectMethod returns m when it is compatible with t, else DefaultMethod(t).
func CorrectMethod(t FieldType, m NormalizeMethod) NormalizeMethod {
	if Compatible(t, m) {
		return m
	}

	return DefaultMethod(t)
}

// Bounds returns the interval endpoints of the range.
func (n NormalizeRange) Bounds() (lo, hi float64) {
	if n == MinusOneToOne {
		return -1, 1
	}

	return 0, 1
}

// RangeOf maps interval endpoints back to a NormalizeRange.
func RangeOf(lo, hi float64) (NormalizeRange, bool) {
	switch {
	case lo == 0 && hi == 1:
		return ZeroToOne, true
	case lo == -1 && hi == 1:
		return MinusOneToOne, true
	}

	return 0, false
}
