// SPDX-License-Identifier: MIT
// Package annotated: sentinel error set.
// Every exported operation returns one of these sentinels (wrapped with
// operation context via %w) and tests match them via errors.Is. No operation
// panics on user-triggered error conditions, and no failing operation leaves
// the receiver partially mutated.

package annotated

import (
	"errors"

	"github.com/katalvlaran/algodata/matrix"
)

var (
	// ErrShape is returned when a raw source cannot be coerced to a rectangular
	// 2-D block (ragged rows, empty input, non-numeric cells, no operands).
	ErrShape = errors.New("annotated: source is not a rectangular numeric block")

	// ErrShapeMismatch is returned when operand or bulk-copy dimensions do not
	// match the resolved destination selection.
	ErrShapeMismatch = errors.New("annotated: shape mismatch")

	// ErrUnsupportedIndexKind is returned when an index expression is not one of
	// the forms accepted on the requested axis.
	ErrUnsupportedIndexKind = errors.New("annotated: unsupported index kind")

	// ErrAmbiguousColumn is returned when a single-column operation resolves to
	// zero or more than one column.
	ErrAmbiguousColumn = errors.New("annotated: column expression does not select exactly one column")

	// ErrAmbiguousRow is returned when a single-cell write resolves to zero or
	// more than one row.
	ErrAmbiguousRow = errors.New("annotated: row expression does not select exactly one row")

	// ErrTypeMismatch is returned when a value's type is incompatible with the
	// destination cell (or a textual selection is read as numbers).
	ErrTypeMismatch = errors.New("annotated: value type mismatch")

	// ErrInvalidTag is returned when a header cell receives a tag outside its
	// closed set, or a normalize method incompatible with the column type.
	ErrInvalidTag = errors.New("annotated: invalid header tag")

	// ErrResultValuesSet is returned when result labels are assigned twice.
	ErrResultValuesSet = errors.New("annotated: result values already set")

	// ErrUnknownLabel is returned when a result label or code has no entry in
	// the result value table.
	ErrUnknownLabel = errors.New("annotated: unknown result label")

	// ErrReduction is returned when the principal-component reduction fails.
	ErrReduction = errors.New("annotated: parameter reduction failed")
)

// ErrIndexOutOfRange is the matrix package's bounds sentinel, shared so that
// errors.Is matches regardless of which layer detected the violation.
var ErrIndexOutOfRange = matrix.ErrOutOfRange
