// SPDX-License-Identifier: MIT

// Package annotated provides Matrix, a numeric data block described by a
// fixed eight-row column header, and the index engine that addresses it.
//
// 🚀 What is an annotated matrix?
//
//	Names      sepal   petal   species
//	Role       Param   Param   Result
//	Type       Ratio   Ratio   Nominal
//	Method     ...     ...     OneOfN
//	TargetMin  0       0       0
//	TargetMax  1       1       1
//	SourceMin  NaN     NaN     NaN
//	SourceMax  NaN     NaN     NaN
//	---------------------------------
//	Data 0     5.1     1.4     0
//	Data 1     4.9     1.3     1
//
// Header rows occupy symbolic row slots (tags.HeaderField) before data row 0.
// Data cells take any number; header cells only accept values of the type
// they already hold.
//
// ✨ Indexing
//
// Row and column expressions are values of the closed Index sum type:
//
//	Pos(2)                      one column, or data row 2
//	Name("petal")               every column named "petal"
//	Role(tags.Parameter)        every Parameter column (possibly none)
//	Field(tags.SourceMin)       one header row (rows only)
//	Many(Pos(3), Name("x"))     union; columns sorted and de-duplicated
//	Span(1, -1).By(2)           start:stop:step with negative bounds
//
// ResolveColumns and ResolveRows turn an expression into positions once;
// Get, Set, Cols, Rows, Fill, CopyTo and ObserveSourceRange all share them.
//
// ⚙️ Projection & combination
//
//   - Cols / Rows return new, independent matrices; out-of-range positions
//     are dropped.
//   - HStack concatenates operands column-wise in operand order.
//   - Fill and CopyTo write in place after validating everything up front.
//
// Training code addresses columns by role (ColumnOf, ColumnsOf), records
// scores (AppendEvaluation, EvaluationSummary) and maps encoded results back
// to labels (EncodeResults, ResultLabel). ReduceParameters writes principal
// components of the Parameter columns into ParameterReduction columns.
//
// A Matrix is not synchronized: one goroutine owns it at a time.
package annotated
