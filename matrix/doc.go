// Package matrix provides the numeric storage behind annotated matrices.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional mutable float64 arrays
//     with bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation with an optional finite-value policy
//     (NaN/±Inf rejection, on by default).
//   - Copy-based projection (Dense.Induced), column-wise concatenation (HStack)
//     and per-column extrema (ColumnMin, ColumnMax).
//   - Conversions to and from gonum's mat package (ToGonum, FromGonum).
//
// Zero-area shapes (0×N, N×0) are legal so that projections selecting nothing
// still yield a well-formed block. Every error is one of the sentinels in
// errors.go, possibly wrapped with context; match with errors.Is.
package matrix
