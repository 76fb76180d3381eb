// Package algodata is the home of annotated matrices for classical machine
// learning pipelines: a float64 data block paired with an eight-row header
// describing every column.
//
// 🚀 What is algodata?
//
//	A small library that keeps column metadata next to the numbers:
//		• Header rows: Names, Role, Type, NormalizeMethod, Target/Source ranges
//		• Role-driven selection: "all Parameter columns", wherever they sit
//		• Index expressions: positions, names, roles, header fields, slices, lists
//		• Projection & combination: Cols, Rows, HStack, Fill, CopyTo
//		• Training helpers: result encoding, PCA reduction, score summaries
//
// ✨ Why algodata?
//
//   - Column order never matters: pipelines address columns by role
//   - Every failure is a sentinel error; match with errors.Is
//   - Validate-then-write: a failed write leaves the matrix untouched
//
// Packages:
//
//	tags/       enumerated header tags and their default rules
//	matrix/     dense float64 storage, HStack, gonum conversions
//	annotated/  the annotated Matrix, index resolver, Get/Set, projections
//	listview/   list-of-rows view (header rows first, name slot first)
//	csvio/      CSV reading and writing (gocsv)
//	schema/     YAML column schemas (yaml.v3)
//	memory/     named vectors with snapshot/revert
//	cmd/algodata  inspect, select and reduce from the command line
//
// Quick example:
//
//	m, _ := annotated.New(rows, annotated.WithRoles(tags.Parameter, tags.Parameter, tags.Result))
//	params, _ := m.Cols(annotated.Role(tags.Parameter))
//	_ = m.Fill(annotated.Role(tags.Result), 0)
//
//	go get github.com/katalvlaran/algodata
package algodata
