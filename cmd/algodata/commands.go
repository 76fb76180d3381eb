// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/csvio"
	"github.com/katalvlaran/algodata/listview"
	"github.com/katalvlaran/algodata/schema"
	"github.com/katalvlaran/algodata/tags"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var emitSchema bool

	cmd := &cobra.Command{
		Use:   "inspect <csv>",
		Short: "Print the shape and header rows",
		Long: `Print the matrix shape followed by every row of the list view:
the eight header rows first, then the data rows.

Examples:
  algodata inspect iris.csv
  algodata inspect iris.csv --schema iris.yaml
  algodata inspect iris.csv --emit-schema > iris.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(args[0], emitSchema)
		},
	}

	cmd.Flags().BoolVar(&emitSchema, "emit-schema", false, "print the effective YAML schema instead of the table")

	return cmd
}

func (a *app) runInspect(path string, emitSchema bool) error {
	const op = "inspect"

	m, err := a.load(op, path)
	if err != nil {
		return err
	}
	if err = m.ObserveSourceRange(annotated.All()); err != nil {
		return err
	}

	if emitSchema {
		out, err := schema.FromHeader(m.Header()).Marshal()
		if err != nil {
			return err
		}
		_, err = a.out.Write(out)
		return err
	}

	rows, cols := m.Shape()
	if _, err = fmt.Fprintf(a.out, "shape: %d x %d\n", rows, cols); err != nil {
		return err
	}
	v, err := listview.New(m)
	if err != nil {
		return err
	}

	return csvio.WriteTable(a.out, v)
}

func newSelectCmd(a *app) *cobra.Command {
	var cols, rows string

	cmd := &cobra.Command{
		Use:   "select <csv>",
		Short: "Project columns and rows, write CSV",
		Long: `Project columns and data rows and write the result as CSV.

Column expressions:
  2                 position
  1:5, ::2          slice (start:stop[:step], negatives count from the end)
  role:Parameter    every column with that role
  sepal_length      column name
  name:2017         column name that would otherwise read as a position
                    or slice (names containing ',' cannot be selected)
  0,role:Result,id  comma separated positions, roles and names

Row expressions: a position, a slice or comma separated positions.
Out-of-range positions are dropped.

Examples:
  algodata select iris.csv --cols role:Parameter
  algodata select iris.csv --cols 0,species --rows 0:10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSelect(args[0], cols, rows)
		},
	}

	cmd.Flags().StringVar(&cols, "cols", "", "column expression (default all)")
	cmd.Flags().StringVar(&rows, "rows", "", "row expression (default all)")

	return cmd
}

func (a *app) runSelect(path, colExpr, rowExpr string) error {
	const op = "select"

	ci, err := parseColumns(colExpr)
	if err != nil {
		return err
	}
	ri, err := parseRows(rowExpr)
	if err != nil {
		return err
	}
	m, err := a.load(op, path)
	if err != nil {
		return err
	}

	if m, err = m.Cols(ci); err != nil {
		return err
	}
	if m, err = m.Rows(ri); err != nil {
		return err
	}
	rows, cols := m.Shape()
	a.log.Info("projected", keyOp, op, "cols", ci.String(), "rows", ri.String(), keySamples, rows, keyFeatures, cols)

	return csvio.Write(a.out, m)
}

func newReduceCmd(a *app) *cobra.Command {
	var components int

	cmd := &cobra.Command{
		Use:   "reduce <csv>",
		Short: "Fill ParameterReduction columns with principal component scores",
		Long: `Project the Parameter columns onto their principal components and
write the scores into the ParameterReduction columns, then print the matrix
as CSV.

With --components k, k blank ParameterReduction columns named pc1..pck are
appended first. Without it the schema must declare them.

Examples:
  algodata reduce iris.csv --components 2
  algodata reduce iris.csv --schema iris.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReduce(args[0], components)
		},
	}

	cmd.Flags().IntVarP(&components, "components", "k", 0, "append k ParameterReduction columns")

	return cmd
}

func (a *app) runReduce(path string, k int) error {
	const op = "reduce"

	if k < 0 {
		return fmt.Errorf("--components %d: %w", k, ErrBadExpression)
	}
	m, err := a.load(op, path)
	if err != nil {
		return err
	}
	if k > 0 {
		if m, err = appendReduction(m, k); err != nil {
			return err
		}
	}

	reduced := m.ColumnsOf(tags.ParameterReduction)
	if len(reduced) == 0 {
		a.log.Warn("no ParameterReduction columns, nothing to do", keyOp, op)
	}
	if err = m.ReduceParameters(); err != nil {
		return err
	}
	a.log.Info("reduced", keyOp, op,
		"parameters", len(m.ColumnsOf(tags.Parameter)), "components", len(reduced), keySamples, m.Rows())

	return csvio.Write(a.out, m)
}

// appendReduction stacks k zero ParameterReduction columns to the right of m.
func appendReduction(m *annotated.Matrix, k int) (*annotated.Matrix, error) {
	names := make([]string, k)
	roles := make([]tags.FieldRole, k)
	for j := range names {
		names[j] = fmt.Sprintf("pc%d", j+1)
		roles[j] = tags.ParameterReduction
	}
	zeros := make([][]float64, m.Rows())
	for i := range zeros {
		zeros[i] = make([]float64, k)
	}
	blank, err := annotated.New(zeros, annotated.WithNames(names...), annotated.WithRoles(roles...))
	if err != nil {
		return nil, err
	}

	return annotated.HStack(m, blank)
}
