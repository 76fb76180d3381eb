// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/csvio"
	"github.com/katalvlaran/algodata/schema"
	"github.com/spf13/cobra"
)

// Structured log keys.
const (
	keyOp       = "op"
	keySamples  = "data.samples"
	keyFeatures = "data.features"
	keyPath     = "path"
)

// app carries the state shared by every subcommand.
type app struct {
	out, errOut io.Writer

	schemaPath string
	logLevel   string
	log        *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "algodata",
		Short: "Inspect and transform annotated CSV matrices",
		Long: `Inspect and transform annotated CSV matrices.

The first CSV record names the columns. Column roles, types and normalization
targets come from an optional YAML schema (--schema); columns it omits take
the package defaults.

Subcommands:
  inspect  Print the shape and the eight header rows
  select   Project columns and rows, write CSV
  reduce   Fill ParameterReduction columns with principal component scores`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.schemaPath, "schema", "", "YAML column schema")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newSelectCmd(a))
	cmd.AddCommand(newReduceCmd(a))

	return cmd
}

func (a *app) initLogger() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))

	return nil
}

// load reads the CSV at path and annotates it with the schema, if any.
func (a *app) load(op, path string) (*annotated.Matrix, error) {
	raw, err := csvio.Load(path)
	if err != nil {
		return nil, err
	}

	s := &schema.Schema{}
	if a.schemaPath != "" {
		if s, err = schema.Load(a.schemaPath); err != nil {
			return nil, err
		}
		a.log.Debug("schema loaded", keyOp, op, keyPath, a.schemaPath, "columns", len(s.Columns))
	}

	m, err := s.Build(raw)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Shape()
	a.log.Info("matrix loaded", keyOp, op, keyPath, path, keySamples, rows, keyFeatures, cols)

	return m, nil
}
