// SPDX-License-Identifier: MIT

// Package csvio moves annotated matrices in and out of CSV.
//
// Inbound, a file becomes the raw rectangular string matrix (row 0 = column
// names) that annotated.FromStrings and schema.Build consume. Outbound there
// are three layouts:
//
//   - Write: names + data rows, readable back by Read.
//   - WriteTable: every list-view row (header rows included), as a table
//     widget shows it.
//   - WriteColumns: one metadata record per column (name, role, type, ...),
//     readable back by ReadColumns.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/listview"
)

var (
	// ErrRagged is returned when CSV records differ in field count.
	ErrRagged = errors.New("csvio: ragged record")

	// ErrEmpty is returned when the input holds no record at all.
	ErrEmpty = errors.New("csvio: no records")
)

// Read returns every record of r. Blank lines are skipped and leading
// spaces in fields are trimmed.
// Errors: ErrEmpty, ErrRagged, or the reader's parse error.
func Read(r io.Reader) ([][]string, error) {
	records, err := gocsv.LazyCSVReader(r).ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("Read: %w: %w", ErrRagged, err)
		}
		return nil, fmt.Errorf("Read: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmpty)
	}

	return records, nil
}

// Load reads the CSV file at path.
func Load(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// ReadMatrix reads r and builds a Matrix with annotated.FromStrings.
func ReadMatrix(r io.Reader, opts ...annotated.Option) (*annotated.Matrix, error) {
	raw, err := Read(r)
	if err != nil {
		return nil, err
	}

	return annotated.FromStrings(raw, opts...)
}

// Write emits the Names row followed by every data row.
func Write(w io.Writer, m *annotated.Matrix) error {
	cw := gocsv.DefaultCSVWriter(w)
	if err := cw.Write(m.Header().Names); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	rows, cols := m.Shape()
	record := make([]string, cols)
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if record[j], err = m.FormatCell(annotated.DataRow(i), j); err != nil {
				return fmt.Errorf("Write: %w", err)
			}
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteTable emits every row of the list view, name slot first.
func WriteTable(w io.Writer, v *listview.View) error {
	cw := gocsv.DefaultCSVWriter(w)
	record := make([]string, v.Width())
	for i := 0; i < v.Len(); i++ {
		row, err := v.Row(i)
		if err != nil {
			return fmt.Errorf("WriteTable: %w", err)
		}
		for j := range record {
			if record[j], err = row.Text(j); err != nil {
				return fmt.Errorf("WriteTable: %w", err)
			}
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("WriteTable: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Save writes m to path with Write, creating or truncating the file.
func Save(path string, m *annotated.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = Write(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("Save: %w", err)
	}

	return f.Close()
}
