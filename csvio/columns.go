// SPDX-License-Identifier: MIT

package csvio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/tags"
)

// ColumnRecord is one column's header, as a CSV record. Tags are written
// by member name; an unset source bound is written as NaN.
type ColumnRecord struct {
	Name      string               `csv:"name"`
	Role      tags.FieldRole       `csv:"role"`
	Type      tags.FieldType       `csv:"type"`
	Method    tags.NormalizeMethod `csv:"method"`
	TargetMin float64              `csv:"target_min"`
	TargetMax float64              `csv:"target_max"`
	SourceMin float64              `csv:"source_min"`
	SourceMax float64              `csv:"source_max"`
}

// Records flattens h into one record per column.
func Records(h annotated.Header) []*ColumnRecord {
	out := make([]*ColumnRecord, h.Len())
	for j := range out {
		out[j] = &ColumnRecord{
			Name:      h.Names[j],
			Role:      h.Roles[j],
			Type:      h.Types[j],
			Method:    h.Methods[j],
			TargetMin: h.TargetMin[j],
			TargetMax: h.TargetMax[j],
			SourceMin: h.SourceMin[j],
			SourceMax: h.SourceMax[j],
		}
	}

	return out
}

// WriteColumns writes the column metadata of m with a header line.
func WriteColumns(w io.Writer, m *annotated.Matrix) error {
	if err := gocsv.Marshal(Records(m.Header()), w); err != nil {
		return fmt.Errorf("WriteColumns: %w", err)
	}

	return nil
}

// ReadColumns reads records written by WriteColumns back into a Header,
// suitable for annotated.WithHeader.
// Errors: tags.ErrUnknownTag for unknown member names, or the decoder's error.
func ReadColumns(r io.Reader) (annotated.Header, error) {
	var records []*ColumnRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return annotated.Header{}, fmt.Errorf("ReadColumns: %w", err)
	}

	var h annotated.Header
	for _, rec := range records {
		h.Names = append(h.Names, rec.Name)
		h.Roles = append(h.Roles, rec.Role)
		h.Types = append(h.Types, rec.Type)
		h.Methods = append(h.Methods, rec.Method)
		h.TargetMin = append(h.TargetMin, rec.TargetMin)
		h.TargetMax = append(h.TargetMax, rec.TargetMax)
		h.SourceMin = append(h.SourceMin, rec.SourceMin)
		h.SourceMax = append(h.SourceMax, rec.SourceMax)
	}

	return h, nil
}
