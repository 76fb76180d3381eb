// SPDX-License-Identifier: MIT

// Package schema reads column metadata from YAML and turns a raw string
// matrix into an annotated.Matrix.
//
//	columns:
//	  - name: sepal_length
//	    role: Parameter
//	    type: Ratio
//	    method: NormalizeToRange
//	    target: { min: -1, max: 1 }
//	  - name: species
//	    role: Result
//	    type: Nominal
//	defaults:
//	  role: Other
//
// Columns are matched by name. Columns the schema does not list take the
// defaults block, then the annotated package defaults. Tag names are
// case-insensitive; an unknown one fails with tags.ErrUnknownTag.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/tags"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownColumn is returned when a schema column names no data column.
	ErrUnknownColumn = errors.New("schema: column not found in data")

	// ErrDuplicateColumn is returned when two schema columns share a name.
	ErrDuplicateColumn = errors.New("schema: duplicate column")
)

// Target bounds; either bound may be omitted.
type Target struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// Column describes one data column. Omitted fields fall back to Defaults.
type Column struct {
	Name   string                `yaml:"name"`
	Role   *tags.FieldRole       `yaml:"role,omitempty"`
	Type   *tags.FieldType       `yaml:"type,omitempty"`
	Method *tags.NormalizeMethod `yaml:"method,omitempty"`
	Range  *tags.NormalizeRange  `yaml:"range,omitempty"`
	Target *Target               `yaml:"target,omitempty"`
}

// Defaults apply to every column the schema leaves unspecified.
type Defaults struct {
	Role   *tags.FieldRole       `yaml:"role,omitempty"`
	Type   *tags.FieldType       `yaml:"type,omitempty"`
	Method *tags.NormalizeMethod `yaml:"method,omitempty"`
	Range  *tags.NormalizeRange  `yaml:"range,omitempty"`
}

// Schema is a parsed schema document.
type Schema struct {
	Columns  []Column `yaml:"columns"`
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Parse decodes a schema document. Unknown keys are rejected; an empty
// document yields an empty schema.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	seen := make(map[string]struct{}, len(s.Columns))
	for i := range s.Columns {
		s.Columns[i].Name = strings.TrimSpace(s.Columns[i].Name)
		name := s.Columns[i].Name
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("parsing schema: %q: %w", name, ErrDuplicateColumn)
		}
		seen[name] = struct{}{}
	}

	return &s, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	return Parse(data)
}

// Marshal encodes the schema as YAML.
func (s *Schema) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Column returns the schema entry for name.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

// Options returns construction options describing the given data columns.
// Errors: ErrUnknownColumn when a schema column is missing from names.
func (s *Schema) Options(names []string) ([]annotated.Option, error) {
	present := make(map[string]struct{}, len(names))
	for _, n := range names {
		present[n] = struct{}{}
	}
	for _, c := range s.Columns {
		if _, ok := present[c.Name]; !ok {
			return nil, fmt.Errorf("schema column %q: %w", c.Name, ErrUnknownColumn)
		}
	}

	n := len(names)
	roles := make([]tags.FieldRole, n)
	types := make([]tags.FieldType, n)
	methods := make([]tags.NormalizeMethod, n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	for j, name := range names {
		c, _ := s.Column(name)
		roles[j] = pick(c.Role, s.Defaults.Role, annotated.DefaultRole)
		types[j] = pick(c.Type, s.Defaults.Type, annotated.DefaultType)
		methods[j] = pick(c.Method, s.Defaults.Method, tags.DefaultMethod(types[j]))

		lo[j], hi[j] = annotated.DefaultTargetMin, annotated.DefaultTargetMax
		if r := pickPtr(c.Range, s.Defaults.Range); r != nil {
			lo[j], hi[j] = r.Bounds()
		}
		if c.Target != nil {
			if c.Target.Min != nil {
				lo[j] = *c.Target.Min
			}
			if c.Target.Max != nil {
				hi[j] = *c.Target.Max
			}
		}
	}

	return []annotated.Option{
		annotated.WithNames(names...),
		annotated.WithRoles(roles...),
		annotated.WithTypes(types...),
		annotated.WithMethods(methods...),
		annotated.WithTargetMin(lo...),
		annotated.WithTargetMax(hi...),
	}, nil
}

// Build constructs a Matrix from a raw string matrix (row 0 = names).
func (s *Schema) Build(raw [][]string, extra ...annotated.Option) (*annotated.Matrix, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("Build: %w", annotated.ErrShape)
	}
	names := make([]string, len(raw[0]))
	for j, n := range raw[0] {
		names[j] = strings.TrimSpace(n)
	}
	opts, err := s.Options(names)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return annotated.FromStrings(raw, append(opts, extra...)...)
}

// FromHeader describes every column of h, for writing a schema back out.
func FromHeader(h annotated.Header) *Schema {
	s := &Schema{Columns: make([]Column, h.Len())}
	for j := range s.Columns {
		role, typ, method := h.Roles[j], h.Types[j], h.Methods[j]
		lo, hi := h.TargetMin[j], h.TargetMax[j]
		s.Columns[j] = Column{
			Name:   h.Names[j],
			Role:   &role,
			Type:   &typ,
			Method: &method,
			Target: &Target{Min: &lo, Max: &hi},
		}
	}

	return s
}

func pick[T any](col, def *T, fallback T) T {
	if p := pickPtr(col, def); p != nil {
		return *p
	}

	return fallback
}

func pickPtr[T any](col, def *T) *T {
	if col != nil {
		return col
	}

	return def
}
