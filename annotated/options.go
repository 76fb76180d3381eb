// SPDX-License-Identifier: MIT

// Package annotated: functional options for construction.
// Header rows that are never supplied are synthesized from defaults; rows
// shorter than the column count are padded, longer rows are truncated.

package annotated

import (
	"github.com/katalvlaran/algodata/matrix"
	"github.com/katalvlaran/algodata/tags"
)

// Option configures a Matrix at construction time.
type Option func(*options)

type options struct {
	header         Header
	validateNaNInf bool
}

func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: matrix.DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithHeader supplies every header row at once; nil rows count as omitted.
func WithHeader(h Header) Option {
	return func(o *options) { o.header = h.Clone() }
}

// WithNames sets the Names header row.
func WithNames(names ...string) Option {
	return func(o *options) { o.header.Names = append([]string(nil), names...) }
}

// WithRoles sets the Role header row.
func WithRoles(roles ...tags.FieldRole) Option {
	return func(o *options) { o.header.Roles = append([]tags.FieldRole(nil), roles...) }
}

// WithTypes sets the Type header row.
func WithTypes(types ...tags.FieldType) Option {
	return func(o *options) { o.header.Types = append([]tags.FieldType(nil), types...) }
}

// WithMethods sets the NormalizeMethod header row. Methods incompatible with
// the column type are replaced by the type's default.
func WithMethods(methods ...tags.NormalizeMethod) Option {
	return func(o *options) { o.header.Methods = append([]tags.NormalizeMethod(nil), methods...) }
}

// WithTargetMin sets the TargetMin header row.
func WithTargetMin(v ...float64) Option {
	return func(o *options) { o.header.TargetMin = append([]float64(nil), v...) }
}

// WithTargetMax sets the TargetMax header row.
func WithTargetMax(v ...float64) Option {
	return func(o *options) { o.header.TargetMax = append([]float64(nil), v...) }
}

// WithTargetRange sets TargetMin/TargetMax of the first n columns to the bounds of r.
func WithTargetRange(r tags.NormalizeRange, n int) Option {
	lo, hi := r.Bounds()
	return func(o *options) {
		o.header.TargetMin = fit([]float64(nil), n, lo)
		o.header.TargetMax = fit([]float64(nil), n, hi)
	}
}

// WithSourceMin sets the SourceMin header row.
func WithSourceMin(v ...float64) Option {
	return func(o *options) { o.header.SourceMin = append([]float64(nil), v...) }
}

// WithSourceMax sets the SourceMax header row.
func WithSourceMax(v ...float64) Option {
	return func(o *options) { o.header.SourceMax = append([]float64(nil), v...) }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf data values (default on).
func WithValidateNaNInf(on bool) Option {
	return func(o *options) { o.validateNaNInf = on }
}
