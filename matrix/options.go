// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option (functional options over internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions folds opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithValidateNaNInf enables or disables rejection of NaN/±Inf in Set and ingestion.
func WithValidateNaNInf(on bool) Option {
	return func(o *options) { o.validateNaNInf = on }
}

// WithNoValidateNaNInf disables the finite-value guard (e.g. for unset sentinels).
func WithNoValidateNaNInf() Option { return WithValidateNaNInf(false) }
