// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense allocation and the
// Strassen multiplier. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultLeafSize is the block edge at or below which Strassen switches
	// to the classical product. 1 recurses all the way down.
	DefaultLeafSize = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLeafSizeInvalid = "matrix: WithLeafSize: leaf must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	leafSize       int  // >= 1; DefaultLeafSize
}

// WithValidateNaNInf makes Set reject NaN and ±Inf (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLeafSize sets the Strassen cut-over edge. Panics if leaf < 1.
func WithLeafSize(leaf int) Option {
	if leaf < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leafSize = leaf }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		leafSize:       DefaultLeafSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
