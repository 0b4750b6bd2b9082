// SPDX-License-Identifier: MIT

// Package align: functional configuration for the Aligner.
// This file defines:
//   - Option / Options (functional options over an exported value type),
//   - documented defaults (constants),
//   - WithX constructors that panic only on non-finite values,
//   - gatherOptions helper that applies options over the defaults.
//
// Scores are used as costs/bonuses: the recurrence adds MatchBonus and
// subtracts MismatchPenalty and GapPenalty. Callers pass positive magnitudes.
// Zero or negative values are accepted and yield deterministic, if unusual,
// alignments.
package align

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGapPenalty is subtracted once per gap column.
	DefaultGapPenalty = 2.0

	// DefaultMatchBonus is added for each pair of equal symbols.
	DefaultMatchBonus = 3.0

	// DefaultMismatchPenalty is subtracted for each pair of different symbols.
	DefaultMismatchPenalty = 3.0

	// DefaultGapMarker fills the row that has no symbol in a gap column.
	DefaultGapMarker = '-'
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicGapPenaltyInvalid      = "align: WithGapPenalty: value must be finite"
	panicMatchBonusInvalid      = "align: WithMatchBonus: value must be finite"
	panicMismatchPenaltyInvalid = "align: WithMismatchPenalty: value must be finite"
)

// Options holds the immutable scoring parameters of an Aligner.
//
// Fields:
//   - GapPenalty      — cost per gap column (linear model, no open/extend split).
//   - MatchBonus      — reward for a column of equal symbols.
//   - MismatchPenalty — cost for a column of different symbols.
//   - GapMarker       — rune written into the row that holds the gap.
type Options struct {
	GapPenalty      float64
	MatchBonus      float64
	MismatchPenalty float64
	GapMarker       rune
}

// DefaultOptions returns the classical example parameters:
// gap 2, match 3, mismatch 3, gap marker '-'.
func DefaultOptions() Options {
	return Options{
		GapPenalty:      DefaultGapPenalty,
		MatchBonus:      DefaultMatchBonus,
		MismatchPenalty: DefaultMismatchPenalty,
		GapMarker:       DefaultGapMarker,
	}
}

// Option mutates Options. Safe to apply repeatedly; the last write wins.
type Option func(*Options)

// WithGapPenalty sets the per-column gap cost.
// Panics if p is NaN or ±Inf.
func WithGapPenalty(p float64) Option {
	mustFinite(p, panicGapPenaltyInvalid)

	return func(o *Options) { o.GapPenalty = p }
}

// WithMatchBonus sets the reward for equal symbols.
// Panics if b is NaN or ±Inf.
func WithMatchBonus(b float64) Option {
	mustFinite(b, panicMatchBonusInvalid)

	return func(o *Options) { o.MatchBonus = b }
}

// WithMismatchPenalty sets the cost for different symbols.
// Panics if p is NaN or ±Inf.
func WithMismatchPenalty(p float64) Option {
	mustFinite(p, panicMismatchPenaltyInvalid)

	return func(o *Options) { o.MismatchPenalty = p }
}

// WithScores sets gap, match and mismatch in the same order as the
// classical (gap, match, mismatch) constructor signature.
func WithScores(gap, match, mismatch float64) Option {
	g, m, x := WithGapPenalty(gap), WithMatchBonus(match), WithMismatchPenalty(mismatch)

	return func(o *Options) {
		g(o)
		m(o)
		x(o)
	}
}

// WithGapMarker sets the rune used for gap positions.
func WithGapMarker(r rune) Option {
	return func(o *Options) { o.GapMarker = r }
}

// gatherOptions applies opts over DefaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// similarity returns +MatchBonus for equal symbols and -MismatchPenalty otherwise.
func (o Options) similarity(x, y rune) float64 {
	if x == y {
		return o.MatchBonus
	}

	return -o.MismatchPenalty
}

// columnScore is the contribution of one reconstructed column to the total.
func (o Options) columnScore(c Column) float64 {
	switch c {
	case ColumnMatch:
		return o.MatchBonus
	case ColumnMismatch:
		return -o.MismatchPenalty
	default:
		return -o.GapPenalty
	}
}

func mustFinite(v float64, msg string) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(msg)
	}
}
