package align_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/swalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_ClassicalExample checks the textbook case with gap 2, match 3, mismatch 3.
func TestAlign_ClassicalExample(t *testing.T) {
	a := align.New(align.WithScores(2, 3, 3))

	res := a.Align("TGTTACGG", "GGTTGACTA")
	assert.Equal(t, "GTT-AC", res.A, "top row")
	assert.Equal(t, "GTTGAC", res.B, "bottom row")
	assert.Equal(t, 13.0, res.Score, "table maximum")
	assert.Equal(t, align.Coord{I: 6, J: 7}, res.End, "maximum cell")
	assert.Equal(t, align.Coord{I: 1, J: 1}, res.Start, "traceback stop cell")
	assert.Equal(t, "GTT-AC\nGTTGAC", res.String())
}

// TestAlign_HarderExample checks gap 1, match 5, mismatch 4 with several gap runs.
func TestAlign_HarderExample(t *testing.T) {
	a := align.New(align.WithScores(1, 5, 4))

	res := a.Align("TACGGGCCCGCTAC", "TAGCCCTATCGGTCA")
	assert.Equal(t, "TACGGGCCCGCTA-C", res.A)
	assert.Equal(t, "TA-G--CCC--TATC", res.B)
	assert.Equal(t, 39.0, res.Score)
	assert.Equal(t, align.Coord{I: 0, J: 0}, res.Start)
	assert.Equal(t, align.Coord{I: 14, J: 10}, res.End)
	assert.Equal(t, 6, res.Gaps())
}

// TestAlign_SelfAlignment ensures a sequence aligned with itself comes back unchanged.
func TestAlign_SelfAlignment(t *testing.T) {
	a := align.New(align.WithScores(1, 5, 4))
	genome := strings.Repeat("ATTAAAGGTTTATACCTTCCCAGGTAACAAACCAACCAACTTTCGATCTCTTGTAGATCTG", 8)

	res := a.Align(genome, genome)
	require.Equal(t, genome, res.A)
	require.Equal(t, genome, res.B)
	assert.Zero(t, res.Gaps(), "self-alignment has no gaps")
	assert.Equal(t, 5.0*float64(len(genome)), res.Score)
}

// TestAlign_Degenerate covers empty inputs and inputs with no common symbol.
func TestAlign_Degenerate(t *testing.T) {
	a := align.New()

	cases := []struct {
		name string
		x, y string
	}{
		{"both empty", "", ""},
		{"first empty", "", "x"},
		{"second empty", "x", ""},
		{"no common symbol", "xyz", "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := a.Align(tc.x, tc.y)
			assert.True(t, res.Empty())
			assert.Equal(t, "", res.A)
			assert.Equal(t, "", res.B)
			assert.Equal(t, 0.0, res.Score)
			assert.Equal(t, align.Coord{}, res.End, "all-zero table locates (0,0)")
			assert.Equal(t, align.Coord{}, res.Start)
		})
	}
}

// TestAlign_FirstMaximumWins checks that row-major order picks the earliest tied maximum.
func TestAlign_FirstMaximumWins(t *testing.T) {
	a := align.New(align.WithScores(1, 1, 1))

	res := a.Align("AC", "CA")
	assert.Equal(t, "A", res.A)
	assert.Equal(t, "A", res.B)
	assert.Equal(t, align.Coord{I: 1, J: 2}, res.End, "(1,2) precedes (2,1)")

	res = a.Align("ACGT", "TTTT")
	assert.Equal(t, "T", res.A)
	assert.Equal(t, align.Coord{I: 4, J: 1}, res.End)
}

// TestAlign_GapMarker verifies a custom gap rune lands in the gapped row.
func TestAlign_GapMarker(t *testing.T) {
	a := align.New(align.WithScores(1, 2, 1), align.WithGapMarker('_'))

	res := a.Align("ACGT", "AGT")
	assert.Equal(t, "ACGT", res.A)
	assert.Equal(t, "A_GT", res.B)
	assert.Equal(t, []align.Column{
		align.ColumnMatch, align.ColumnGapInB, align.ColumnMatch, align.ColumnMatch,
	}, res.Columns)
}

// TestAlign_Runes verifies symbols are compared as runes, not bytes.
func TestAlign_Runes(t *testing.T) {
	a := align.New(align.WithScores(1, 2, 1))

	res := a.Align("héllo wörld", "hello world")
	assert.Equal(t, "héllo wörld", res.A)
	assert.Equal(t, "hello world", res.B)
	assert.Equal(t, 16.0, res.Score)
	assert.Equal(t, 2, res.Count(align.ColumnMismatch))
	assert.Equal(t, align.Coord{I: 11, J: 11}, res.End, "coordinates count runes")
}

// TestAlign_ZeroGapPenalty checks that a free gap still never beats a strictly better diagonal.
func TestAlign_ZeroGapPenalty(t *testing.T) {
	a := align.New(align.WithScores(0, 1, 1))

	res := a.Align("AAAA", "AA")
	assert.Equal(t, "AA", res.A)
	assert.Equal(t, "AA", res.B)
	assert.Equal(t, 2.0, res.Score)
}

// TestAlign_Rescore ensures the column scores sum back to the reported maximum.
func TestAlign_Rescore(t *testing.T) {
	a := align.New(align.WithScores(1, 5, 4))

	res := a.Align("TACGGGCCCGCTAC", "TAGCCCTATCGGTCA")
	assert.Equal(t, res.Score, a.Rescore(res))
}

// TestAligner_Options verifies defaults and option overrides.
func TestAligner_Options(t *testing.T) {
	def := align.New().Options()
	assert.Equal(t, align.DefaultOptions(), def)
	assert.Equal(t, '-', def.GapMarker)

	o := align.New(
		align.WithGapPenalty(1),
		align.WithMatchBonus(5),
		align.WithMismatchPenalty(4),
		nil,
	).Options()
	assert.Equal(t, 1.0, o.GapPenalty)
	assert.Equal(t, 5.0, o.MatchBonus)
	assert.Equal(t, 4.0, o.MismatchPenalty)
}

// TestAligner_OptionsPanicOnNonFinite ensures NaN/Inf scores are rejected as programmer errors.
func TestAligner_OptionsPanicOnNonFinite(t *testing.T) {
	assert.Panics(t, func() { align.WithGapPenalty(math.Inf(1)) })
	assert.Panics(t, func() { align.WithMatchBonus(math.Inf(-1)) })
	assert.Panics(t, func() { align.WithMismatchPenalty(math.NaN()) })
	assert.NotPanics(t, func() { align.WithScores(-1, 0, -2) })
}

// TestColumn_Strings covers the Stringer and swap helpers.
func TestColumn_Strings(t *testing.T) {
	assert.Equal(t, "match", align.ColumnMatch.String())
	assert.Equal(t, "gap-in-a", align.ColumnGapInA.String())
	assert.Equal(t, align.ColumnGapInB, align.ColumnGapInA.Swapped())
	assert.Equal(t, align.ColumnMismatch, align.ColumnMismatch.Swapped())
	assert.Equal(t, "diagonal", align.StepDiagonal.String())
	assert.Equal(t, "none", align.StepNone.String())
}
