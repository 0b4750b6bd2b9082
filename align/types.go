// SPDX-License-Identifier: MIT

// Package align defines the traceback steps, column kinds and result types
// shared by the table builder, the maximum locator and the traceback walk.
package align

import "strings"

// Step records which neighbour produced a cell's score.
//
//   - StepNone     — no predecessor: the cell scored 0 or lies on row/column 0.
//     Traceback stops here.
//   - StepDiagonal — came from (i-1, j-1); emits a match or mismatch column.
//   - StepUp       — came from (i-1, j); emits A[i-1] against a gap.
//   - StepLeft     — came from (i, j-1); emits a gap against B[j-1].
type Step uint8

const (
	// StepNone marks a cell where the alignment terminates.
	StepNone Step = iota

	// StepDiagonal consumes one symbol from each sequence.
	StepDiagonal

	// StepUp consumes one symbol from A only.
	StepUp

	// StepLeft consumes one symbol from B only.
	StepLeft
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepDiagonal:
		return "diagonal"
	case StepUp:
		return "up"
	case StepLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Column classifies one column of a reconstructed alignment.
type Column uint8

const (
	// ColumnMatch pairs two equal symbols.
	ColumnMatch Column = iota

	// ColumnMismatch pairs two different symbols.
	ColumnMismatch

	// ColumnGapInA has the gap marker in the A row (horizontal step).
	ColumnGapInA

	// ColumnGapInB has the gap marker in the B row (vertical step).
	ColumnGapInB
)

// String implements fmt.Stringer.
func (c Column) String() string {
	switch c {
	case ColumnMatch:
		return "match"
	case ColumnMismatch:
		return "mismatch"
	case ColumnGapInA:
		return "gap-in-a"
	case ColumnGapInB:
		return "gap-in-b"
	default:
		return "unknown"
	}
}

// Swapped returns the column kind seen when the two input sequences trade
// places: gap roles flip, match and mismatch stay put.
func (c Column) Swapped() Column {
	switch c {
	case ColumnGapInA:
		return ColumnGapInB
	case ColumnGapInB:
		return ColumnGapInA
	default:
		return c
	}
}

// Coord addresses a cell of the (|A|+1)×(|B|+1) score table.
type Coord struct {
	I int // row, 0..|A|
	J int // column, 0..|B|
}

// Pair is one independent alignment request for AlignAll.
type Pair struct {
	A string
	B string
}

// Alignment is the reconstructed best local alignment of A and B.
//
// Fields:
//   - A, B    — equal-length aligned rows; gaps use the Aligner's gap marker.
//   - Columns — one kind per column, in alignment order.
//   - Score   — the table maximum, equal to the sum of column scores.
//   - Start   — table cell where traceback stopped; A[Start.I:End.I] and
//     B[Start.J:End.J] (rune offsets) are the aligned substrings.
//   - End     — table cell holding the maximum.
//
// An empty alignment (no positive score anywhere) has empty rows, Score 0 and
// Start == End == (0,0).
type Alignment struct {
	A       string
	B       string
	Columns []Column
	Score   float64
	Start   Coord
	End     Coord
}

// Len returns the number of aligned columns.
func (al Alignment) Len() int {
	return len(al.Columns)
}

// Empty reports whether no local alignment with positive score exists.
func (al Alignment) Empty() bool {
	return len(al.Columns) == 0
}

// Count returns how many columns of kind c the alignment contains.
func (al Alignment) Count(c Column) int {
	var n int
	for _, col := range al.Columns {
		if col == c {
			n++
		}
	}

	return n
}

// Gaps returns the number of gap columns in either row.
func (al Alignment) Gaps() int {
	return al.Count(ColumnGapInA) + al.Count(ColumnGapInB)
}

// String joins both rows with a newline, top row first.
func (al Alignment) String() string {
	var sb strings.Builder
	sb.Grow(len(al.A) + len(al.B) + 1)
	sb.WriteString(al.A)
	sb.WriteByte('\n')
	sb.WriteString(al.B)

	return sb.String()
}
