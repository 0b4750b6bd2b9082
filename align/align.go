// SPDX-License-Identifier: MIT

package align

import "fmt"

// Smith–Waterman local alignment, linear gap penalty.
//
// Description:
//
//	Align finds the highest-scoring pair of substrings of A and B and
//	reconstructs their alignment with gap markers. It runs three phases:
//	  1. buildTable — fill the score grid and a step per cell.
//	  2. locateMax  — first strictly greatest cell in row-major order.
//	  3. traceback  — follow steps back from the maximum until StepNone,
//	     emitting one column per step, then reverse.
//
// Complexity:
//
//	Time   = O(|A|·|B|)
//	Memory = O(|A|·|B|)
//
// Errors:
//
//	None. Align is total over any two finite sequences. Tables are private
//	to one call, so a single *Aligner may be shared between goroutines.

// Aligner holds immutable scoring parameters.
type Aligner struct {
	opts Options
}

// New returns an Aligner configured by opts over DefaultOptions.
//
// Example:
//
//	a := New(WithScores(1, 5, 4))
//	res := a.Align("TACGGGCCCGCTAC", "TAGCCCTATCGGTCA")
func New(opts ...Option) *Aligner {
	return &Aligner{opts: gatherOptions(opts...)}
}

// Options returns a copy of the scoring parameters.
func (al *Aligner) Options() Options {
	return al.opts
}

// Align computes the best local alignment of a and b, comparing runes.
func (al *Aligner) Align(a, b string) Alignment {
	return al.AlignRunes([]rune(a), []rune(b))
}

// AlignRunes is Align over pre-split rune slices. Inputs are not modified.
func (al *Aligner) AlignRunes(a, b []rune) Alignment {
	t := buildTable(a, b, al.opts)
	end, score := t.locateMax()

	return traceback(t, a, b, end, score, al.opts.GapMarker)
}

// Rescore sums the column scores of res under this Aligner's parameters.
// For an alignment produced by the same Aligner the sum equals res.Score.
func (al *Aligner) Rescore(res Alignment) float64 {
	var total float64
	for _, c := range res.Columns {
		total += al.opts.columnScore(c)
	}

	return total
}

// traceback walks steps from end back to the first StepNone cell.
//
// Implementation:
//   - Stage 1: emit columns end-to-start into rowA/rowB/cols.
//   - Stage 2: reverse all three in place.
//   - Stage 3: build the result; Start is the cell where the walk stopped.
//
// A start cell with StepNone (including (0,0)) yields an empty alignment.
func traceback(t *table, a, b []rune, end Coord, score float64, gap rune) Alignment {
	var rowA, rowB []rune
	var cols []Column

	cur := end
	for {
		step := t.Step(cur.I, cur.J)
		if step == StepNone {
			break
		}

		switch step {
		case StepDiagonal:
			x, y := a[cur.I-1], b[cur.J-1]
			rowA = append(rowA, x)
			rowB = append(rowB, y)
			if x == y {
				cols = append(cols, ColumnMatch)
			} else {
				cols = append(cols, ColumnMismatch)
			}
			cur = Coord{I: cur.I - 1, J: cur.J - 1}
		case StepUp:
			rowA = append(rowA, a[cur.I-1])
			rowB = append(rowB, gap)
			cols = append(cols, ColumnGapInB)
			cur = Coord{I: cur.I - 1, J: cur.J}
		case StepLeft:
			rowA = append(rowA, gap)
			rowB = append(rowB, b[cur.J-1])
			cols = append(cols, ColumnGapInA)
			cur = Coord{I: cur.I, J: cur.J - 1}
		default:
			panic(fmt.Sprintf("align: unknown step %d at (%d,%d)", step, cur.I, cur.J))
		}
	}

	reverseRunes(rowA)
	reverseRunes(rowB)
	for l, r := 0, len(cols)-1; l < r; l, r = l+1, r-1 {
		cols[l], cols[r] = cols[r], cols[l]
	}

	return Alignment{
		A:       string(rowA),
		B:       string(rowB),
		Columns: cols,
		Score:   score,
		Start:   cur,
		End:     end,
	}
}

// reverseRunes reverses s in place.
func reverseRunes(s []rune) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
