// SPDX-License-Identifier: MIT

package align

import "fmt"

// table is the dense (rows × cols) score grid plus a parallel step grid.
//   - rows = |A|+1, cols = |B|+1.
//   - score and step are flat row-major buffers, offset = i*cols + j.
//   - Row 0 and column 0 keep their zero value: score 0, StepNone.
type table struct {
	rows, cols int
	score      []float64
	step       []Step
}

// newTable allocates a zero-filled table for sequences of length m and n.
// make() zero-fills, which already satisfies the boundary condition.
// Complexity: O(m·n) time and memory.
func newTable(m, n int) *table {
	rows, cols := m+1, n+1

	return &table{
		rows:  rows,
		cols:  cols,
		score: make([]float64, rows*cols),
		step:  make([]Step, rows*cols),
	}
}

// offset maps (i, j) to the flat index.
// Panics on coordinates outside the table: reaching this is an internal
// defect, and j == cols would otherwise silently alias the next row.
func (t *table) offset(i, j int) int {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(fmt.Sprintf("align: cell (%d,%d) outside %dx%d table", i, j, t.rows, t.cols))
	}

	return i*t.cols + j
}

// Score returns the cell score at (i, j).
func (t *table) Score(i, j int) float64 {
	return t.score[t.offset(i, j)]
}

// Step returns the predecessor step recorded at (i, j).
func (t *table) Step(i, j int) Step {
	return t.step[t.offset(i, j)]
}

// buildTable fills the score and step grids for a against b.
//
// Algorithm Outline:
//  1. Allocate (m+1)×(n+1); row 0 and column 0 stay 0 with no step.
//  2. For i = 1..m, j = 1..n (row-major):
//     diag = H[i-1][j-1] + sim(A[i-1], B[j-1])
//     up   = H[i-1][j]   - gap
//     left = H[i][j-1]   - gap
//  3. Select, in this exact precedence:
//     diag if diag > up && diag > left && diag > 0
//     up   if up > left && up > 0
//     left if left > 0
//     else 0 with StepNone.
//
// Equal candidates never take the diagonal; an up/left tie goes left.
// The chosen value always equals max(0, diag, up, left).
//
// Complexity: O(m·n) time and memory.
func buildTable(a, b []rune, o Options) *table {
	m, n := len(a), len(b)
	t := newTable(m, n)

	var i, j int
	var diag, up, left float64
	for i = 1; i <= m; i++ {
		prevRow := (i - 1) * t.cols
		curRow := i * t.cols
		for j = 1; j <= n; j++ {
			diag = t.score[prevRow+j-1] + o.similarity(a[i-1], b[j-1])
			up = t.score[prevRow+j] - o.GapPenalty
			left = t.score[curRow+j-1] - o.GapPenalty

			switch {
			case diag > up && diag > left && diag > 0:
				t.score[curRow+j] = diag
				t.step[curRow+j] = StepDiagonal
			case up > left && up > 0:
				t.score[curRow+j] = up
				t.step[curRow+j] = StepUp
			case left > 0:
				t.score[curRow+j] = left
				t.step[curRow+j] = StepLeft
			default:
				// local alignment: clamp to zero and terminate here
				t.score[curRow+j] = 0
				t.step[curRow+j] = StepNone
			}
		}
	}

	return t
}

// locateMax scans every cell in row-major order and returns the first cell
// holding the strictly greatest score, starting from (0,0) with score 0.
// An all-zero table therefore yields (0,0).
// Complexity: O(m·n) time, O(1) memory.
func (t *table) locateMax() (Coord, float64) {
	best := Coord{}
	bestScore := 0.0

	var i, j int
	for i = 0; i < t.rows; i++ {
		row := i * t.cols
		for j = 0; j < t.cols; j++ {
			if s := t.score[row+j]; s > bestScore {
				bestScore = s
				best = Coord{I: i, J: j}
			}
		}
	}

	return best, bestScore
}
