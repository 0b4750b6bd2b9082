// Test bridge: exposes the unexported table phases to align_test only.

package align

// TableView exposes one call's score and step grids to tests.
type TableView struct {
	t *table
}

// BuildTableForTest runs the fill phase only.
func BuildTableForTest(a, b string, o Options) TableView {
	return TableView{t: buildTable([]rune(a), []rune(b), o)}
}

// Dims returns (|A|+1, |B|+1).
func (v TableView) Dims() (int, int) { return v.t.rows, v.t.cols }

// Score returns the cell score.
func (v TableView) Score(i, j int) float64 { return v.t.Score(i, j) }

// Step returns the cell step.
func (v TableView) Step(i, j int) Step { return v.t.Step(i, j) }

// LocateMax runs the maximum locator over the table.
func (v TableView) LocateMax() (Coord, float64) { return v.t.locateMax() }
