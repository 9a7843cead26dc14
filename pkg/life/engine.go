package life

import (
	"fmt"

	"torlife/pkg/core"
)

// Engine owns a toroidal grid of cells and evolves it generation by
// generation. The grid is mutated only by AdvanceGeneration; every other
// operation reads a consistent snapshot of the current state.
type Engine struct {
	grid  *core.BoolGrid
	rule  Rule
	alive int
}

// New constructs an engine over the provided boolean matrix using the
// classic Conway rule. The matrix must be exactly rows x cols.
func New(rows, cols int, cells [][]bool) (*Engine, error) {
	return NewWithRule(rows, cols, cells, Conway)
}

// NewWithRule constructs an engine that steps under the given rule.
func NewWithRule(rows, cols int, cells [][]bool, rule Rule) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, rows, cols)
	}
	if len(cells) != rows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", core.ErrInvalidDimensions, len(cells), rows)
	}
	g, err := core.NewBoolGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	buf := g.Cells()
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", core.ErrInvalidDimensions, i, len(row), cols)
		}
		copy(buf[i*cols:(i+1)*cols], row)
	}
	return &Engine{grid: g, rule: rule, alive: g.CountAlive()}, nil
}

// Rows reports the number of grid rows.
func (e *Engine) Rows() int { return e.grid.Rows() }

// Cols reports the number of grid columns.
func (e *Engine) Cols() int { return e.grid.Cols() }

// Rule returns the rule the engine steps under.
func (e *Engine) Rule() Rule { return e.rule }

// AliveCount returns the maintained live-cell total.
func (e *Engine) AliveCount() int { return e.alive }

// IsAnyAlive reports whether any cell is live, without scanning the grid.
func (e *Engine) IsAnyAlive() bool { return e.alive > 0 }

// CellState returns the state at (row, col). Direct lookups never wrap;
// out-of-range positions return core.ErrOutOfBounds.
func (e *Engine) CellState(row, col int) (bool, error) {
	return e.grid.State(row, col)
}

// AliveNeighborCount counts live cells among the 8 Moore neighbors of
// (row, col), wrapping toroidally at the edges. The result is in [0,8].
func (e *Engine) AliveNeighborCount(row, col int) int {
	cells := e.grid.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := e.grid.Wrap(row+dr, col+dc)
			if cells[e.grid.Index(r, c)] {
				n++
			}
		}
	}
	return n
}

// ComputeNextGrid returns the next generation without mutating the current
// one. Every next state derives from the same snapshot, so cells updated
// earlier in the scan never influence neighbor counts later in it.
func (e *Engine) ComputeNextGrid() *core.BoolGrid {
	next := e.grid.Clone()
	cur := e.grid.Cells()
	out := next.Cells()
	rows, cols := e.grid.Rows(), e.grid.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			out[idx] = e.rule.Next(cur[idx], e.AliveNeighborCount(row, col))
		}
	}
	return next
}

// AdvanceGeneration replaces the grid with the next generation and
// recomputes the live total by full re-scan; any cell can flip in a step,
// so incremental tracking is not assumed safe.
func (e *Engine) AdvanceGeneration() {
	e.grid = e.ComputeNextGrid()
	e.alive = e.grid.CountAlive()
}

// AdvanceGenerations steps the engine n times. Values of n below 1 are a
// no-op; there is no cycle detection or fast-forwarding.
func (e *Engine) AdvanceGenerations(n int) {
	for i := 0; i < n; i++ {
		e.AdvanceGeneration()
	}
}

// Snapshot returns an independent copy of the current grid.
func (e *Engine) Snapshot() *core.BoolGrid { return e.grid.Clone() }

// Matrix returns the current grid contents as a freshly allocated [][]bool.
func (e *Engine) Matrix() [][]bool { return e.grid.Matrix() }

// Randomize reseeds the grid with a deterministic soup of the given
// density and refreshes the live total.
func (e *Engine) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed).Source()
	core.FillSoup(rng, e.grid.Cells(), density)
	e.alive = e.grid.CountAlive()
}
