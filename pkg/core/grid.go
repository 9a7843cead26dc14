package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions reports a grid with non-positive dimensions or a
	// ragged/mismatched source matrix.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds reports a direct cell access outside [0,rows)x[0,cols).
	ErrOutOfBounds = errors.New("cell position out of bounds")
)

// BoolGrid stores a 2D grid of boolean cell states in row-major order.
// Coordinates wrap toroidally for neighbor computation only; direct
// accessors never wrap.
type BoolGrid struct {
	rows, cols int
	cells      []bool
}

// NewBoolGrid allocates an all-dead grid with the given dimensions.
func NewBoolGrid(rows, cols int) (*BoolGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &BoolGrid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// FromMatrix copies a rectangular boolean matrix into a new grid.
func FromMatrix(cells [][]bool) (*BoolGrid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidDimensions)
	}
	g, err := NewBoolGrid(len(cells), len(cells[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range cells {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, i, len(row), g.cols)
		}
		copy(g.cells[i*g.cols:(i+1)*g.cols], row)
	}
	return g, nil
}

// Rows reports the number of grid rows.
func (g *BoolGrid) Rows() int { return g.rows }

// Cols reports the number of grid columns.
func (g *BoolGrid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *BoolGrid) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BoolGrid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// State returns the cell at (row, col) without wraparound. Out-of-range
// positions are an error, never silently wrapped.
func (g *BoolGrid) State(row, col int) (bool, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[g.Index(row, col)], nil
}

// CountAlive returns the number of live cells.
func (g *BoolGrid) CountAlive() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// AnyAlive reports whether at least one cell is live.
func (g *BoolGrid) AnyAlive() bool {
	for _, alive := range g.cells {
		if alive {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the grid.
func (g *BoolGrid) Clone() *BoolGrid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &BoolGrid{rows: g.rows, cols: g.cols, cells: cells}
}

// Matrix returns the grid contents as a freshly allocated [][]bool.
func (g *BoolGrid) Matrix() [][]bool {
	out := make([][]bool, g.rows)
	for i := range out {
		out[i] = make([]bool, g.cols)
		copy(out[i], g.cells[i*g.cols:(i+1)*g.cols])
	}
	return out
}

// Clear sets every cell dead.
func (g *BoolGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}
