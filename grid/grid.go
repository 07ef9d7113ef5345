package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rows×columns table of cells.
// The zero value has no cells and is rejected by every search algorithm.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×columns) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]Cell, 0, h*w)
	for _, row := range cells {
		flat = append(flat, row...)
	}

	return &Grid{rows: h, cols: w, cells: flat}, nil
}

// Filled returns a rows×cols grid with every cell set to kind.
func Filled(rows, cols int, kind Cell) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	flat := make([]Cell, rows*cols)
	for i := range flat {
		flat[i] = kind
	}

	return &Grid{rows: rows, cols: cols, cells: flat}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Get returns the cell at (r,c).
// Out-of-range coordinates are a programmer error and panic.
func (g *Grid) Get(r, c int) Cell {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: Get(%d,%d) out of range %dx%d", r, c, g.rows, g.cols))
	}
	return g.cells[r*g.cols+c]
}

// MaxSteps is the step count of any path that reaches the bottom-right
// corner: rows + columns - 2.
func (g *Grid) MaxSteps() int {
	return g.rows + g.cols - 2
}

// CraneCount returns the number of Crane cells on the whole grid.
func (g *Grid) CraneCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Crane {
			n++
		}
	}
	return n
}

// String renders the grid one row per line using '.', 'X' and 'C'.
func (g *Grid) String() string {
	return g.render(nil)
}

// render writes the grid, replacing cells present in mark with '*'.
func (g *Grid) render(mark map[Coord]struct{}) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if _, ok := mark[Coord{r, c}]; ok {
				sb.WriteRune(symPath)
				continue
			}
			sb.WriteRune(g.cells[r*g.cols+c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
