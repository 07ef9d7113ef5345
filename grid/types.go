// Package grid defines cell kinds, step directions and sentinel errors
// shared by the grid and path types.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown cell symbol in text input.
	ErrBadCell = errors.New("grid: unknown cell symbol")
)

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	// Empty cells can be walked over and score nothing.
	Empty Cell = iota
	// Building cells are obstructed; no path may occupy them.
	Building
	// Crane cells add one to the score of any path visiting them.
	Crane
)

// Text symbols used by Parse and String.
const (
	symEmpty    = '.'
	symBuilding = 'X'
	symCrane    = 'C'
	symPath     = '*'
)

// String returns the lower-case name of the cell kind.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Building:
		return "building"
	case Crane:
		return "crane"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Symbol returns the one-rune text form of the cell.
func (c Cell) Symbol() rune {
	switch c {
	case Building:
		return symBuilding
	case Crane:
		return symCrane
	default:
		return symEmpty
	}
}

// ParseCell maps a text symbol back to its Cell.
// Returns ErrBadCell for anything other than '.', 'X' or 'C'.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case symEmpty:
		return Empty, nil
	case symBuilding:
		return Building, nil
	case symCrane:
		return Crane, nil
	default:
		return Empty, fmt.Errorf("%q: %w", r, ErrBadCell)
	}
}

// Direction is one admissible move of a monotone path.
type Direction uint8

const (
	// South moves one row down.
	South Direction = iota
	// East moves one column right.
	East
)

// String returns "S" or "E".
func (d Direction) String() string {
	switch d {
	case South:
		return "S"
	case East:
		return "E"
	default:
		return fmt.Sprintf("dir(%d)", uint8(d))
	}
}

// Delta returns the (row, column) offset of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	if d == East {
		return 0, 1
	}
	return 1, 0
}

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row, Column int
}
