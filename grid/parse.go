package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid in text form: one row per line, one symbol per cell.
// Blank lines and lines starting with '#' are skipped; surrounding spaces
// on each line are trimmed.
//
// Errors: ErrBadCell (wrapped with line/column), ErrEmptyGrid,
// ErrNonRectangular, or the reader's own error.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows [][]Cell
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row := make([]Cell, 0, len(text))
		for col, ch := range []rune(text) {
			cell, err := ParseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("grid: line %d, column %d: %w", line, col+1, err)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error; meant for fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}
