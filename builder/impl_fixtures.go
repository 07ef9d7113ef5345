// SPDX-License-Identifier: MIT
// Package: cranes/builder
//
// impl_fixtures.go — deterministic fixture grids (Corridor, Obstructed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cranes/grid"
)

func corridorGrid(n int, kind grid.Cell) (*grid.Grid, error) {
	if err := validateDims(MethodCorridor, 1, n); err != nil {
		return nil, err
	}
	g, err := grid.Filled(1, n, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCorridor, err)
	}
	return g, nil
}

func obstructedGrid(rows, cols int, origin grid.Cell) (*grid.Grid, error) {
	if err := validateDims(MethodObstructed, rows, cols); err != nil {
		return nil, err
	}
	cells := make([][]grid.Cell, rows)
	for r := range cells {
		cells[r] = make([]grid.Cell, cols)
		for c := range cells[r] {
			cells[r][c] = grid.Building
		}
	}
	cells[0][0] = origin
	return grid.New(cells)
}
