// SPDX-License-Identifier: MIT
// Package: cranes/builder
//
// impl_random.go — implementation of Random(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   • craneRatio + buildingRatio ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • One rng.Float64 draw per cell, row-major, so equal seeds give equal grids.
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(rows·cols) for the cell table (grid.New copies it once more).

package builder

import "github.com/katalvlaran/cranes/grid"

func randomGrid(rows, cols int, cfg builderConfig) (*grid.Grid, error) {
	// 1) Validate in priority order: size, probability, rng.
	if err := validateDims(MethodRandom, rows, cols); err != nil {
		return nil, err
	}
	if err := validateRatios(MethodRandom, cfg); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	// 2) Draw cells row-major.
	cells := make([][]grid.Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]grid.Cell, cols)
		for c := 0; c < cols; c++ {
			u := cfg.rng.Float64()
			switch {
			case u < cfg.buildingRatio:
				cells[r][c] = grid.Building
			case u < cfg.buildingRatio+cfg.craneRatio:
				cells[r][c] = grid.Crane
			default:
				cells[r][c] = grid.Empty
			}
		}
	}

	// 3) Keep the start cell walkable unless told otherwise.
	if cfg.openOrigin {
		cells[0][0] = grid.Empty
	}

	return grid.New(cells)
}
