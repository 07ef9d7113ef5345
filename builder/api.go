// SPDX-License-Identifier: MIT
// Package: cranes/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Public constructors are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options and seed ⇒ identical grids.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import "github.com/katalvlaran/cranes/grid"

// Random returns a rows×cols grid whose cells are drawn independently:
// Building with probability buildingRatio, Crane with probability
// craneRatio, Empty otherwise. The origin is Empty unless
// WithOpenOrigin(false) is given.
//
// Errors: ErrTooFewCells, ErrInvalidProbability, ErrNeedRandSource
// (all wrapped with "Random: ...").
//
// Complexity: O(rows·cols) time and memory.
func Random(rows, cols int, opts ...BuilderOption) (*grid.Grid, error) {
	return randomGrid(rows, cols, newBuilderConfig(opts...))
}

// Corridor returns a 1×n grid with every cell set to kind.
//
// Errors: ErrTooFewCells (wrapped with "Corridor: ...").
//
// Complexity: O(n).
func Corridor(n int, kind grid.Cell) (*grid.Grid, error) {
	return corridorGrid(n, kind)
}

// Obstructed returns a rows×cols grid in which every cell other than the
// origin is a Building; the origin is set to origin.
//
// Errors: ErrTooFewCells (wrapped with "Obstructed: ...").
//
// Complexity: O(rows·cols).
func Obstructed(rows, cols int, origin grid.Cell) (*grid.Grid, error) {
	return obstructedGrid(rows, cols, origin)
}
