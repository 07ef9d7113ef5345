package unload

import "github.com/katalvlaran/cranes/grid"

// Exhaustive solves the crane unloading problem by brute force.
//
// Algorithm Outline:
//  1. Let s = rows + columns − 2 (steps needed to reach the far corner).
//  2. For every step count k = 0..s and every bitmask i in [0, 2^k):
//     start a fresh path at the origin; for j = 0..k−1 read bit j of i
//     (0 → South, 1 → East). Stop at the first invalid step and keep the
//     partial path built so far.
//  3. A candidate replaces the best path only if it has strictly more
//     cranes, so among equal scores the first one enumerated wins.
//
// The 1×1 grid has exactly one candidate, the zero-step path, which is
// returned whatever its score.
//
// Complexity:
//
//	Time   = O(2^s · s)
//	Memory = O(s)
//
// Errors:
//   - ErrEmptyGrid     — g is nil or has no cells.
//   - ErrTooManySteps  — s > MaxExhaustiveSteps.
func Exhaustive(g *grid.Grid) (grid.Path, error) {
	if err := validateGrid(g); err != nil {
		return grid.Path{}, err
	}
	maxSteps := g.MaxSteps()
	if maxSteps > MaxExhaustiveSteps {
		return grid.Path{}, ErrTooManySteps
	}

	best := grid.NewPath(g)
	for steps := 0; steps <= maxSteps; steps++ {
		limit := uint64(1) << uint(steps)
		for bits := uint64(0); bits < limit; bits++ {
			candidate := walk(g, bits, steps)
			if candidate.TotalCranes() > best.TotalCranes() {
				best = candidate
			}
		}
	}

	return best, nil
}

// walk decodes the first steps bits of bits into a path, stopping at the
// first step that would leave the grid or hit a building.
func walk(g *grid.Grid, bits uint64, steps int) grid.Path {
	p := grid.NewPath(g)
	for j := 0; j < steps; j++ {
		dir := grid.South
		if (bits>>uint(j))&1 == 1 {
			dir = grid.East
		}
		if !p.IsStepValid(dir) {
			break
		}
		p.AddStep(dir)
	}
	return p
}
