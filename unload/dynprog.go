package unload

import "github.com/katalvlaran/cranes/grid"

// DynProg solves the crane unloading problem with a dynamic-programming
// table holding, for every cell, the best path found that ends there.
//
// Algorithm Outline:
//  1. Allocate a rows×columns table of *grid.Path (nil = unreached).
//     Seed A[0][0] with the zero-step path. The seed is kept even when the
//     origin is a building, since every path starts there.
//  2. Visit the remaining cells in row-major order. Buildings are cleared
//     and skipped.
//     For the others look at the slot above (from which we step South) and
//     the slot to the left (from which we step East):
//     • both populated — take the one with strictly more cranes, the left
//     one on a tie, and extend it if its step is valid;
//     • one populated  — extend it if its step is valid;
//     • none populated — leave the slot empty.
//  3. Scan the table row-major and return the populated slot with the most
//     cranes; ties keep the earlier cell.
//
// When both predecessors exist and the chosen one cannot step, the cell
// stays empty even if the other predecessor could have reached it. Both
// steps land on the same non-building cell, so the step check only fails
// on buildings, which are handled before this point.
//
// Complexity:
//
//	Time   = O(rows·columns·(rows+columns)) including path copies
//	Memory = O(rows·columns·(rows+columns))
//
// Errors:
//   - ErrEmptyGrid — g is nil or has no cells.
func DynProg(g *grid.Grid) (grid.Path, error) {
	if err := validateGrid(g); err != nil {
		return grid.Path{}, err
	}
	rows, cols := g.Rows(), g.Columns()

	table := make([][]*grid.Path, rows)
	for r := range table {
		table[r] = make([]*grid.Path, cols)
	}
	origin := grid.NewPath(g)
	table[0][0] = &origin

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 && c == 0 {
				continue
			}
			if g.Get(r, c) == grid.Building {
				table[r][c] = nil
				continue
			}

			var above, left *grid.Path
			if r > 0 {
				above = table[r-1][c]
			}
			if c > 0 {
				left = table[r][c-1]
			}

			switch {
			case above != nil && left != nil:
				if above.TotalCranes() > left.TotalCranes() {
					table[r][c] = extend(above, grid.South)
				} else {
					table[r][c] = extend(left, grid.East)
				}
			case left != nil:
				table[r][c] = extend(left, grid.East)
			case above != nil:
				table[r][c] = extend(above, grid.South)
			}
		}
	}

	var best *grid.Path
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			slot := table[r][c]
			if slot == nil {
				continue
			}
			if best == nil || slot.TotalCranes() > best.TotalCranes() {
				best = slot
			}
		}
	}
	if best == nil {
		// (0,0) is seeded and never cleared.
		panic("unload: dynamic programming table has no populated cell")
	}

	return *best, nil
}

// extend returns a copy of from advanced one step in dir, or nil when
// that step is not allowed.
func extend(from *grid.Path, dir grid.Direction) *grid.Path {
	if !from.IsStepValid(dir) {
		return nil
	}
	next := *from
	next.AddStep(dir)
	return &next
}
