// Package unload - unified dispatcher for the crane unloading searches.
//
// Solve validates the grid once and routes to the algorithm named by
// Options.Algo. Both algorithms return sentinel errors only; no logging,
// no fallback from one algorithm to the other.
package unload

import (
	"fmt"

	"github.com/katalvlaran/cranes/grid"
)

// Solve runs the algorithm selected by opts.Algo on g.
//
// Contracts:
//   - g must be non-nil with at least one row and one column.
//   - AlgoExhaustive additionally requires g.MaxSteps() ≤ MaxExhaustiveSteps.
//
// Errors: ErrEmptyGrid, ErrTooManySteps, ErrUnsupportedAlgorithm.
//
// Complexity: per chosen algorithm (see Exhaustive and DynProg).
func Solve(g *grid.Grid, opts Options) (Result, error) {
	if err := validateGrid(g); err != nil {
		return Result{}, err
	}

	var (
		p   grid.Path
		err error
	)
	switch opts.Algo {
	case AlgoDynProg:
		p, err = DynProg(g)
	case AlgoExhaustive:
		p, err = Exhaustive(g)
	default:
		return Result{}, fmt.Errorf("%s: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Path: p, Cranes: p.TotalCranes(), Algo: opts.Algo}, nil
}
