package unload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cranes/grid"
)

// MaxExhaustiveSteps is the largest corner-to-corner step count the
// exhaustive search accepts. Candidate step sequences are encoded one bit
// per step, and the count loop must not overflow.
const MaxExhaustiveSteps = 62

// Sentinel errors returned by the search algorithms.
var (
	// ErrEmptyGrid indicates a nil grid or one with no rows or no columns.
	ErrEmptyGrid = errors.New("unload: grid must have at least one row and one column")

	// ErrTooManySteps indicates rows+columns-2 exceeds MaxExhaustiveSteps.
	ErrTooManySteps = errors.New("unload: grid too large for exhaustive search")

	// ErrUnsupportedAlgorithm indicates Options.Algo is not a known algorithm.
	ErrUnsupportedAlgorithm = errors.New("unload: unsupported algorithm")
)

// Algorithm selects the search strategy used by Solve.
type Algorithm int

const (
	// AlgoDynProg is the polynomial dynamic-programming search.
	AlgoDynProg Algorithm = iota
	// AlgoExhaustive is the exponential reference enumeration.
	AlgoExhaustive
)

// String returns the canonical lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoDynProg:
		return "dynprog"
	case AlgoExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
// "dp" and "dyn" are accepted for AlgoDynProg, "brute" for AlgoExhaustive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dynprog", "dp", "dyn":
		return AlgoDynProg, nil
	case "exhaustive", "brute":
		return AlgoExhaustive, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
	}
}

// Options configures Solve.
type Options struct {
	// Algo chooses the search strategy. Default AlgoDynProg.
	Algo Algorithm
}

// DefaultOptions returns Options{Algo: AlgoDynProg}.
func DefaultOptions() Options {
	return Options{Algo: AlgoDynProg}
}

// Result holds the outcome of Solve.
type Result struct {
	// Path is the best path found; it starts at (0,0).
	Path grid.Path
	// Cranes equals Path.TotalCranes().
	Cranes int
	// Algo records which algorithm produced Path.
	Algo Algorithm
}

// validateGrid enforces the non-empty precondition shared by both searches.
func validateGrid(g *grid.Grid) error {
	if g.Rows() < 1 || g.Columns() < 1 {
		return ErrEmptyGrid
	}
	return nil
}
