package timing

import (
	"errors"
	"time"

	"github.com/katalvlaran/cranes/builder"
	"github.com/katalvlaran/cranes/unload"
)

// Sentinel errors returned by Measure.
var (
	// ErrEmptyPlan indicates a plan without algorithms or sizes.
	ErrEmptyPlan = errors.New("timing: plan needs at least one algorithm and one size")
	// ErrBadPlan indicates a non-positive size or run count, or a cell ratio
	// outside [0,1].
	ErrBadPlan = errors.New("timing: sizes and runs must be positive and ratios within [0,1]")
	// ErrDisagreement indicates the two algorithms scored one grid differently.
	ErrDisagreement = errors.New("timing: exhaustive and dynprog disagree")
)

// DefaultExhaustiveLimit caps exhaustive runs at 2^20 candidates per length.
const DefaultExhaustiveLimit = 20

// Plan describes one timing sweep.
type Plan struct {
	Algos []unload.Algorithm
	// Sizes lists the n of each n×n grid.
	Sizes []int
	// Runs is the number of grids generated per (algorithm, size).
	Runs int
	// Seed is the base seed; run i of size n uses Seed + n*Runs + i.
	Seed          int64
	CraneRatio    float64
	BuildingRatio float64
	// ExhaustiveLimit is the largest MaxSteps timed with AlgoExhaustive.
	ExhaustiveLimit int
	// Check cross-validates exhaustive results against DynProg.
	Check bool
}

// DefaultPlan times both algorithms on sizes 2..10 with three runs each.
func DefaultPlan() Plan {
	return Plan{
		Algos:           []unload.Algorithm{unload.AlgoExhaustive, unload.AlgoDynProg},
		Sizes:           []int{2, 4, 6, 8, 10},
		Runs:            3,
		Seed:            1,
		CraneRatio:      builder.DefaultCraneRatio,
		BuildingRatio:   builder.DefaultBuildingRatio,
		ExhaustiveLimit: DefaultExhaustiveLimit,
		Check:           true,
	}
}

// Sample summarises Runs timed solves of one algorithm on n×n grids.
type Sample struct {
	Algo       unload.Algorithm
	Size       int
	Runs       int
	Mean       time.Duration
	StdDev     time.Duration
	MeanCranes float64
}
