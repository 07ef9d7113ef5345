package timing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/cranes/builder"
	"github.com/katalvlaran/cranes/unload"
	"gonum.org/v1/gonum/stat"
)

// Measure executes plan and returns one Sample per timed (algorithm, size),
// ordered as plan.Algos then plan.Sizes. Skipped exhaustive sizes produce
// no sample.
//
// Errors: ErrEmptyPlan, ErrBadPlan, ErrDisagreement, builder errors for
// invalid ratios, and ctx.Err() when cancelled.
//
// Complexity: Σ over samples of Runs × (cost of the algorithm at that size).
func Measure(ctx context.Context, plan Plan) ([]Sample, error) {
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	var out []Sample
	for _, algo := range plan.Algos {
		for _, n := range plan.Sizes {
			if algo == unload.AlgoExhaustive && 2*n-2 > plan.ExhaustiveLimit {
				continue
			}
			s, err := measureOne(ctx, plan, algo, n)
			if err != nil {
				return out, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

func measureOne(ctx context.Context, plan Plan, algo unload.Algorithm, n int) (Sample, error) {
	var (
		opts   = unload.Options{Algo: algo}
		millis = make([]float64, 0, plan.Runs)
		cranes = make([]float64, 0, plan.Runs)
	)
	for i := 0; i < plan.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}
		seed := plan.Seed + int64(n*plan.Runs+i)
		g, err := builder.Random(n, n,
			builder.WithSeed(seed),
			builder.WithCraneRatio(plan.CraneRatio),
			builder.WithBuildingRatio(plan.BuildingRatio))
		if err != nil {
			return Sample{}, err
		}

		start := time.Now()
		res, err := unload.Solve(g, opts)
		elapsed := time.Since(start)
		if err != nil {
			return Sample{}, err
		}

		if plan.Check && algo == unload.AlgoExhaustive {
			ref, err := unload.DynProg(g)
			if err != nil {
				return Sample{}, err
			}
			if ref.TotalCranes() != res.Cranes {
				return Sample{}, fmt.Errorf("n=%d seed=%d: exhaustive=%d dynprog=%d: %w",
					n, seed, res.Cranes, ref.TotalCranes(), ErrDisagreement)
			}
		}

		millis = append(millis, float64(elapsed)/float64(time.Millisecond))
		cranes = append(cranes, float64(res.Cranes))
	}

	mean, std := stat.MeanStdDev(millis, nil)
	if math.IsNaN(std) {
		std = 0 // single run
	}
	return Sample{
		Algo:       algo,
		Size:       n,
		Runs:       plan.Runs,
		Mean:       time.Duration(mean * float64(time.Millisecond)),
		StdDev:     time.Duration(std * float64(time.Millisecond)),
		MeanCranes: stat.Mean(cranes, nil),
	}, nil
}

func validatePlan(plan Plan) error {
	if len(plan.Algos) == 0 || len(plan.Sizes) == 0 {
		return ErrEmptyPlan
	}
	if plan.Runs < 1 {
		return fmt.Errorf("runs=%d: %w", plan.Runs, ErrBadPlan)
	}
	for _, n := range plan.Sizes {
		if n < 1 {
			return fmt.Errorf("size=%d: %w", n, ErrBadPlan)
		}
	}
	for _, p := range []float64{plan.CraneRatio, plan.BuildingRatio} {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("ratio=%g: %w", p, ErrBadPlan)
		}
	}
	for _, a := range plan.Algos {
		if a != unload.AlgoDynProg && a != unload.AlgoExhaustive {
			return fmt.Errorf("%s: %w", a, unload.ErrUnsupportedAlgorithm)
		}
	}
	return nil
}
