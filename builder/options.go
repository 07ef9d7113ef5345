// SPDX-License-Identifier: MIT
// Package: cranes/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return sentinel errors and never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// the grid is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCraneRatio sets the probability p∈[0,1] that a generated cell is a crane.
// Panics outside that range.
func WithCraneRatio(p float64) BuilderOption {
	mustProbability("WithCraneRatio", p)
	return func(c *builderConfig) {
		c.craneRatio = p
	}
}

// WithBuildingRatio sets the probability p∈[0,1] that a generated cell is a
// building. Panics outside that range.
func WithBuildingRatio(p float64) BuilderOption {
	mustProbability("WithBuildingRatio", p)
	return func(c *builderConfig) {
		c.buildingRatio = p
	}
}

// WithOpenOrigin controls whether (0,0) is forced to Empty. Default true.
func WithOpenOrigin(open bool) BuilderOption {
	return func(c *builderConfig) {
		c.openOrigin = open
	}
}

func mustProbability(name string, p float64) {
	if p < MinProbability || p > MaxProbability || p != p {
		panic(fmt.Sprintf("builder: %s(%v) outside [0,1]", name, p))
	}
}
