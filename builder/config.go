// SPDX-License-Identifier: MIT
// Package: cranes/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil   (Random requires WithSeed/WithRand)
//   • craneRatio    = DefaultCraneRatio
//   • buildingRatio = DefaultBuildingRatio
//   • openOrigin    = true

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng           *rand.Rand
	craneRatio    float64
	buildingRatio float64
	openOrigin    bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		craneRatio:    DefaultCraneRatio,
		buildingRatio: DefaultBuildingRatio,
		openOrigin:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
