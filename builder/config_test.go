// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"
)

// TestDefaults verifies the documented deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.craneRatio != DefaultCraneRatio {
		t.Errorf("default craneRatio: expected %g, got %g", DefaultCraneRatio, cfg.craneRatio)
	}
	if cfg.buildingRatio != DefaultBuildingRatio {
		t.Errorf("default buildingRatio: expected %g, got %g", DefaultBuildingRatio, cfg.buildingRatio)
	}
	if !cfg.openOrigin {
		t.Error("default openOrigin: expected true")
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed(42) draw %d: %d != %d", i, x, y)
		}
	}
}

// TestOptionOrder verifies last-wins semantics.
func TestOptionOrder(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithCraneRatio(0.3), WithCraneRatio(0.6), WithOpenOrigin(false))
	if cfg.craneRatio != 0.6 {
		t.Errorf("craneRatio: expected 0.6, got %g", cfg.craneRatio)
	}
	if cfg.openOrigin {
		t.Error("openOrigin: expected false")
	}
}

// TestOptionPanics verifies that option constructors panic on meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":          func() { WithRand(nil) },
		"WithCraneRatio(-0.1)":   func() { WithCraneRatio(-0.1) },
		"WithCraneRatio(1.5)":    func() { WithCraneRatio(1.5) },
		"WithBuildingRatio(NaN)": func() { WithBuildingRatio(math.NaN()) },
	}
	for name, fn := range cases {
		name, fn := name, fn
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}
}
