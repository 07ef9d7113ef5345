package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cranes/unload"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dynprog", cfg.Solve.Algorithm)

	plan, err := cfg.Plan()
	require.NoError(t, err)
	assert.Equal(t, []unload.Algorithm{unload.AlgoExhaustive, unload.AlgoDynProg}, plan.Algos)
	assert.Equal(t, cfg.Solve.Random.CraneRatio, plan.CraneRatio)
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := writeFile(t, "cranes.yaml", `
log_level: debug
solve:
  algorithm: both
  random:
    rows: 3
timing:
  sizes: [2, 3]
  chart: out.html
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, AlgoBoth, cfg.Solve.Algorithm)
	assert.Equal(t, 3, cfg.Solve.Random.Rows)
	assert.Equal(t, 8, cfg.Solve.Random.Columns, "untouched default")
	assert.Equal(t, []int{2, 3}, cfg.Timing.Sizes)
	assert.Equal(t, "out.html", cfg.Timing.Chart)
	assert.Equal(t, Default().Timing.Runs, cfg.Timing.Runs)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(writeFile(t, "cranes.json", "{}"))
	assert.ErrorContains(t, err, "extension")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "stat")

	_, err = Load(writeFile(t, "bad.yml", "solve: [unterminated"))
	assert.ErrorContains(t, err, "parse")
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"log level":       func(c *Config) { c.LogLevel = "loud" },
		"solve algorithm": func(c *Config) { c.Solve.Algorithm = "greedy" },
		"rows":            func(c *Config) { c.Solve.Random.Rows = 0 },
		"ratio sum":       func(c *Config) { c.Solve.Random.CraneRatio, c.Solve.Random.BuildingRatio = 0.8, 0.3 },
		"timing algos":    func(c *Config) { c.Timing.Algorithms = nil },
		"timing sizes":    func(c *Config) { c.Timing.Sizes = []int{3, -1} },
		"timing runs":     func(c *Config) { c.Timing.Runs = 0 },
		"exhaustive cap":  func(c *Config) { c.Timing.ExhaustiveLimit = 63 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_GridFileSkipsRandomSize(t *testing.T) {
	cfg := Default()
	cfg.Solve.GridFile = "yard.txt"
	cfg.Solve.Random.Rows = 0
	assert.NoError(t, cfg.Validate())
}
