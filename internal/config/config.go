// Package config loads the cranes command configuration from YAML.
//
// Fields omitted from the file keep their defaults, so partial files are
// safe. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cranes/builder"
	"github.com/katalvlaran/cranes/timing"
	"github.com/katalvlaran/cranes/unload"
)

// maxFileSize bounds the config file read (1 MiB).
const maxFileSize = 1 << 20

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Solve    SolveConfig  `yaml:"solve"`
	Timing   TimingConfig `yaml:"timing"`
}

// SolveConfig drives the solve subcommand.
type SolveConfig struct {
	// Algorithm is "dynprog", "exhaustive" or "both".
	Algorithm string `yaml:"algorithm"`
	// GridFile, when set, is parsed instead of generating a random grid.
	GridFile string       `yaml:"grid_file"`
	Random   RandomConfig `yaml:"random"`
}

// RandomConfig parameterises builder.Random.
type RandomConfig struct {
	Rows          int     `yaml:"rows"`
	Columns       int     `yaml:"columns"`
	Seed          int64   `yaml:"seed"`
	CraneRatio    float64 `yaml:"crane_ratio"`
	BuildingRatio float64 `yaml:"building_ratio"`
}

// TimingConfig drives the timing subcommand.
type TimingConfig struct {
	Algorithms      []string `yaml:"algorithms"`
	Sizes           []int    `yaml:"sizes"`
	Runs            int      `yaml:"runs"`
	Seed            int64    `yaml:"seed"`
	ExhaustiveLimit int      `yaml:"exhaustive_limit"`
	Check           bool     `yaml:"check"`
	Chart           string   `yaml:"chart"`
}

// AlgoBoth runs both algorithms and compares their scores.
const AlgoBoth = "both"

// Default returns the built-in configuration.
func Default() *Config {
	plan := timing.DefaultPlan()
	algos := make([]string, len(plan.Algos))
	for i, a := range plan.Algos {
		algos[i] = a.String()
	}
	return &Config{
		LogLevel: logrus.InfoLevel.String(),
		Solve: SolveConfig{
			Algorithm: unload.AlgoDynProg.String(),
			Random: RandomConfig{
				Rows:          8,
				Columns:       8,
				Seed:          1,
				CraneRatio:    builder.DefaultCraneRatio,
				BuildingRatio: builder.DefaultBuildingRatio,
			},
		},
		Timing: TimingConfig{
			Algorithms:      algos,
			Sizes:           plan.Sizes,
			Runs:            plan.Runs,
			Seed:            plan.Seed,
			ExhaustiveLimit: plan.ExhaustiveLimit,
			Check:           plan.Check,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	if c.Solve.Algorithm != AlgoBoth {
		if _, err := unload.ParseAlgorithm(c.Solve.Algorithm); err != nil {
			return fmt.Errorf("%w: solve.algorithm: %v", ErrInvalid, err)
		}
	}
	r := c.Solve.Random
	if c.Solve.GridFile == "" && (r.Rows < 1 || r.Columns < 1) {
		return fmt.Errorf("%w: solve.random: rows=%d columns=%d must be ≥ 1", ErrInvalid, r.Rows, r.Columns)
	}
	if !ratioOK(r.CraneRatio) || !ratioOK(r.BuildingRatio) || r.CraneRatio+r.BuildingRatio > 1 {
		return fmt.Errorf("%w: solve.random: crane_ratio=%g building_ratio=%g", ErrInvalid, r.CraneRatio, r.BuildingRatio)
	}

	if _, err := c.Timing.Algos(); err != nil {
		return fmt.Errorf("%w: timing.algorithms: %v", ErrInvalid, err)
	}
	if len(c.Timing.Sizes) == 0 {
		return fmt.Errorf("%w: timing.sizes is empty", ErrInvalid)
	}
	for _, n := range c.Timing.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: timing.sizes: %d must be ≥ 1", ErrInvalid, n)
		}
	}
	if c.Timing.Runs < 1 {
		return fmt.Errorf("%w: timing.runs=%d must be ≥ 1", ErrInvalid, c.Timing.Runs)
	}
	if c.Timing.ExhaustiveLimit < 0 || c.Timing.ExhaustiveLimit > unload.MaxExhaustiveSteps {
		return fmt.Errorf("%w: timing.exhaustive_limit=%d outside [0,%d]",
			ErrInvalid, c.Timing.ExhaustiveLimit, unload.MaxExhaustiveSteps)
	}
	return nil
}

// Algos parses the configured timing algorithm names.
func (t TimingConfig) Algos() ([]unload.Algorithm, error) {
	out := make([]unload.Algorithm, 0, len(t.Algorithms))
	for _, name := range t.Algorithms {
		a, err := unload.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, errors.New("no algorithms")
	}
	return out, nil
}

// Plan converts the timing section into a timing.Plan; ratios come from
// the solve.random section.
func (c *Config) Plan() (timing.Plan, error) {
	algos, err := c.Timing.Algos()
	if err != nil {
		return timing.Plan{}, err
	}
	return timing.Plan{
		Algos:           algos,
		Sizes:           c.Timing.Sizes,
		Runs:            c.Timing.Runs,
		Seed:            c.Timing.Seed,
		CraneRatio:      c.Solve.Random.CraneRatio,
		BuildingRatio:   c.Solve.Random.BuildingRatio,
		ExhaustiveLimit: c.Timing.ExhaustiveLimit,
		Check:           c.Timing.Check,
	}, nil
}

func ratioOK(p float64) bool { return p >= 0 && p <= 1 }
