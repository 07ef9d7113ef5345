package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cranes/timing"
)

func runTiming(ctx context.Context, args []string, out, errOut io.Writer, logger *log.Logger, entry *log.Entry) error {
	fs := newFlagSet("timing", "[-config f] [-sizes 2,4,6] [-runs N] [-chart out.html]", errOut)
	configPath := fs.String("config", "", "YAML config file (optional)")
	sizes := fs.String("sizes", "", "Comma-separated grid sizes n (n×n), e.g. 2,4,6")
	runs := fs.Int("runs", 0, "Grids timed per algorithm and size")
	chart := fs.String("chart", "", "Write an HTML chart to this file")
	level := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *level, logger)
	if err != nil {
		return err
	}
	set := setFlags(fs)
	if set["sizes"] {
		if cfg.Timing.Sizes, err = parseIntList(*sizes); err != nil {
			return fmt.Errorf("invalid -sizes: %w", err)
		}
	}
	if set["runs"] {
		cfg.Timing.Runs = *runs
	}
	if set["chart"] {
		cfg.Timing.Chart = *chart
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	entry.WithFields(log.Fields{"sizes": plan.Sizes, "runs": plan.Runs}).Info("timing started")
	samples, err := timing.Measure(ctx, plan)
	for _, s := range samples {
		entry.WithFields(log.Fields{
			"algo":   s.Algo.String(),
			"n":      s.Size,
			"mean":   s.Mean,
			"stddev": s.StdDev,
		}).Debug("sample")
	}
	if err != nil {
		return err
	}
	if err := timing.WriteTable(out, samples); err != nil {
		return err
	}

	if cfg.Timing.Chart != "" {
		f, err := os.Create(cfg.Timing.Chart)
		if err != nil {
			return err
		}
		if err := timing.WriteChart(f, samples); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		entry.WithField("chart", cfg.Timing.Chart).Info("chart written")
	}
	return nil
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
