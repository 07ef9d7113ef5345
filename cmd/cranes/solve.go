package main

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cranes/builder"
	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/internal/config"
	"github.com/katalvlaran/cranes/unload"
)

func runSolve(args []string, out, errOut io.Writer, logger *log.Logger, entry *log.Entry) error {
	fs := newFlagSet("solve", "[-config f] [-grid file | -rows R -cols C -seed S] [-algo dynprog|exhaustive|both]", errOut)
	configPath := fs.String("config", "", "YAML config file (optional)")
	gridFile := fs.String("grid", "", "Grid text file; '.' empty, 'X' building, 'C' crane")
	rows := fs.Int("rows", 0, "Rows of the random grid")
	cols := fs.Int("cols", 0, "Columns of the random grid")
	seed := fs.Int64("seed", 0, "Seed of the random grid")
	algo := fs.String("algo", "", "dynprog, exhaustive or both")
	level := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *level, logger)
	if err != nil {
		return err
	}
	set := setFlags(fs)
	if set["grid"] {
		cfg.Solve.GridFile = *gridFile
	}
	if set["rows"] {
		cfg.Solve.Random.Rows = *rows
	}
	if set["cols"] {
		cfg.Solve.Random.Columns = *cols
	}
	if set["seed"] {
		cfg.Solve.Random.Seed = *seed
	}
	if set["algo"] {
		cfg.Solve.Algorithm = *algo
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := loadGrid(cfg.Solve)
	if err != nil {
		return err
	}
	entry = entry.WithFields(log.Fields{"rows": g.Rows(), "columns": g.Columns()})
	entry.WithField("source", gridSource(cfg.Solve)).Debug("grid ready")
	fmt.Fprint(out, g)

	algos, err := solveAlgos(cfg.Solve.Algorithm)
	if err != nil {
		return err
	}

	results := make([]unload.Result, 0, len(algos))
	for _, a := range algos {
		start := time.Now()
		res, err := unload.Solve(g, unload.Options{Algo: a})
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		entry.WithFields(log.Fields{
			"algo":    a.String(),
			"cranes":  res.Cranes,
			"steps":   res.Path.Len(),
			"elapsed": time.Since(start),
		}).Info("solved")
		fmt.Fprintf(out, "\n%s: %d cranes, steps %s\n%s", a, res.Cranes, res.Path, res.Path.Render())
		results = append(results, res)
	}

	if len(results) == 2 && results[0].Cranes != results[1].Cranes {
		return fmt.Errorf("exhaustive found %d cranes but dynprog found %d", results[0].Cranes, results[1].Cranes)
	}
	return nil
}

// solveAlgos maps the configured algorithm name to the searches to run;
// "both" runs exhaustive first.
func solveAlgos(name string) ([]unload.Algorithm, error) {
	if name == config.AlgoBoth {
		return []unload.Algorithm{unload.AlgoExhaustive, unload.AlgoDynProg}, nil
	}
	a, err := unload.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []unload.Algorithm{a}, nil
}

func loadGrid(sc config.SolveConfig) (*grid.Grid, error) {
	if sc.GridFile != "" {
		f, err := os.Open(sc.GridFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return grid.Parse(f)
	}
	r := sc.Random
	return builder.Random(r.Rows, r.Columns,
		builder.WithSeed(r.Seed),
		builder.WithCraneRatio(r.CraneRatio),
		builder.WithBuildingRatio(r.BuildingRatio))
}

func gridSource(sc config.SolveConfig) string {
	if sc.GridFile != "" {
		return sc.GridFile
	}
	return fmt.Sprintf("random seed=%d", sc.Random.Seed)
}
