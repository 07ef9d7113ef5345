// Command cranes solves crane unloading grids and times the two search
// algorithms.
//
// Usage:
//
//	cranes solve  [-config f] [-grid file | -rows R -cols C -seed S] [-algo dynprog|exhaustive|both]
//	cranes timing [-config f] [-sizes 2,4,6] [-runs N] [-chart out.html]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cranes/internal/config"
)

var errUsage = errors.New("usage: cranes <solve|timing> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New()
	logger.SetOutput(os.Stderr)
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.WithError(err).Error("cranes failed")
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run dispatches to a subcommand. Results go to out, flag usage to errOut,
// diagnostics through logger.
func run(ctx context.Context, args []string, out, errOut io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	entry := logger.WithField("run", uuid.NewString())
	switch args[0] {
	case "solve":
		return runSolve(args[1:], out, errOut, logger, entry)
	case "timing":
		return runTiming(ctx, args[1:], out, errOut, logger, entry)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// loadConfig returns the file config when path is set, else the defaults,
// and applies its log level to logger.
func loadConfig(path, levelOverride string, logger *log.Logger) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if levelOverride != "" {
		cfg.LogLevel = levelOverride
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return cfg, nil
}

// newFlagSet returns a subcommand flag set that prints its usage to errOut.
func newFlagSet(name, synopsis string, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: cranes %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// setFlags reports which flags were given explicitly on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	m := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}
