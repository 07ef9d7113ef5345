package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cranes/internal/config"
	"github.com/katalvlaran/cranes/unload"
)

func runArgs(t *testing.T, args ...string) (string, *test.Hook, error) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	err := run(context.Background(), args, &out, io.Discard, logger)
	return out.String(), hook, err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Usage(t *testing.T) {
	_, _, err := runArgs(t)
	assert.ErrorIs(t, err, errUsage)
	_, _, err = runArgs(t, "fly")
	assert.ErrorIs(t, err, errUsage)
}

func TestSolve_GridFileBoth(t *testing.T) {
	path := writeFile(t, "board.txt", "..X..\nC.XC.\n.C..C\nX.CXC\n")
	out, hook, err := runArgs(t, "solve", "-grid", path, "-algo", "both")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "..X..\nC.XC.\n"), out)
	assert.Contains(t, out, "exhaustive: 4 cranes")
	assert.Contains(t, out, "dynprog: 4 cranes")

	var solved []*log.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "solved" {
			solved = append(solved, e)
		}
	}
	require.Len(t, solved, 2)
	for _, e := range solved {
		assert.Equal(t, 4, e.Data["cranes"])
		assert.Equal(t, 4, e.Data["rows"])
		assert.Equal(t, 5, e.Data["columns"])
		assert.NotEmpty(t, e.Data["run"])
	}
}

func TestSolve_RandomFromFlags(t *testing.T) {
	out, _, err := runArgs(t, "solve", "-rows", "3", "-cols", "4", "-seed", "7", "-algo", "exhaustive")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Len(t, lines[0], 4)
	assert.Contains(t, out, "exhaustive: ")
	assert.NotContains(t, out, "dynprog: ")
}

func TestSolve_ConfigThenFlagOverride(t *testing.T) {
	cfgPath := writeFile(t, "cranes.yaml", `
log_level: debug
solve:
  algorithm: exhaustive
  random:
    rows: 2
    columns: 2
`)
	out, _, err := runArgs(t, "solve", "-config", cfgPath, "-algo", "dynprog")
	require.NoError(t, err)
	assert.Contains(t, out, "dynprog: ")
	assert.NotContains(t, out, "exhaustive: ")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := runArgs(t, "solve", "-algo", "greedy")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = runArgs(t, "solve", "-grid", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.txt", "..\n.\n")
	_, _, err = runArgs(t, "solve", "-grid", bad)
	assert.Error(t, err)

	_, _, err = runArgs(t, "solve", "-log-level", "loud")
	assert.Error(t, err)
}

func TestTiming_TableAndChart(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "timing.html")
	out, _, err := runArgs(t, "timing", "-sizes", "2, 3", "-runs", "2", "-chart", chart)
	require.NoError(t, err)
	assert.Contains(t, out, "exhaustive")
	assert.Contains(t, out, "dynprog")

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<html")
}

func TestTiming_BadSizes(t *testing.T) {
	_, _, err := runArgs(t, "timing", "-sizes", "2,x")
	assert.Error(t, err)
	_, _, err = runArgs(t, "timing", "-sizes", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParseIntList(t *testing.T) {
	got, err := parseIntList(" 2,4,,6 ")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestRun_HelpPrintsFlags(t *testing.T) {
	for _, cmd := range []string{"solve", "timing"} {
		logger, _ := test.NewNullLogger()
		var out, errOut bytes.Buffer
		err := run(context.Background(), []string{cmd, "-h"}, &out, &errOut, logger)
		require.ErrorIs(t, err, flag.ErrHelp, cmd)
		assert.Empty(t, out.String(), cmd)
		assert.Contains(t, errOut.String(), "usage: cranes "+cmd, cmd)
		assert.Contains(t, errOut.String(), "-config", cmd)
	}
}

func TestSolveAlgos(t *testing.T) {
	got, err := solveAlgos(config.AlgoBoth)
	require.NoError(t, err)
	assert.Equal(t, []unload.Algorithm{unload.AlgoExhaustive, unload.AlgoDynProg}, got)

	got, err = solveAlgos("dp")
	require.NoError(t, err)
	assert.Equal(t, []unload.Algorithm{unload.AlgoDynProg}, got)

	_, err = solveAlgos("greedy")
	assert.ErrorIs(t, err, unload.ErrUnsupportedAlgorithm)
}
