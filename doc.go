// Package cranes finds the most profitable route for a crane unloading
// truck on a rectangular board of empty lots, buildings and cranes.
//
// The truck starts in the top-left cell and only ever drives South or
// East. It may never enter a building and may stop anywhere. Every crane
// cell it passes unloads it a little more; the goal is a route through as
// many cranes as possible.
//
// What is inside:
//
//	grid/            — Grid, Cell, Direction, the text format and Path
//	builder/         — seeded random boards and fixed test fixtures
//	unload/          — Exhaustive (2^s reference search), DynProg (table search), Solve
//	timing/          — timed runs of both searches, table and HTML chart reports
//	internal/config/ — YAML configuration for the command
//	cmd/cranes/      — the `cranes solve` and `cranes timing` command
//
// Quick ASCII example:
//
//	..X..        *.X..
//	C.XC.        *.XC.
//	.C..C   →    *****
//	X.CXC        X.CX*
//
//	the right board shows a four-crane route: S S E E E E S.
//
//	go install github.com/katalvlaran/cranes/cmd/cranes@latest
package cranes
