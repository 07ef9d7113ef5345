// Package timing measures how the crane unloading searches scale with grid
// size and renders the measurements as a table or an HTML line chart.
//
// What:
//
//   - Measure runs each algorithm of a Plan on Runs seeded random n×n grids
//     per size and reports mean / standard deviation of the wall time.
//   - Exhaustive runs are limited to sizes whose corner-to-corner distance
//     stays within Plan.ExhaustiveLimit; larger sizes are skipped.
//   - With Plan.Check, every exhaustive run is cross-checked against DynProg
//     on the same grid and a mismatch aborts with ErrDisagreement.
//   - WriteTable / WriteChart present the samples.
//
// Measure honours context cancellation between runs.
package timing
