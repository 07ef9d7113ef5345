// Package unload solves the crane unloading problem: find a monotone
// South/East path from the top-left cell of a grid that never enters a
// building and visits as many crane cells as possible.
//
// It provides two interchangeable algorithms with the same contract:
//
//   - Exhaustive enumerates every South/East step sequence as a bitmask.
//     It runs in O(2^s · s) with s = rows + columns − 2, accepts
//     s ≤ MaxExhaustiveSteps (62), and serves as the reference answer on
//     small boards.
//   - DynProg fills one best-path slot per cell from its upper and left
//     neighbours in row-major order. It keeps rows·columns slots, each
//     holding a path of at most s steps.
//
// Solve routes to either one through Options.Algo.
//
// Both scans are deterministic: ties keep the first candidate found
// (exhaustive: by step count, then bitmask value; dynprog: row-major).
//
// Errors:
//
//   - ErrEmptyGrid: grid is nil or has zero rows/columns.
//   - ErrTooManySteps: exhaustive search requested on a board whose
//     corner-to-corner distance does not fit the 63-bit enumeration.
//   - ErrUnsupportedAlgorithm: Options.Algo names no known algorithm.
//
// Nothing here logs, blocks or mutates the input grid, so a single grid may
// be searched from several goroutines at once.
package unload
