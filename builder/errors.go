// SPDX-License-Identifier: MIT
// Package: cranes/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w (see builderErrorf).
//   • Constructors never panic; validation panics are confined to WithX option
//     constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCells indicates that rows or cols is smaller than MinGridDim.
// Usage: if errors.Is(err, ErrTooFewCells) { /* report invalid size */ }.
var ErrTooFewCells = errors.New("builder: grid dimension too small")

// ErrInvalidProbability indicates that the crane and building ratios add up
// to more than 1, so no cell could be left empty.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a wrapped sentinel with the constructor name, e.g.
// "Random: rows=0, cols=3 (each must be ≥ 1): builder: grid dimension too small".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
