// Package builder generates crane unloading grids for tests, examples and
// timing runs, using functional options in the same style throughout.
//
// Constructors:
//
//   - Random(rows, cols, opts...): independent per-cell draws; needs an RNG
//     (WithSeed or WithRand). WithCraneRatio / WithBuildingRatio tune the mix,
//     WithOpenOrigin(false) lets the origin be drawn like any other cell.
//   - Corridor(n, kind): a 1×n strip of one cell kind.
//   - Obstructed(rows, cols, origin): buildings everywhere but the origin.
//
// Guarantees:
//
//   - Deterministic: equal inputs, options and seed produce equal grids.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewCells,
//     ErrInvalidProbability, ErrNeedRandSource) wrapped with the method name.
package builder
