// Package grid models the crane unloading board: a rectangular table of
// cells that are empty, obstructed by a building, or carrying a crane, and
// monotone paths that walk it from the top-left corner.
//
// What:
//
//   - Grid is immutable once built; cells are stored row-major.
//   - Path starts at (0,0) and grows one South or East step at a time.
//     Stepping off the board or onto a Building is rejected by IsStepValid.
//   - Path is a value type: copying a Path and extending the copy never
//     changes the path it was copied from, so search tables can hold one
//     Path per cell. Copies share steps until they diverge.
//   - Parse / String round-trip a plain text form:
//
//     .  empty
//     X  building
//     C  crane
//
// Why:
//
//   - The search algorithms in package unload consume only Rows, Columns,
//     Get and the Path step API, so they stay independent of storage.
//
// Complexity:
//
//   - Get, InBounds, IsStepValid, TotalCranes: O(1).
//   - AddStep: amortized O(1); O(k) when branching off a shared history.
//   - New, Parse, String: O(rows×columns).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: text input contains an unknown cell rune.
package grid
