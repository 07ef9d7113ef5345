// Package builder provides validation helpers that enforce parameter
// contracts in grid constructors.
package builder

// validateDims ensures rows and cols are both ≥ MinGridDim.
// Complexity: O(1).
func validateDims(method string, rows, cols int) error {
	if rows < MinGridDim || cols < MinGridDim {
		return builderErrorf(method, ErrTooFewCells,
			"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
	}
	return nil
}

// validateRatios ensures crane and building ratios leave room for each other.
// Complexity: O(1).
func validateRatios(method string, cfg builderConfig) error {
	if cfg.craneRatio+cfg.buildingRatio > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"crane=%g + building=%g exceeds %g", cfg.craneRatio, cfg.buildingRatio, MaxProbability)
	}
	return nil
}
