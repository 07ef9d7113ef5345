// Package builder defines shared constants used by grid builders, ensuring
// consistent defaults and validation across constructors.
package builder

// Method names used to prefix errors with the constructor name.
const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodCorridor is the canonical name for the Corridor constructor.
	MethodCorridor = "Corridor"
	// MethodObstructed is the canonical name for the Obstructed constructor.
	MethodObstructed = "Obstructed"
)

// MinGridDim is the smallest accepted number of rows or columns.
const MinGridDim = 1

// Probability bounds accepted by WithCraneRatio and WithBuildingRatio.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Default cell ratios for Random. Roughly one cell in five carries a crane
// and one in ten is a building.
const (
	DefaultCraneRatio    = 0.2
	DefaultBuildingRatio = 0.1
)
