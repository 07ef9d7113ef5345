package builder_test

import (
	"testing"

	"github.com/katalvlaran/cranes/builder"
	"github.com/katalvlaran/cranes/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Errors(t *testing.T) {
	_, err := builder.Random(0, 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
	assert.Contains(t, err.Error(), builder.MethodRandom)

	_, err = builder.Random(2, 2, builder.WithSeed(1),
		builder.WithCraneRatio(0.7), builder.WithBuildingRatio(0.4))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Random(2, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(6, 7, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Random(6, 7, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 6, a.Rows())
	assert.Equal(t, 7, a.Columns())
	assert.Equal(t, grid.Empty, a.Get(0, 0), "origin kept open by default")
}

func TestRandom_Ratios(t *testing.T) {
	g, err := builder.Random(4, 4, builder.WithSeed(3),
		builder.WithCraneRatio(1), builder.WithBuildingRatio(0), builder.WithOpenOrigin(false))
	require.NoError(t, err)
	assert.Equal(t, 16, g.CraneCount())

	g, err = builder.Random(4, 4, builder.WithSeed(3),
		builder.WithCraneRatio(0), builder.WithBuildingRatio(1))
	require.NoError(t, err)
	assert.Equal(t, grid.Empty, g.Get(0, 0))
	assert.Equal(t, grid.Building, g.Get(3, 3))
	assert.Equal(t, 0, g.CraneCount())
}

func TestCorridor(t *testing.T) {
	g, err := builder.Corridor(5, grid.Crane)
	require.NoError(t, err)
	assert.Equal(t, "CCCCC\n", g.String())

	_, err = builder.Corridor(0, grid.Crane)
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
}

func TestObstructed(t *testing.T) {
	g, err := builder.Obstructed(2, 3, grid.Crane)
	require.NoError(t, err)
	assert.Equal(t, "CXX\nXXX\n", g.String())

	_, err = builder.Obstructed(1, 0, grid.Empty)
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
}
