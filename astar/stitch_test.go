package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/astar"
	"github.com/terrainforge/terrainforge/heightfield"
)

// S5 — Border stitch corner: two adjacent patches, N=5; the right edge of
// the left patch is stitched from the left edge of the right patch.
func TestStitchBorders_CopiesSharedEdge(t *testing.T) {
	const size = 5
	left, err := heightfield.New([3]int32{0, 0, 0}, size, heightfield.ModeSequential)
	require.NoError(t, err)
	right, err := heightfield.New([3]int32{1, 0, 0}, size, heightfield.ModeSequential)
	require.NoError(t, err)

	for row := 0; row < size; row++ {
		right.At(0, row).H = float64(row) * 0.1
	}

	var neighbors [9]*heightfield.Patch
	neighbors[astar.CompassE] = right
	astar.StitchBorders(left, neighbors, false)

	for row := 0; row < size; row++ {
		v := left.At(size-1, row)
		assert.True(t, v.Flags.Has(heightfield.FlagPosition))
		assert.InDelta(t, float64(row)*0.1, v.C[2], 1e-12)
	}
}

func TestStitchBorders_CornerTakesSingleValue(t *testing.T) {
	const size = 5
	center, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)
	ne, err := heightfield.New([3]int32{1, -1, 0}, size, heightfield.ModeSequential)
	require.NoError(t, err)
	ne.At(0, size-1).H = 0.42

	var neighbors [9]*heightfield.Patch
	neighbors[astar.CompassNE] = ne
	astar.StitchBorders(center, neighbors, false)

	v := center.At(size-1, 0)
	assert.True(t, v.Flags.Has(heightfield.FlagPosition))
	assert.Equal(t, 0.42, v.C[2])
}

func TestStitchBorders_MissingNeighborsAreSkipped(t *testing.T) {
	const size = 5
	center, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)
	var neighbors [9]*heightfield.Patch
	astar.StitchBorders(center, neighbors, false)

	for _, v := range center.Data {
		assert.False(t, v.Flags.Has(heightfield.FlagPosition))
	}
}
