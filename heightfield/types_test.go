package heightfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/heightfield"
)

func TestIsValidMPDSize(t *testing.T) {
	cases := map[int]bool{
		0: false, 1: false, 2: true, 3: true, 4: false,
		5: true, 9: true, 17: true, 129: true, 130: false,
	}
	for size, want := range cases {
		assert.Equalf(t, want, heightfield.IsValidMPDSize(size), "size=%d", size)
	}
}

func TestIndexCoordRoundTrip(t *testing.T) {
	const size = 9
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			ix := heightfield.Index(size, col, row)
			gotCol, gotRow := heightfield.Coord(size, ix)
			require.Equal(t, col, gotCol)
			require.Equal(t, row, gotRow)
		}
	}
}

func TestCorners(t *testing.T) {
	const size = 5
	tl, bl, tr, br := heightfield.Corners(size)
	assert.Equal(t, 0, tl)
	assert.Equal(t, size-1, bl)
	assert.Equal(t, size*(size-1), tr)
	assert.Equal(t, size*size-1, br)
}

func TestSameColumn(t *testing.T) {
	const size = 5
	a := heightfield.Index(size, 2, 3)
	b := heightfield.Index(size, 2, 4)
	c := heightfield.Index(size, 3, 0)

	assert.True(t, heightfield.SameColumn(size, a, b))
	assert.False(t, heightfield.SameColumn(size, a, c))
}

func TestNewRejectsTooSmall(t *testing.T) {
	_, err := heightfield.New([3]int32{}, 1, heightfield.ModeSequential)
	require.ErrorIs(t, err, heightfield.ErrInvalidSize)
}

func TestRoughnessFlatFieldIsZero(t *testing.T) {
	const size = 5
	data := make([]heightfield.Vertex, size*size)
	for i := range data {
		data[i].H = 0.5
	}
	r := heightfield.Roughness(size, data, heightfield.Index(size, 2, 2), 1.0)
	assert.InDelta(t, 0.0, r, 1e-9)
}

func TestRoughnessIgnoresOutOfBoundsNeighbors(t *testing.T) {
	const size = 3
	data := make([]heightfield.Vertex, size*size)
	// Only the center has non-zero interesting structure; corners have 3
	// neighbors instead of 8, edges have 5.
	centerIx := heightfield.Index(size, 1, 1)
	data[centerIx].H = 1.0

	cornerIx := heightfield.Index(size, 0, 0)
	r := heightfield.Roughness(size, data, cornerIx, 1.0)
	// Only the (1,1) neighbor is non-zero among the corner's 3 in-bounds
	// neighbors (1,0),(0,1),(1,1).
	assert.InDelta(t, 1.0, r, 1e-9)
}
