package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/modifier"
)

func TestPopulateAutoSurround_BuildsFourAdjacentPatches(t *testing.T) {
	center, err := heightfield.New([3]int32{5, 5, 0}, 9, heightfield.ModeSequential)
	require.NoError(t, err)

	n, e, s, w, err := modifier.PopulateAutoSurround(center, heightfield.ModeSequential)
	require.NoError(t, err)

	assert.Equal(t, [3]int32{5, 4, 0}, n.Pos)
	assert.Equal(t, [3]int32{6, 5, 0}, e.Pos)
	assert.Equal(t, [3]int32{5, 6, 0}, s.Pos)
	assert.Equal(t, [3]int32{4, 5, 0}, w.Pos)

	for _, p := range []*heightfield.Patch{n, e, s, w} {
		assert.Equal(t, center.Size, p.Size)
		for _, v := range p.Data {
			assert.Equal(t, heightfield.Flags(0), v.Flags)
		}
	}
}
