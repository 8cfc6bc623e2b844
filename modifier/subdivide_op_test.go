package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/astar"
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/modifier"
)

func TestSubdivideOp_PaintsPathInOneStep(t *testing.T) {
	const size = 17
	patch, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)

	p := config.Defaults()
	op := &modifier.SubdivideOp{
		Start:  astar.Node{Col: 0, Row: 0},
		Goal:   astar.Node{Col: 16, Row: 16},
		Params: p,
		Scale:  1,
	}

	assert.False(t, op.Done())
	changed, err := op.Step(patch)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, op.Done())
	assert.Equal(t, modifier.KindSubdivide, op.Kind())
	require.Len(t, op.Path, 17)

	var anyFlagged bool
	for _, v := range patch.Data {
		if v.Flags.Any(heightfield.FlagSlope | heightfield.FlagDirSlope) {
			anyFlagged = true
			break
		}
	}
	assert.True(t, anyFlagged, "painting a tube along the path must flag at least one vertex")

	changed, err = op.Step(patch)
	require.NoError(t, err)
	assert.False(t, changed)
}
