package modifier_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/modifier"
	"github.com/terrainforge/terrainforge/terrainio"
)

func TestFromFileOp_ReplaysHeights(t *testing.T) {
	const size = 5
	src, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)
	for ix := range src.Data {
		src.Data[ix].H = float64(ix) * 0.1
	}

	path := filepath.Join(t.TempDir(), "terrain_out_h.json")
	require.NoError(t, terrainio.WriteHeights(path, src))

	dst, err := heightfield.New([3]int32{}, size, heightfield.ModeFromFile)
	require.NoError(t, err)

	op := &modifier.FromFileOp{Path: path}
	changed, err := op.Step(dst)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, op.Done())

	for ix := range dst.Data {
		assert.InDelta(t, src.Data[ix].H, dst.Data[ix].H, 1e-12)
	}

	changed, err = op.Step(dst)
	require.NoError(t, err)
	assert.False(t, changed)
}
