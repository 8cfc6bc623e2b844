package relax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/relax"
)

func TestDirSlope_ZeroTargetVectorIsNoop(t *testing.T) {
	const size = 3
	data := make([]heightfield.Vertex, size*size)
	data[heightfield.Index(size, 1, 1)].H = 0.9
	changed := relax.DirSlope(size, heightfield.Index(size, 1, 1), 1.0, 0, 0, 1e-5, 1, data, data, false)
	assert.False(t, changed)
}

func TestDirSlope_ExcessAlongTargetIsCorrected(t *testing.T) {
	const size = 3
	data := make([]heightfield.Vertex, size*size)
	ix := heightfield.Index(size, 1, 1)
	data[ix].H = 0.1
	data[heightfield.Index(size, 2, 1)].H = 0.9

	before := sumHeights(data)
	changed := relax.DirSlope(size, ix, 1.0, 0.05, 0.05, 1e-5, 1, data, data, false)
	assert.True(t, changed)
	assert.InDelta(t, before, sumHeights(data), 1e-9)
}
