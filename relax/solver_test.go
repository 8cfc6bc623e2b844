package relax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/relax"
)

func sumHeights(data []heightfield.Vertex) float64 {
	var s float64
	for _, v := range data {
		s += v.H
	}
	return s
}

// Every non-POSITION operator must conserve total mass: SLOPE and
// DIR_SLOPE always move height in matched +/- pairs, and ROUGHNESS's mean
// correction is designed to net to zero across its 3x3 stencil.
func TestStep_SlopeConservesMass(t *testing.T) {
	const size = 9
	patch, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)

	for c := 0; c < size; c++ {
		for r := 0; r < size; r++ {
			ix := heightfield.Index(size, c, r)
			patch.Data[ix].H = float64(c+r) * 0.3
			patch.Data[ix].Flags = heightfield.FlagSlope
			patch.Data[ix].C[0] = 0.05
		}
	}

	p := config.Defaults()
	before := sumHeights(patch.Data)

	_, err = relax.Step(patch, p, 5)
	require.NoError(t, err)

	after := sumHeights(patch.Data)
	assert.InDelta(t, before, after, 1e-9)
}

func TestStep_RoughnessConservesMass(t *testing.T) {
	const size = 9
	patch, err := heightfield.New([3]int32{}, size, heightfield.ModeParallel)
	require.NoError(t, err)

	for c := 0; c < size; c++ {
		for r := 0; r < size; r++ {
			ix := heightfield.Index(size, c, r)
			patch.Data[ix].H = float64((c*7+r*3)%5) * 0.1
			patch.Data[ix].Flags = heightfield.FlagRoughness
			patch.Data[ix].C[0] = 0.01
		}
	}

	p := config.Defaults()
	p.UseRoughness = true
	before := sumHeights(patch.Data)

	_, err = relax.Step(patch, p, 3)
	require.NoError(t, err)

	after := sumHeights(patch.Data)
	assert.InDelta(t, before, after, 1e-6)
}

// POSITION always wins: even a vertex that also carries SLOPE must end the
// pass at its pinned height.
func TestStep_PositionDominatesSlope(t *testing.T) {
	const size = 5
	patch, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)

	for c := 0; c < size; c++ {
		for r := 0; r < size; r++ {
			ix := heightfield.Index(size, c, r)
			patch.Data[ix].H = float64(c) * 0.2
			patch.Data[ix].Flags = heightfield.FlagSlope
			patch.Data[ix].C[0] = 0.01
		}
	}

	pinIx := heightfield.Index(size, 2, 2)
	patch.Data[pinIx].Flags |= heightfield.FlagPosition
	patch.Data[pinIx].C[2] = 0.77

	p := config.Defaults()
	_, err = relax.Step(patch, p, 4)
	require.NoError(t, err)

	assert.Equal(t, 0.77, patch.Data[pinIx].H)
}

// A flat field with a small slope cap already satisfies SLOPE everywhere, so
// the very first pass must report convergence.
func TestStep_FlatFieldConvergesImmediately(t *testing.T) {
	const size = 5
	patch, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)

	for i := range patch.Data {
		patch.Data[i].H = 0.5
		patch.Data[i].Flags = heightfield.FlagSlope
		patch.Data[i].C[0] = 0.01
	}

	p := config.Defaults()
	converged, err := relax.Step(patch, p, 10)
	require.NoError(t, err)
	assert.True(t, converged)
}

func TestStep_RejectsSizeMismatch(t *testing.T) {
	patch := &heightfield.Patch{Size: 5, Data: make([]heightfield.Vertex, 10)}
	_, err := relax.Step(patch, config.Defaults(), 1)
	assert.ErrorIs(t, err, relax.ErrSizeMismatch)
}
