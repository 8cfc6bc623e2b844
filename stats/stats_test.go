package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/stats"
)

// S6 — Stats accounting: a patch with K SLOPE flags all satisfying their
// caps reports n_s=K, s_s=K, u_s=0, d_s=0; flipping one vertex to a
// constraint violation transitions s_s -> K-1, u_s -> 1, d_s > 0.
func TestCompute_S6_StatsAccounting(t *testing.T) {
	const size = 5
	patch, err := heightfield.New([3]int32{}, size, heightfield.ModeSequential)
	require.NoError(t, err)

	k := 0
	for c := 1; c < size-1; c++ {
		for r := 1; r < size-1; r++ {
			v := patch.At(c, r)
			v.Flags = heightfield.FlagSlope
			v.C[0] = 10 // generous cap; flat field trivially satisfies it
			k++
		}
	}

	p := config.Defaults()
	summary := stats.Compute(patch, p, 1.0)
	assert.Equal(t, k, summary.NSlope)
	assert.Equal(t, k, summary.SSlope)
	assert.Equal(t, 0, summary.USlope)
	assert.Equal(t, 0.0, summary.DSlope)

	// Flip one vertex into a steep violation.
	patch.At(2, 2).C[0] = 0
	patch.At(2, 2).H = 0
	patch.At(2, 1).H = 5 // huge slope between (2,2) and its neighbor

	summary = stats.Compute(patch, p, 1.0)
	assert.Equal(t, k-1, summary.SSlope)
	assert.Equal(t, 1, summary.USlope)
	assert.Greater(t, summary.DSlope, 0.0)
}
