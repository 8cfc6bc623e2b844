package relax

import (
	"math"

	"github.com/terrainforge/terrainforge/heightfield"
)

// DirSlope applies the DIR_SLOPE operator at vertex ix: like Slope, but the
// cap is the magnitude of a target gradient vector (c0,c1) and the quantity
// compared against it is the directional derivative along that vector's
// unit direction, not the raw gradient magnitude (spec §4.4 DIR_SLOPE).
// This lets a path tube's outer annulus tolerate steeper cross-slope while
// still capping slope along the direction of travel.
func DirSlope(size int, ix int, scale float64, c0, c1 float64, threshold float64, weight float64, inp, out []heightfield.Vertex, legacyRescale bool) bool {
	changed := false
	maxSlope := math.Hypot(c0, c1)
	if maxSlope == 0 {
		return false
	}
	dx, dy := c0/maxSlope, c1/maxSlope

	for dir := 0; dir < 4; dir++ {
		ixx, ixy, ok := quadrant(size, ix, dir)
		if !ok {
			continue
		}

		sx := (inp[ixx].H - inp[ix].H) / scale
		sy := (inp[ixy].H - inp[ix].H) / scale
		d := math.Abs(sx*dx + sy*dy)

		if d > maxSlope+threshold {
			moveSlope(sx, scale, &out[ix], &out[ixx], axisCap(sx, d, maxSlope, legacyRescale), weight)
			moveSlope(sy, scale, &out[ix], &out[ixy], axisCap(sy, d, maxSlope, legacyRescale), weight)
			changed = true
		}
	}
	return changed
}
