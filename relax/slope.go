package relax

import (
	"math"

	"github.com/terrainforge/terrainforge/heightfield"
)

// moveSlope is the move-toward-slope primitive shared by Slope and
// DirSlope: given the raw (unclamped) slope between self (o1) and a
// neighbor (o2), and the maximum slope magnitude that axis is allowed to
// carry, it shifts height from the higher vertex to the lower one by
// exactly half the excess, so the pair's midpoint is preserved.
func moveSlope(slope, scale float64, o1, o2 *heightfield.Vertex, maxSlope, weight float64) {
	a, b := o2, o1
	if slope > 0 {
		a, b = o1, o2
	}
	move := (math.Abs(slope) - maxSlope) * scale * 0.5 * weight
	a.H += move
	b.H -= move
}

// Slope applies the SLOPE operator at vertex ix: for each of the four
// axis-aligned neighbors, if the gradient magnitude exceeds the cap c0 by
// more than the slope threshold, it redistributes height between ix and
// that neighbor so the gradient along that axis no longer exceeds the cap
// (spec §4.4 SLOPE). inp is read-only; out receives the writes — under
// ModeParallel they are different buffers (Jacobi), under ModeSequential
// they alias (Gauss-Seidel). Reports whether this vertex still needed a
// correction (false means it had already converged).
func Slope(size int, ix int, scale float64, c0 float64, threshold float64, weight float64, inp, out []heightfield.Vertex, legacyRescale bool) bool {
	changed := false
	for dir := 0; dir < 4; dir++ {
		ixx, ixy, ok := quadrant(size, ix, dir)
		if !ok {
			continue
		}

		sx := (inp[ixx].H - inp[ix].H) / scale
		sy := (inp[ixy].H - inp[ix].H) / scale
		g := math.Hypot(sx, sy)

		if g > c0+threshold {
			moveSlope(sx, scale, &out[ix], &out[ixx], axisCap(sx, g, c0, legacyRescale), weight)
			moveSlope(sy, scale, &out[ix], &out[ixy], axisCap(sy, g, c0, legacyRescale), weight)
			changed = true
		}
	}
	return changed
}

// axisCap derives the per-axis slope cap for a single component s of a
// gradient whose total magnitude is g and whose allowed magnitude is cap.
// Two source variants compute the identical quantity via different
// arithmetic: the committed form scales |s| by cap/g directly, the legacy
// form instead normalizes s against sx^2+sy^2 (g^2) under a square root.
// They agree everywhere g is computed consistently; WithLegacyRescale
// exists only because some source variants carried the sqrt form and the
// spec's open question on this point asks implementations to preserve it
// as a toggle rather than deleting it outright.
func axisCap(s, g, cap float64, legacyRescale bool) float64 {
	if legacyRescale {
		return math.Sqrt(s*s/(g*g)) * cap
	}
	return math.Abs(s) * (cap / g)
}
