package relax

import "math"

// Step1D applies the move-toward-slope primitive along a single column of
// heights in place: for each adjacent pair (h[i], h[i+1]) whose slope
// exceeds maxSlope by more than threshold, it redistributes height between
// them (spec §4.4 "1-D slope mode", the preparatory tooling exercised by
// scenario S2). Unlike the full 2-D Slope operator this always runs
// Gauss-Seidel (weight 1, in place) since it is debugging/CLI tooling, not
// part of the parallel solver. Reports whether any pair still needed
// correction.
func Step1D(h []float64, scale, maxSlope, threshold float64) bool {
	changed := false
	for i := 0; i < len(h)-1; i++ {
		s := (h[i+1] - h[i]) / scale
		if math.Abs(s) > maxSlope+threshold {
			move := (math.Abs(s) - maxSlope) * scale * 0.5
			if s > 0 {
				h[i] += move
				h[i+1] -= move
			} else {
				h[i] -= move
				h[i+1] += move
			}
			changed = true
		}
	}
	return changed
}
