package stats

import (
	"fmt"
	"math"

	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/relax"
)

// Summary holds the per-constraint-family satisfaction counts for one
// patch at one point in time (spec §4.6).
type Summary struct {
	NSlope, NDirSlope, NRoughness, NPosition int

	SSlope, SDirSlope, SRoughness, SPosition int // satisfied
	USlope, UDirSlope, URoughness, UPosition int // unsatisfied

	DSlope, DDirSlope, DRoughness, DPosition float64 // mean distance-from-goal
}

// Compute scans patch and tallies every constraint family: how many
// vertices carry the flag, how many currently satisfy it within the
// configured threshold, and the mean excess (or mismatch) across all
// flagged vertices, whether satisfied or not.
func Compute(patch *heightfield.Patch, p config.Params, scale float64) Summary {
	var s Summary
	var sumSlope, sumDirSlope, sumRoughness, sumPosition float64

	for ix, v := range patch.Data {
		if v.Flags.Has(heightfield.FlagSlope) {
			s.NSlope++
			excess := slopeExcess(patch, ix, v.C[0], p.SThreshold, scale)
			sumSlope += excess
			if excess <= 0 {
				s.SSlope++
			} else {
				s.USlope++
			}
		}
		if v.Flags.Has(heightfield.FlagDirSlope) {
			s.NDirSlope++
			excess := dirSlopeExcess(patch, ix, v.C[0], v.C[1], p.SThreshold, scale)
			sumDirSlope += excess
			if excess <= 0 {
				s.SDirSlope++
			} else {
				s.UDirSlope++
			}
		}
		if v.Flags.Has(heightfield.FlagRoughness) {
			s.NRoughness++
			r := heightfield.Roughness(patch.Size, patch.Data, ix, scale)
			d := math.Abs(r - v.C[0])
			sumRoughness += d
			if d <= p.RThreshold {
				s.SRoughness++
			} else {
				s.URoughness++
			}
		}
		if v.Flags.Has(heightfield.FlagPosition) {
			s.NPosition++
			d := math.Abs(v.H - v.C[2])
			sumPosition += d
			if d == 0 {
				s.SPosition++
			} else {
				s.UPosition++
			}
		}
	}

	s.DSlope = mean(sumSlope, s.NSlope)
	s.DDirSlope = mean(sumDirSlope, s.NDirSlope)
	s.DRoughness = mean(sumRoughness, s.NRoughness)
	s.DPosition = mean(sumPosition, s.NPosition)
	return s
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// slopeExcess returns the worst (maximum) per-quadrant gradient excess
// beyond cap+threshold at ix, or 0 if every quadrant is within it. SLOPE
// satisfaction is conjunctive across all four quadrants (spec §4.6).
func slopeExcess(patch *heightfield.Patch, ix int, cap, threshold, scale float64) float64 {
	var worst float64
	for dir := 0; dir < 4; dir++ {
		ixx, ixy, ok := relax.Quadrant(patch.Size, ix, dir)
		if !ok {
			continue
		}
		sx := (patch.Data[ixx].H - patch.Data[ix].H) / scale
		sy := (patch.Data[ixy].H - patch.Data[ix].H) / scale
		g := math.Hypot(sx, sy)
		if excess := g - cap - threshold; excess > worst {
			worst = excess
		}
	}
	return worst
}

// dirSlopeExcess mirrors slopeExcess for the directional derivative DIR_SLOPE checks.
func dirSlopeExcess(patch *heightfield.Patch, ix int, c0, c1, threshold, scale float64) float64 {
	maxSlope := math.Hypot(c0, c1)
	if maxSlope == 0 {
		return 0
	}
	dx, dy := c0/maxSlope, c1/maxSlope

	var worst float64
	for dir := 0; dir < 4; dir++ {
		ixx, ixy, ok := relax.Quadrant(patch.Size, ix, dir)
		if !ok {
			continue
		}
		sx := (patch.Data[ixx].H - patch.Data[ix].H) / scale
		sy := (patch.Data[ixy].H - patch.Data[ix].H) / scale
		d := math.Abs(sx*dx + sy*dy)
		if excess := d - maxSlope - threshold; excess > worst {
			worst = excess
		}
	}
	return worst
}

// String renders the summary as the human-readable console block the
// original generator prints after every run.
func (s Summary) String() string {
	return fmt.Sprintf(
		"n_s=%d s_s=%d u_s=%d d_s=%.6f\n"+
			"n_d=%d s_d=%d u_d=%d d_d=%.6f\n"+
			"n_r=%d s_r=%d u_r=%d d_r=%.6f\n"+
			"n_p=%d s_p=%d u_p=%d d_p=%.6f\n",
		s.NSlope, s.SSlope, s.USlope, s.DSlope,
		s.NDirSlope, s.SDirSlope, s.UDirSlope, s.DDirSlope,
		s.NRoughness, s.SRoughness, s.URoughness, s.DRoughness,
		s.NPosition, s.SPosition, s.UPosition, s.DPosition,
	)
}
