package relax

import (
	"fmt"

	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
)

// Step runs up to passes relaxation passes over patch, applying SLOPE,
// DIR_SLOPE, and ROUGHNESS to every flagged vertex each pass and POSITION
// in its own trailing sweep, and returns early with converged=true the
// moment a full pass makes no correction anywhere (spec §4.4's STEP_SIZE
// cooperative slice: a modifier calls Step with p.StepSize passes per
// Update, not all of MaxIterations at once).
//
// Under heightfield.ModeParallel, each pass reads from a snapshot taken at
// the pass's start and writes into the live patch data (Jacobi: every
// vertex's operators see only the previous pass's state). Under
// ModeSequential, reads and writes alias the live data directly
// (Gauss-Seidel: later vertices in iteration order see earlier vertices'
// writes within the same pass).
func Step(patch *heightfield.Patch, p config.Params, passes uint32, opts ...Option) (converged bool, err error) {
	if len(patch.Data) != patch.Size*patch.Size {
		return false, fmt.Errorf("%w: len=%d want=%d", ErrSizeMismatch, len(patch.Data), patch.Size*patch.Size)
	}

	o := newOptions(opts)
	scale := config.Scale(patch.Size)
	weight := selectWeight(patch.Mode, p)

	for pass := uint32(0); pass < passes; pass++ {
		inp := patch.Data
		if patch.Mode == heightfield.ModeParallel {
			snapshot := make([]heightfield.Vertex, len(patch.Data))
			copy(snapshot, patch.Data)
			inp = snapshot
		}
		out := patch.Data

		settled := true
		for ix := range patch.Data {
			f := inp[ix].Flags
			c := inp[ix].C

			if f.Has(heightfield.FlagSlope) {
				if Slope(patch.Size, ix, scale, c[0], p.SThreshold, weight, inp, out, o.legacyRescale) {
					settled = false
				}
			}
			if f.Has(heightfield.FlagDirSlope) {
				if DirSlope(patch.Size, ix, scale, c[0], c[1], p.SThreshold, weight, inp, out, o.legacyRescale) {
					settled = false
				}
			}
			if f.Has(heightfield.FlagRoughness) {
				if Roughness(patch.Size, ix, scale, c[0], p.RThreshold, weight, inp, out) {
					settled = false
				}
			}
		}

		for ix := range patch.Data {
			if patch.Data[ix].Flags.Has(heightfield.FlagPosition) {
				if !Position(patch.Data, ix) {
					settled = false
				}
			}
		}

		if settled {
			return true, nil
		}
	}

	return false, nil
}

// selectWeight picks the per-write damping factor a parallel pass must use
// to stay stable: each vertex can be written by up to 4 neighbors' SLOPE or
// DIR_SLOPE corrections plus its own, and by up to 9 neighbors' ROUGHNESS
// corrections, so the weight must shrink accordingly to avoid overshoot
// when those writes land on the same buffer concurrently (spec §4.4
// "Parallel weight"). Sequential mode applies each write immediately and
// needs no damping.
func selectWeight(mode heightfield.Mode, p config.Params) float64 {
	if mode != heightfield.ModeParallel {
		return 1
	}
	if p.UseRoughness {
		return 1.0 / 25
	}
	return 1.0 / 16
}
