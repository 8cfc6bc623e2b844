package modifier

import (
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/relax"
)

// RelaxSlope1DOp drives relax.Step1D over the patch's center column only,
// one STEP_SIZE-bounded slice of passes per Step call, matching the
// preparatory flatten-then-relax tooling of spec §4.4's "1-D slope mode"
// (scenario S2). Unlike RelaxOp it never reports Nonconvergence: 1-D
// relaxation on a finite column always settles.
type RelaxSlope1DOp struct {
	Params config.Params
	Scale  float64

	iterations uint32
	done       bool
}

func (o *RelaxSlope1DOp) Kind() Kind { return KindRelaxSlope1D }
func (o *RelaxSlope1DOp) Done() bool { return o.done }

// Iterations reports the cumulative pass count run so far.
func (o *RelaxSlope1DOp) Iterations() uint32 { return o.iterations }

func (o *RelaxSlope1DOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}

	col := patch.Size / 2
	h := make([]float64, patch.Size)
	for row := 0; row < patch.Size; row++ {
		h[row] = patch.At(col, row).H
	}

	changed := false
	for pass := uint32(0); pass < o.Params.StepSize; pass++ {
		o.iterations++
		if !relax.Step1D(h, o.Scale, o.Params.MaxSlope, o.Params.SThreshold) {
			o.done = true
			break
		}
		changed = true
		if o.iterations >= o.Params.MaxIterations {
			o.done = true
			break
		}
	}

	for row := 0; row < patch.Size; row++ {
		patch.At(col, row).H = h[row]
	}

	return changed, nil
}
