package modifier

import "github.com/terrainforge/terrainforge/heightfield"

// FlattenOp sets every height in the patch's center column to a fixed
// target value in a single Step, pairing with RelaxSlope1DOp as the C
// mod_flatten / mod_relax_slope_1d debugging duo (spec §4.4 "1-D slope
// mode"): flatten first, then relax the column back toward a slope-capped
// shape from a known starting point.
type FlattenOp struct {
	Target float64

	done bool
}

// NewFlatten builds a FlattenOp targeting the given height.
func NewFlatten(target float64) *FlattenOp {
	return &FlattenOp{Target: target}
}

func (o *FlattenOp) Kind() Kind { return KindFlatten }
func (o *FlattenOp) Done() bool { return o.done }

func (o *FlattenOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}

	col := patch.Size / 2
	changed := false
	for row := 0; row < patch.Size; row++ {
		v := patch.At(col, row)
		if v.H != o.Target {
			v.H = o.Target
			changed = true
		}
	}

	o.done = true
	return changed, nil
}
