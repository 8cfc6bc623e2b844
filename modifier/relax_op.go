package modifier

import (
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/relax"
)

// RelaxOp drives the full 2-D relaxation solver, one STEP_SIZE-bounded
// slice of passes per Step call, until either every operator converges or
// the cumulative iteration count reaches MaxIterations — at which point it
// reports done anyway and sets Nonconverged, per spec §7's "reported but
// not fatal" rule.
type RelaxOp struct {
	Params       config.Params
	Opts         []relax.Option
	Nonconverged bool

	iterations uint32
	done       bool
}

func (o *RelaxOp) Kind() Kind { return KindRelax }
func (o *RelaxOp) Done() bool { return o.done }

// Iterations reports the cumulative pass budget consumed so far: StepSize
// per Step call, including a final call whose passes stopped early on
// convergence. Callers log it to iter_out.txt once the operator is done.
func (o *RelaxOp) Iterations() uint32 { return o.iterations }

func (o *RelaxOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}

	before := make([]float64, len(patch.Data))
	for i, v := range patch.Data {
		before[i] = v.H
	}

	converged, err := relax.Step(patch, o.Params, o.Params.StepSize, o.Opts...)
	if err != nil {
		return false, err
	}

	o.iterations += o.Params.StepSize
	changed := false
	for i, v := range patch.Data {
		if v.H != before[i] {
			changed = true
			break
		}
	}

	if converged {
		o.done = true
	} else if o.iterations >= o.Params.MaxIterations {
		o.done = true
		o.Nonconverged = true
	}

	return changed, nil
}
