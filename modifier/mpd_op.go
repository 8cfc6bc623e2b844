package modifier

import (
	"math/rand"

	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/mpd"
)

// MPDOp runs the diamond-square generator once, in a single Step, and is
// done from then on.
type MPDOp struct {
	RNG  *rand.Rand
	done bool
}

func (o *MPDOp) Kind() Kind { return KindMPD }
func (o *MPDOp) Done() bool { return o.done }

func (o *MPDOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}
	if err := mpd.Generate(patch.Size, patch.Data, o.RNG); err != nil {
		return false, err
	}
	o.done = true
	return true, nil
}
