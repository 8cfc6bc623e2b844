package modifier

import (
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/terrainio"
)

// FromFileOp replays a previously written terrain_out_h.json into the
// patch in a single Step (heightfield.ModeFromFile), rather than
// generating or solving anything.
type FromFileOp struct {
	Path string
	done bool
}

func (o *FromFileOp) Kind() Kind { return KindFromFile }
func (o *FromFileOp) Done() bool { return o.done }

func (o *FromFileOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}
	if err := terrainio.ReadHeights(o.Path, patch); err != nil {
		return false, err
	}
	o.done = true
	return true, nil
}
