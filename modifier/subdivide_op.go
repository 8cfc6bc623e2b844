package modifier

import (
	"github.com/terrainforge/terrainforge/astar"
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
)

// SubdivideOp runs the A* subdivider once: it searches a path, paints
// SLOPE/DIR_SLOPE tubes along it, stitches borders against any present
// neighbors, and seeds ROUGHNESS targets if enabled, all within a single
// Step.
type SubdivideOp struct {
	Start, Goal astar.Node
	Params      config.Params
	Scale       float64
	Neighbors   [9]*heightfield.Patch

	// Path is populated after Step runs, for callers (e.g. the stats or
	// CLI layer) that want to inspect the discovered route.
	Path []astar.Node

	done bool
}

func (o *SubdivideOp) Kind() Kind { return KindSubdivide }
func (o *SubdivideOp) Done() bool { return o.done }

func (o *SubdivideOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}

	path, err := astar.Search(patch, o.Start, o.Goal, astar.WithCost(o.Params.CostLin, o.Params.CostPow), astar.WithScale(o.Scale))
	if err != nil {
		return false, err
	}
	o.Path = path

	astar.PaintTube(patch, path, o.Params, o.Scale)

	if o.Params.UseBorderStitch {
		astar.StitchBorders(patch, o.Neighbors, o.Params.UseBorderDeriv)
	}
	if o.Params.UseRoughness {
		astar.SeedRoughness(patch, o.Scale)
	}

	o.done = true
	return true, nil
}
