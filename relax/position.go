package relax

import "github.com/terrainforge/terrainforge/heightfield"

// Position applies the POSITION operator at vertex ix: it overwrites the
// height unconditionally with the pinned value c2, regardless of whatever
// SLOPE, DIR_SLOPE, or ROUGHNESS wrote to it this pass. POSITION always
// runs in its own sweep after every other operator (spec §4.4 POSITION,
// invariant 4) and is the only operator allowed to change the field's total
// mass. Reports whether the vertex had already converged, i.e. whether its
// height already equaled the pin before this call overwrote it.
func Position(data []heightfield.Vertex, ix int) bool {
	target := data[ix].C[2]
	converged := data[ix].H == target
	data[ix].H = target
	return converged
}
