package modifier

import "github.com/terrainforge/terrainforge/heightfield"

// PopulateAutoSurround creates the four unconstrained neighbor patches
// (north, east, south, west) of center before it is subdivided, matching
// AUTO_SURROUND's effect in the original generator: a center patch whose
// border stitches against real, if empty, neighbor data rather than
// leaving those neighbor slots nil. Returns the patches in compass order
// N, E, S, W; callers slot them into a SubdivideOp's Neighbors array at
// the matching astar.Compass* index.
func PopulateAutoSurround(center *heightfield.Patch, mode heightfield.Mode) (n, e, s, w *heightfield.Patch, err error) {
	offsets := [4][3]int32{
		{0, -1, 0}, // north
		{1, 0, 0},  // east
		{0, 1, 0},  // south
		{-1, 0, 0}, // west
	}

	patches := make([]*heightfield.Patch, 4)
	for i, off := range offsets {
		pos := [3]int32{center.Pos[0] + off[0], center.Pos[1] + off[1], center.Pos[2] + off[2]}
		p, perr := heightfield.New(pos, center.Size, mode)
		if perr != nil {
			return nil, nil, nil, nil, perr
		}
		patches[i] = p
	}

	return patches[0], patches[1], patches[2], patches[3], nil
}
