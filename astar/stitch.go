package astar

import "github.com/terrainforge/terrainforge/heightfield"

// Compass indices into a 3x3 neighbor grid, column-major like a Patch
// itself: index 4 is always the center patch being stitched.
const (
	CompassNW = 0
	CompassW  = 1
	CompassSW = 2
	CompassN  = 3
	CompassCenter = 4
	CompassS  = 5
	CompassNE = 6
	CompassE  = 7
	CompassSE = 8
)

// StitchBorders applies POSITION constraints along the shared edges and
// corners of center against whichever of its 8 possible neighbors are
// present in neighbors (nil entries are simply skipped), OR-combined with
// any flags already set (spec §4.2 "Border stitching"). Corners take a
// single neighbor value; edges copy an entire N-length strip from the
// neighbor's mirrored border. neighbors[CompassCenter] is ignored.
//
// extraRing additionally stitches one ring deeper into center (spec's
// USE_BORDER_DERIV), pinning the row/column just inside the border too, so
// relaxation has a second derivative constraint to work against near the
// seam.
func StitchBorders(center *heightfield.Patch, neighbors [9]*heightfield.Patch, extraRing bool) {
	size := center.Size
	last := size - 1

	pin := func(col, row int, h float64) {
		v := center.At(col, row)
		v.Flags |= heightfield.FlagPosition
		v.C[2] = h
	}

	if n := neighbors[CompassW]; n != nil && n.Size == size {
		for row := 0; row < size; row++ {
			pin(0, row, n.At(last, row).H)
			if extraRing {
				pin(1, row, n.At(last-1, row).H)
			}
		}
	}
	if n := neighbors[CompassE]; n != nil && n.Size == size {
		for row := 0; row < size; row++ {
			pin(last, row, n.At(0, row).H)
			if extraRing {
				pin(last-1, row, n.At(1, row).H)
			}
		}
	}
	if n := neighbors[CompassN]; n != nil && n.Size == size {
		for col := 0; col < size; col++ {
			pin(col, 0, n.At(col, last).H)
			if extraRing {
				pin(col, 1, n.At(col, last-1).H)
			}
		}
	}
	if n := neighbors[CompassS]; n != nil && n.Size == size {
		for col := 0; col < size; col++ {
			pin(col, last, n.At(col, 0).H)
			if extraRing {
				pin(col, last-1, n.At(col, 1).H)
			}
		}
	}

	if n := neighbors[CompassNW]; n != nil && n.Size == size {
		pin(0, 0, n.At(last, last).H)
	}
	if n := neighbors[CompassNE]; n != nil && n.Size == size {
		pin(last, 0, n.At(0, last).H)
	}
	if n := neighbors[CompassSW]; n != nil && n.Size == size {
		pin(0, last, n.At(last, 0).H)
	}
	if n := neighbors[CompassSE]; n != nil && n.Size == size {
		pin(last, last, n.At(0, 0).H)
	}
}

// SeedRoughness marks every vertex of patch ROUGHNESS-flagged with its
// current measured roughness as the target c[0], binding the field's
// natural texture before any relaxation touches it (spec §4.2 "Roughness
// seeding").
func SeedRoughness(patch *heightfield.Patch, scale float64) {
	for ix := range patch.Data {
		patch.Data[ix].Flags |= heightfield.FlagRoughness
		patch.Data[ix].C[0] = heightfield.Roughness(patch.Size, patch.Data, ix, scale)
	}
}
