package relax

import "github.com/terrainforge/terrainforge/heightfield"

// quadrant picks out one of the four (x-neighbor, y-neighbor) pairs rotated
// clockwise around ix, matching the original relaxation kernel's dir 0..3
// exactly: dir 0 -> (E,S), dir 1 -> (N,E), dir 2 -> (W,N), dir 3 -> (S,W).
// Operating over all four in turn touches every one of a vertex's four
// axis-aligned neighbors exactly twice per pass (each neighbor belongs to
// two adjacent quadrants).
func quadrant(size, ix, dir int) (ixx, ixy int, ok bool) {
	var dxx, dxy int
	switch dir {
	case 0:
		dxx, dxy = size, 1
	case 1:
		dxx, dxy = -1, size
	case 2:
		dxx, dxy = -size, -1
	default:
		dxx, dxy = 1, -size
	}

	ixx = ix + dxx
	ixy = ix + dxy

	n := size * size
	if ixx < 0 || ixx >= n || ixy < 0 || ixy >= n {
		return 0, 0, false
	}

	// Only the ±1 (row-changing) member of the pair must stay within the
	// same column as ix; the ±size (column-changing) member is expected to
	// land in a different column.
	rowNeighbor := ixy
	if dir == 1 || dir == 3 {
		rowNeighbor = ixx
	}
	if !heightfield.SameColumn(size, ix, rowNeighbor) {
		return 0, 0, false
	}

	return ixx, ixy, true
}

// Quadrant exposes quadrant's neighbor pairing to other packages (stats
// needs the same pairing to re-derive per-quadrant slopes when checking
// SLOPE/DIR_SLOPE satisfaction).
func Quadrant(size, ix, dir int) (ixx, ixy int, ok bool) {
	return quadrant(size, ix, dir)
}
