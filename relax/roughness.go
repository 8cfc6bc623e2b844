package relax

import "github.com/terrainforge/terrainforge/heightfield"

// Roughness applies the ROUGHNESS operator at vertex ix: if the measured
// roughness R differs from the target c0 by more than the threshold, it
// proposes, for each of the 8 neighbors, a move of
// (h_neighbor-h_ix)/scale*(f-1) where f = c0/R — shrinking or growing every
// slope around ix by the same factor — then subtracts the mean of all
// proposed moves (the in-bounds neighbors plus an implicit zero for the
// center; nine cells for an interior vertex) from every one of them,
// including the center's own implicit zero. That correction is what keeps
// the stencil mass-neutral: distributing the excess equally across every
// written cell, center included, rather than only the neighbors, is
// required for the sum of writes to net to zero (spec testable property 1);
// omitting the center write here would violate mass conservation by exactly
// the mean proposed move every pass.
func Roughness(size int, ix int, scale float64, c0 float64, threshold float64, weight float64, inp, out []heightfield.Vertex) bool {
	h := inp[ix].H
	r := heightfield.Roughness(size, inp, ix, scale)
	if abs64(r-c0) <= threshold || r == 0 {
		return false
	}
	f := c0/r - 1

	col, row := heightfield.Coord(size, ix)
	var move [9]float64
	var present [9]bool
	var sum float64
	cells := 1 // the center's implicit zero move

	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			nc, nr := col+dc, row+dr
			im := (dc+1)*3 + (dr + 1)
			if !heightfield.InBounds(size, nc, nr) {
				continue
			}
			nix := heightfield.Index(size, nc, nr)
			s := (inp[nix].H - h) / scale
			move[im] = s * f
			present[im] = true
			sum += move[im]
			cells++
		}
	}

	mean := sum / float64(cells)

	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			nc, nr := col+dc, row+dr
			if !heightfield.InBounds(size, nc, nr) {
				continue
			}
			im := (dc+1)*3 + (dr + 1)
			if (dc != 0 || dr != 0) && !present[im] {
				continue
			}
			nix := heightfield.Index(size, nc, nr)
			out[nix].H += (move[im] - mean) * scale * weight
		}
	}

	return true
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
