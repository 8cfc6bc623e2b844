package astar

import (
	"math"

	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
)

// PaintTube walks path and paints SLOPE (and, if cfg.UseDirSlope,
// DIR_SLOPE) constraints around it, matching spec §4.2's post-processing
// pass. scale converts cfg's default-patch-unit radii into local grid
// units via config.Scale(patch.Size).
func PaintTube(patch *heightfield.Patch, path []Node, cfg config.Params, scale float64) {
	r := cfg.PathRadius / scale
	var b float64
	if cfg.UseDirSlope {
		b = cfg.PathInfluence / scale
	}
	outer := r + b

	for _, node := range path {
		paintNode(patch, node, r, outer, b, cfg, scale)
	}
}

// paintNode paints the inner disk and, if b > 0, the outer annulus around
// a single path node.
func paintNode(patch *heightfield.Patch, node Node, r, outer, b float64, cfg config.Params, scale float64) {
	size := patch.Size
	lo := int(math.Floor(float64(node.Col) - outer))
	hi := int(math.Ceil(float64(node.Col) + outer))
	rlo := int(math.Floor(float64(node.Row) - outer))
	rhi := int(math.Ceil(float64(node.Row) + outer))

	for cc := lo; cc <= hi; cc++ {
		for rr := rlo; rr <= rhi; rr++ {
			if !heightfield.InBounds(size, cc, rr) {
				continue
			}
			dx := float64(cc - node.Col)
			dy := float64(rr - node.Row)
			dist := math.Hypot(dx, dy)
			ix := heightfield.Index(size, cc, rr)
			v := &patch.Data[ix]

			if dist <= r {
				if !v.Flags.Has(heightfield.FlagSlope) {
					v.Flags |= heightfield.FlagSlope
					v.Flags &^= heightfield.FlagDirSlope
					v.C[0] = cfg.MaxSlope
				}
				continue
			}

			if b <= 0 || dist > outer {
				continue
			}
			paintAnnulus(v, dx, dy, dist, r, b, cfg)
		}
	}
}

// paintAnnulus sets DIR_SLOPE on a single annulus vertex at offset (dx,dy)
// from its path node, dist away from it. The target gradient direction
// points from the nearest point of the inner ellipse to the vertex; its
// magnitude grows with normalized distance into the annulus. If the vertex
// already carries a smaller DIR_SLOPE magnitude from another path node,
// that smaller value wins (spec §4.2). A vertex already inside another
// node's SLOPE disk is left unchanged, so the two flags never coexist.
func paintAnnulus(v *heightfield.Vertex, dx, dy, dist, r, b float64, cfg config.Params) {
	if v.Flags.Has(heightfield.FlagSlope) {
		return
	}
	nx, ny := nearestOnEllipse(dx, dy, r, r)
	dirx, diry := dx-nx, dy-ny
	dn := math.Hypot(dirx, diry)
	if dn == 0 {
		return
	}
	dirx, diry = dirx/dn, diry/dn

	normalized := (dist - r) / b
	if normalized < 0 {
		normalized = 0
	}
	magnitude := cfg.MaxSlope + cfg.MaxSlopeFalloff*math.Sqrt(normalized)

	if v.Flags.Has(heightfield.FlagDirSlope) {
		if existing := math.Hypot(v.C[0], v.C[1]); existing <= magnitude {
			return
		}
	}

	v.Flags |= heightfield.FlagDirSlope
	v.C[0] = magnitude * dirx
	v.C[1] = magnitude * diry
}

// nearestOnEllipse returns the point on the axis-aligned ellipse centered
// at the origin with semi-axes (a,b) nearest to (px,py), via Newton's
// method on the standard "distance to ellipse" fixed-point equation (the
// Robert Nurse iteration): converges in at most 3 rounds for the
// magnitudes this module deals with, and collapses to the closed form
// r*(px,py)/|(px,py)| when a == b, which is always true for the disks and
// annuli painted here.
func nearestOnEllipse(px, py, a, b float64) (x, y float64) {
	if a == b {
		dist := math.Hypot(px, py)
		if dist == 0 {
			return a, 0
		}
		return a * px / dist, b * py / dist
	}

	t := 0.0
	for i := 0; i < 3; i++ {
		denomA := t + a*a
		denomB := t + b*b
		fx := a * px / denomA
		fy := b * py / denomB
		f := fx*fx + fy*fy - 1
		df := -2*a*a*px*px/(denomA*denomA*denomA) - 2*b*b*py*py/(denomB*denomB*denomB)
		if df == 0 {
			break
		}
		t -= f / df
	}

	x = a * a * px / (t + a*a)
	y = b * b * py / (t + b*b)
	return x, y
}
