package mpd

import (
	"fmt"
	"math/rand"

	"github.com/terrainforge/terrainforge/heightfield"
)

// Generate fills data[i].H in place for a patch of the given size using
// the diamond-square algorithm. size must be of the form 2^k+1 (spec §4.1
// failure mode, invariant 1); data must have length size*size.
//
// Corners are seeded to 0.5 exactly and are never revisited by either the
// square or diamond stage (spec testable property 3), since both stages
// only ever write a cell strictly inside the current step's square/diamond
// interior.
//
// Complexity: O(size^2) total across all frequency levels.
func Generate(size int, data []heightfield.Vertex, rng *rand.Rand) error {
	if !heightfield.IsValidMPDSize(size) {
		return fmt.Errorf("mpd: %w: size=%d", heightfield.ErrInvalidSize, size)
	}
	if len(data) != size*size {
		return fmt.Errorf("mpd: %w: len=%d want=%d", heightfield.ErrSizeMismatch, len(data), size*size)
	}

	tl, bl, tr, br := heightfield.Corners(size)
	data[tl].H = 0.5
	data[bl].H = 0.5
	data[tr].H = 0.5
	data[br].H = 0.5

	scale := 1.0
	for step := size - 1; step > 1; step /= 2 {
		squareStage(size, data, step, scale, rng)
		diamondStage(size, data, step, scale, rng)
		scale /= 2
	}

	return nil
}

// perturb returns a uniform random value in [-scale/2, +scale/2].
func perturb(scale float64, rng *rand.Rand) float64 {
	return scale*rng.Float64() - scale/2
}

// squareStage sets each step-sized square's center to the mean of its four
// corners plus a bounded random perturbation.
func squareStage(size int, data []heightfield.Vertex, step int, scale float64, rng *rand.Rand) {
	half := step / 2
	for c := 0; c < size-1; c += step {
		for r := 0; r < size-1; r += step {
			tl := heightfield.Index(size, c, r)
			bl := heightfield.Index(size, c, r+step)
			tr := heightfield.Index(size, c+step, r)
			br := heightfield.Index(size, c+step, r+step)
			cent := heightfield.Index(size, c+half, r+half)

			sum := data[tl].H + data[bl].H + data[tr].H + data[br].H
			data[cent].H = sum/4 + perturb(scale, rng)
		}
	}
}

// diamondStage sets each diamond's center to the mean of its present
// axis-aligned neighbors plus a bounded random perturbation. Diamond
// centers form a checkerboard offset by half a step relative to the square
// centers; the row offset alternates every half-step column advance,
// mirroring the original C implementation's `i ^= 1` toggling exactly.
func diamondStage(size int, data []heightfield.Vertex, step int, scale float64, rng *rand.Rand) {
	half := step / 2
	toggle := 0
	for c := 0; c < size; c, toggle = c+half, toggle^1 {
		rowStart := half
		if toggle != 0 {
			rowStart = 0
		}
		for r := rowStart; r < size; r += step {
			cent := heightfield.Index(size, c, r)

			var sum float64
			var n int
			if c > 0 {
				sum += data[heightfield.Index(size, c-half, r)].H
				n++
			}
			if r > 0 {
				sum += data[heightfield.Index(size, c, r-half)].H
				n++
			}
			if c < size-1 {
				sum += data[heightfield.Index(size, c+half, r)].H
				n++
			}
			if r < size-1 {
				sum += data[heightfield.Index(size, c, r+half)].H
				n++
			}

			data[cent].H = sum/float64(n) + perturb(scale, rng)
		}
	}
}
