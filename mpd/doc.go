// Package mpd implements the diamond-square midpoint-displacement
// generator that seeds a Patch's initial heightfield (spec §4.1).
//
// Given a patch of side N = 2^k+1, Generate seeds the four corners to 0.5
// and then, for each halving frequency level, alternates a square stage
// (each square's center becomes the mean of its four corners plus a
// uniform perturbation) and a diamond stage (each diamond's center becomes
// the mean of its 2-4 present axis-aligned neighbors plus the same
// perturbation). The perturbation's amplitude halves with each level.
//
// Generate is deterministic given a fixed *rand.Rand, matching the
// teacher library's tsp.rngFromSeed pattern of taking an explicit RNG
// rather than touching any process-global source.
package mpd
