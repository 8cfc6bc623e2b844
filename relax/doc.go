// Package relax implements the four local relaxation operators — SLOPE,
// DIR_SLOPE, ROUGHNESS, POSITION — and the double-buffered solver step that
// applies them across a whole patch (spec §4.4, the heart of the pipeline).
//
// Every operator reads only from an input buffer and writes only to an
// output buffer; under ModeParallel these are different slices (a
// snapshot of the previous pass versus the live data), giving a Jacobi
// update where per-vertex writes commute by construction. Under
// ModeSequential they alias the same slice, giving a Gauss-Seidel update.
// POSITION always runs last, on its own sweep, and is the only operator
// allowed to change total mass (spec invariant 4, testable property 1).
package relax
