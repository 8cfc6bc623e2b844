// Package modifier implements the patch modifier queue and driver: the
// cooperative, incremental execution model that lets a host amortize a
// patch's generation, subdivision, relaxation, and output work across many
// small calls instead of one long blocking one (spec §4.5).
//
// Each Operator is a tagged variant carrying its own static parameters and
// its own done/iterations state, matching the seven operator kinds spec §9
// enumerates: MPD, FromFile, Subdivide, RelaxSlope1D, Relax, Flatten, and
// Output. Go interfaces satisfy the spec's "no function pointers exposed
// across module boundaries" design note more simply than a hand-rolled
// tagged union would — that note targets languages without a stable
// dynamic-dispatch ABI across compilation units, a concern Go's interface
// values do not have.
package modifier
