// Package heightfield defines the core data model of the terrain-synthesis
// pipeline: Vertex, the per-vertex constraint Flags, Patch, and the
// column-major indexing and scale conventions every other package in this
// module builds on (spec §3).
//
// Column-major layout. A patch of side N stores its N*N vertices so that
// index(c, r) = c*N + r, where c is the x column and r the y row. The four
// corners are therefore at indices 0, N-1, N*(N-1), and N*N-1. Every
// neighbor lookup in this module must use InBounds/SameColumn to avoid
// silently wrapping across a column boundary.
package heightfield
