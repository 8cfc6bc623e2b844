// Package astar implements the A* path subdivider: given a heightfield
// patch and two endpoints, it finds the minimum-cost 8-connected path
// between them, where an edge's cost grows with the terrain slope it
// crosses, then paints SLOPE and (optionally) DIR_SLOPE constraints along
// that path so a later relax pass can carve a traversable tube around it
// (spec §4.2 "A* subdivider").
//
// Complexity:
//
//   - Time:  O(N^2 log N) worst case over an N x N patch — each of the N^2
//     vertices is extracted from the open set at most once, and each
//     extraction may decrease-key up to 8 neighbors.
//   - Space: O(N^2) for the per-vertex cost/predecessor records and the
//     indexed heap.
//
// Unlike the teacher library's dijkstra package, which uses a lazy
// "push-duplicate, skip-stale-on-pop" priority queue, astar uses
// heapidx.Heap's true decrease-key: an improved vertex is never pushed
// twice, eliminating both the O(E) duplicate-entry space inflation and the
// need for a visited-skip check on every pop.
package astar
