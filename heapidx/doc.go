// Package heapidx implements the indexed binary min-heap the A* subdivider
// uses to order grid nodes by their A* score (spec §4.3).
//
// Unlike the lazy-duplicate priority queue the teacher library's dijkstra
// package uses (push a fresh entry whenever a shorter distance is found,
// ignore stale pops), this heap tracks each node's current slot so a
// discovered-but-not-yet-popped node's score can be lowered in place via
// heap.Fix, exactly once per node ever entering the heap. This matches
// spec §4.2's "Tie-break on reopening": a node is Pushed on first
// discovery only; every subsequent improvement calls DecreaseScore.
package heapidx
