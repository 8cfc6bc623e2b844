package heapidx

import "container/heap"

// Node is one entry in the heap: a grid position keyed by Score. index is
// maintained by the heap itself (via Swap) so DecreaseScore can restore
// the heap invariant in O(log n) without a linear search.
type Node struct {
	Col, Row int     // grid position this node represents
	Score    float64 // g + h, per spec §4.2; lower pops first
	index    int     // current slot in the backing slice; -1 if not present
}

// Heap is a binary min-heap of *Node ordered by ascending Score. It
// implements container/heap.Interface directly (Len/Less/Swap/Push/Pop)
// so heap.Fix can be used for the decrease-in-place operation DecreaseScore
// needs; Insert/Extract/DecreaseScore are the package's public surface —
// callers should never call the raw Push/Pop/Fix free functions directly.
//
// At most one *Node per grid position may be present at a time; the A*
// search is responsible for constructing exactly one Node per position and
// reusing it across DecreaseScore calls instead of inserting a duplicate,
// per spec §4.2's reopening policy.
type Heap struct {
	items []*Node
}

// New returns an empty Heap with capacity hint capHint.
func New(capHint int) *Heap {
	return &Heap{items: make([]*Node, 0, capHint)}
}

// Insert adds a new node, which must not already be present in this heap.
// Complexity: O(log n).
func (h *Heap) Insert(n *Node) {
	heap.Push(h, n)
}

// Extract removes and returns the node with the smallest Score.
// Complexity: O(log n). Panics if the heap is empty; callers must check
// Len() first (the A* loop's termination condition already does).
func (h *Heap) Extract() *Node {
	return heap.Pop(h).(*Node)
}

// DecreaseScore lowers n's score in place and restores the heap invariant.
// n must currently be present in this heap; callers track that via their
// own position-to-node map (see the node table of astar's runner), per spec §4.2's
// reopening policy: insert once, then only ever call DecreaseScore.
//
// Complexity: O(log n).
func (h *Heap) DecreaseScore(n *Node, newScore float64) {
	n.Score = newScore
	heap.Fix(h, n.index)
}

// Peek returns the node with the smallest Score without removing it, or
// nil if the heap is empty.
func (h *Heap) Peek() *Node {
	if len(h.items) == 0 {
		return nil
	}
	return h.items[0]
}

// --- container/heap.Interface ---

// Len reports the number of nodes currently in the heap.
func (h *Heap) Len() int { return len(h.items) }

func (h *Heap) Less(i, j int) bool { return h.items[i].Score < h.items[j].Score }

func (h *Heap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

// Push implements container/heap.Interface; use Insert instead of calling
// this directly.
func (h *Heap) Push(x interface{}) {
	n := x.(*Node)
	n.index = len(h.items)
	h.items = append(h.items, n)
}

// Pop implements container/heap.Interface; use Extract instead of calling
// this directly.
func (h *Heap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	h.items = old[:n-1]
	return item
}
