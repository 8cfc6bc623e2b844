package astar

import (
	"fmt"
	"math"

	"github.com/terrainforge/terrainforge/heapidx"
	"github.com/terrainforge/terrainforge/heightfield"
)

// neighborOffsets lists the eight 8-connected (dcol,drow) steps and their
// Euclidean distance, orthogonal steps first, matching gridgraph's Conn8
// ordering convention.
var neighborOffsets = [8]struct {
	dc, dr int
	dist   float64
}{
	{0, -1, 1}, {0, 1, 1}, {-1, 0, 1}, {1, 0, 1},
	{-1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {1, 1, math.Sqrt2},
}

// Search computes the minimum-cost 8-connected path from start to goal
// across patch, where each edge's cost grows with the slope it crosses
// (spec §4.2). Returns the path as an ordered slice of Node from start to
// goal inclusive.
//
// Preconditions and validation (in order):
//  1. start and goal must differ (ErrSameEndpoint).
//  2. Both must lie within the patch (ErrOutOfBounds).
//
// Complexity: O(N^2 log N) time, O(N^2) space over an N x N patch.
func Search(patch *heightfield.Patch, start, goal Node, opts ...Option) ([]Node, error) {
	// 1) Validate endpoints.
	if start == goal {
		return nil, ErrSameEndpoint
	}
	size := patch.Size
	if !heightfield.InBounds(size, start.Col, start.Row) {
		return nil, fmt.Errorf("%w: start=%+v", ErrOutOfBounds, start)
	}
	if !heightfield.InBounds(size, goal.Col, goal.Row) {
		return nil, fmt.Errorf("%w: goal=%+v", ErrOutOfBounds, goal)
	}

	// 2) Build and apply options.
	cfg := newOptions(opts)

	// 3) Initialize the runner's per-vertex records and open set.
	r := &runner{
		patch: patch,
		cfg:   cfg,
		goal:  goal,
		cost:  make([]float64, size*size),
		prev:  make([]int, size*size),
		state: make([]uint8, size*size),
		node:  make([]*heapidx.Node, size*size),
		open:  heapidx.New(size * 4),
	}
	r.init(start)

	// 4) Run the main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Reconstruct the path from goal back to start.
	goalIx := heightfield.Index(size, goal.Col, goal.Row)
	if r.state[goalIx] != stateClosed {
		return nil, ErrNoPath
	}
	return r.reconstruct(start, goal), nil
}

const (
	stateUnseen uint8 = iota
	stateOpen
	stateClosed
)

// runner holds the mutable state for a single Search execution.
type runner struct {
	patch *heightfield.Patch
	cfg   Options
	goal  Node

	cost  []float64        // g-score: best known cost from start
	prev  []int            // predecessor linear index, -1 for start
	state []uint8          // stateUnseen / stateOpen / stateClosed
	node  []*heapidx.Node  // live heap node for vertices currently open
	open  *heapidx.Heap
}

func (r *runner) init(start Node) {
	size := r.patch.Size
	startIx := heightfield.Index(size, start.Col, start.Row)
	for i := range r.prev {
		r.prev[i] = -1
		r.cost[i] = math.Inf(1)
	}
	r.cost[startIx] = 0
	n := &heapidx.Node{Col: start.Col, Row: start.Row, Score: euclid(start.Col, start.Row, r.goal.Col, r.goal.Row, r.cfg.Scale)}
	r.open.Insert(n)
	r.node[startIx] = n
	r.state[startIx] = stateOpen
}

// process is A*'s main loop: repeatedly extract the open vertex with the
// lowest f-score (g + heuristic) and relax its 8 neighbors.
func (r *runner) process() error {
	size := r.patch.Size
	for r.open.Len() > 0 {
		n := r.open.Extract()
		ix := heightfield.Index(size, n.Col, n.Row)
		if r.state[ix] == stateClosed {
			continue
		}
		r.state[ix] = stateClosed
		r.node[ix] = nil

		if n.Col == r.goal.Col && n.Row == r.goal.Row {
			return nil
		}

		r.relax(ix, n.Col, n.Row)
	}
	return nil
}

// relax examines each of ix's 8 neighbors and, if a strictly cheaper path
// through ix is found, updates its cost/predecessor and either decreases
// its existing open-set key or inserts it fresh.
func (r *runner) relax(ix, col, row int) {
	size := r.patch.Size
	scale := r.cfg.Scale
	h := r.patch.Data[ix].H

	for _, off := range neighborOffsets {
		nc, nr := col+off.dc, row+off.dr
		if !heightfield.InBounds(size, nc, nr) {
			continue
		}
		nix := heightfield.Index(size, nc, nr)
		if r.state[nix] == stateClosed {
			continue
		}

		slope := math.Abs(r.patch.Data[nix].H-h) / (off.dist * scale)
		edgeCost := off.dist * scale * (1 + math.Pow(slope, r.cfg.CostPow)*r.cfg.CostLin)
		newCost := r.cost[ix] + edgeCost

		if newCost >= r.cost[nix] {
			continue
		}
		r.cost[nix] = newCost
		r.prev[nix] = ix

		score := newCost + euclid(nc, nr, r.goal.Col, r.goal.Row, r.cfg.Scale)
		if r.state[nix] == stateOpen {
			r.open.DecreaseScore(r.node[nix], score)
		} else {
			n := &heapidx.Node{Col: nc, Row: nr, Score: score}
			r.open.Insert(n)
			r.node[nix] = n
			r.state[nix] = stateOpen
		}
	}
}

// reconstruct walks prev[] back from goal to start and reverses it into
// start-to-goal order.
func (r *runner) reconstruct(start, goal Node) []Node {
	size := r.patch.Size
	var rev []Node
	ix := heightfield.Index(size, goal.Col, goal.Row)
	for {
		col, row := heightfield.Coord(size, ix)
		rev = append(rev, Node{Col: col, Row: row})
		if col == start.Col && row == start.Row {
			break
		}
		ix = r.prev[ix]
	}

	path := make([]Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
