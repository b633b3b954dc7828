// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// actor graphs.
//
// Dijkstra computes the minimum-cost path from a single source actor to every
// reachable actor in a graph with non-negative edge weights. It processes
// nodes in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries with equal distance pop in ascending actor-name order, which makes
//     the chosen predecessor deterministic when several optimal paths exist.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/costar/core"
)

// Dijkstra computes shortest distances from src over g and reports whether
// dst is reachable.
//
// Returns:
//
//   - tree: the search state; tree.Distance(v) is the minimum cost to v
//     (core.Infinity if unreachable) and tree.PathTo(v) the optimal path.
//   - ok:   true iff dst has a finite distance. src == dst is reachable at 0.
//     Unknown src or dst is unreachable, not an error.
//   - err:  ErrGraphNil, ErrOptionViolation or ErrNegativeWeight.
//
// Every node's state is reset before the run.
func Dijkstra(g *core.Graph, src, dst string, opts ...Option) (*core.Tree, bool, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, false, ErrGraphNil
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, false, cfg.err
	}

	// 3) Pre-scan all edges to detect negative weights.
	for id := 0; id < g.Order(); id++ {
		for _, e := range g.Neighbors(core.NodeID(id)) {
			if e.Weight < 0 {
				return nil, false, fmt.Errorf("%w: edge %s→%s weight=%d",
					ErrNegativeWeight, g.Name(core.NodeID(id)), g.Name(e.To), e.Weight)
			}
		}
	}

	// 4) Reset (or allocate) the search state.
	tree := cfg.Tree
	if tree == nil {
		tree = core.NewTree(g.Order())
	} else {
		tree.Reset(g.Order())
	}

	srcID, ok := g.FindNode(src)
	if !ok {
		return tree, false, nil
	}
	dstID, ok := g.FindNode(dst)

	// 5) Run the main loop from src. Unknown dst still gets a full search
	//    so that tree reflects src's component.
	r := &runner{
		g:    g,
		tree: tree,
		pq:   make(nodePQ, 0, 16),
	}
	r.init(srcID)
	r.process()

	if !ok {
		return tree, false, nil
	}

	return tree, tree.Reachable(dstID), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *core.Graph // The input graph; read-only within Dijkstra.
	tree *core.Tree  // Distances, predecessors, finalized flags.
	pq   nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init(src core.NodeID) {
	r.tree.Start(src)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, name: r.g.Name(src), dist: 0})
}

// process repeatedly extracts the closest unsettled node and relaxes its
// outgoing edges until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries for nodes already finalized.
		if r.tree.Finalized(item.id) {
			continue
		}
		r.tree.Finalize(item.id)
		r.relax(item.id)
	}
}

// relax improves the distance of every not-yet-finalized neighbor of u that
// is strictly cheaper to reach through u.
func (r *runner) relax(u core.NodeID) {
	du := r.tree.Distance(u)
	for _, e := range r.g.Neighbors(u) {
		if r.tree.Finalized(e.To) {
			continue
		}
		newDist := du + e.Weight
		// “<” rather than “≤”: equal-cost alternatives keep the first predecessor.
		if newDist >= r.tree.Distance(e.To) {
			continue
		}
		r.tree.Reach(e.To, u, e, newDist)
		heap.Push(&r.pq, &nodeItem{id: e.To, name: r.g.Name(e.To), dist: newDist})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID // node ID
	name string      // actor name, tie-break key
	dist int64       // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by name.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist; equal dist pops the lexicographically smaller name first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].name < pq[j].name
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
