// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances and predecessor links in a core.Tree.
//
// BFS explores nodes in increasing distance from a source node and stops
// as soon as the destination is reached.
package bfs

import (
	"github.com/katalvlaran/costar/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	tree  *core.Tree
	dst   core.NodeID
	queue []core.NodeID
	head  int
}

// BFS runs breadth-first search on g from src towards dst.
//
// Every node's distance, predecessor and predecessor edge label are reset
// before the search, so repeated calls on a graph that has grown in between
// never observe state from an earlier call.
//
// Returns:
//   - *core.Tree: the search state; Distance(dst) is the hop count.
//   - bool: true iff dst is reachable from src. src == dst is reachable at
//     distance 0. An unknown src or dst is simply unreachable.
//   - error: ErrGraphNil or ErrOptionViolation only.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, src, dst string, opts ...Option) (*core.Tree, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, false, o.err
	}

	tree := o.Tree
	if tree == nil {
		tree = core.NewTree(g.Order())
	} else {
		tree.Reset(g.Order())
	}

	srcID, ok := g.FindNode(src)
	if !ok {
		return tree, false, nil
	}
	tree.Start(srcID)

	dstID, ok := g.FindNode(dst)
	if !ok {
		return tree, false, nil
	}
	if srcID == dstID {
		o.OnVisit(srcID, 0)
		return tree, true, nil
	}

	w := &walker{
		graph: g,
		opts:  o,
		tree:  tree,
		dst:   dstID,
		queue: make([]core.NodeID, 0, 16),
	}
	w.queue = append(w.queue, srcID)

	return tree, w.loop(), nil
}

// loop processes the queue until it is empty or dst has been reached.
func (w *walker) loop() bool {
	for w.head < len(w.queue) {
		curr := w.dequeue()
		depth := w.tree.Distance(curr)
		w.opts.OnVisit(curr, depth)

		if w.enqueueNeighbors(curr, depth) {
			return true
		}
	}

	return false
}

// dequeue pops the first queued node.
func (w *walker) dequeue() core.NodeID {
	id := w.queue[w.head]
	w.head++

	return id
}

// enqueueNeighbors records and enqueues every neighbor of curr not reached
// yet. It reports true the moment dst is reached.
func (w *walker) enqueueNeighbors(curr core.NodeID, depth int64) bool {
	next := depth + 1
	for _, e := range w.graph.Neighbors(curr) {
		// first time seen?
		if w.tree.Distance(e.To) <= next {
			continue
		}
		w.tree.Reach(e.To, curr, e, next)
		if e.To == w.dst {
			return true
		}
		w.queue = append(w.queue, e.To)
	}

	return false
}
