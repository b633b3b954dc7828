// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances and predecessor links.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a source actor.
//   - Stop as soon as the destination actor is reached.
//   - Record, for every reached node, its distance, predecessor, and the
//     movie/year of the edge it was reached through (core.Tree).
//
// Reset invariant
//
//	The tree is reset to "unreached" at the top of every call (including a
//	reused WithTree tree), so BFS may be called again and again on a graph
//	that keeps growing between calls.
//
// Determinism
//
//	Neighbors are scanned in edge insertion order, so for a fixed input the
//	recorded predecessors, and hence the reconstructed path, are reproducible.
//	Any shortest path is minimal in hop count regardless of that order.
//
// Complexity (V = nodes, E = directed edges)
//
//   - Time:   O(V + E), plus O(V) for the reset
//   - Memory: O(V)
//
// Usage
//
//	tree, ok, err := bfs.BFS(g, "Kevin Bacon", "Tom Hanks")
//	if err != nil {
//		// ErrGraphNil or ErrOptionViolation
//	}
//	if ok {
//		path := tree.PathTo(dstID)
//	}
//
// Options
//
//   - WithTree(t):     reuse t as search state (reset on entry).
//   - WithOnVisit(fn): hook called for every dequeued node.
package bfs
