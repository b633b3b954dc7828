// Package dijkstra computes weighted shortest paths over a core.Graph whose
// edge weights are non-negative.
//
// Overview:
//
//   - Dijkstra expands actors in order of increasing tentative cost from the
//     source, so each actor is finalized exactly once with its minimum cost.
//   - The full graph is explored; the destination only decides the reported
//     reachability, so one run answers distance queries for a whole component.
//   - Search state (distance, predecessor, movie/year of the reaching edge,
//     finalized flag) lives in a core.Tree that is reset on every call.
//
// Tie-breaking:
//
//	When two heap entries share the same tentative cost, the one whose actor
//	name sorts first is expanded first. A neighbor's predecessor is replaced
//	only by a strictly cheaper route, so among equal-cost paths the first one
//	discovered under that order wins, and output is identical between runs.
//
// Errors:
//
//   - ErrGraphNil:        g is nil.
//   - ErrNegativeWeight:  some edge carries a negative weight (checked up front).
//   - ErrOptionViolation: an Option was given an invalid argument.
//
// Unknown source or destination actors are not errors; the call reports
// ok=false in that case.
//
// Usage:
//
//	tree, ok, err := dijkstra.Dijkstra(g, "Kevin Bacon", "Tom Hanks")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		dst, _ := g.FindNode("Tom Hanks")
//		fmt.Println(tree.Distance(dst), tree.PathTo(dst))
//	}
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V) for the tree, plus O(E) heap entries in the worst case.
package dijkstra
