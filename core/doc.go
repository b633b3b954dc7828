// Package core provides the in-memory actor collaboration Graph used by the
// path and connectivity algorithms.
//
// The Graph G = (V,E) is built from movie credits:
//
//   - Every distinct actor name is a Node, stored in a contiguous arena and
//     addressed by a stable NodeID.
//   - Two actors credited in the same movie are joined by an undirected
//     relation, realized as two directed Edges labeled with the movie title,
//     release year and a traversal weight.
//   - Self-loops are rejected; parallel edges (one per shared movie) are kept.
//
// Lookups never fail loudly: FindNode returns (NoNode, false) for an unknown
// name, and InsertEdge returns false when an endpoint is missing or both
// endpoints are the same actor.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(name string) bool                 // O(1), idempotent
//	FindNode(name string) (NodeID, bool)         // O(1), total
//	HasNode(name string) bool                    // O(1)
//	Node(id NodeID) (*Node, bool)                // O(1)
//	Name(id NodeID) string                       // O(1)
//
//	// Edge lifecycle
//	InsertEdge(a, b, movie string, year int, weight int64) bool          // O(1)
//	InsertDirectedEdge(a, b, movie string, year int, weight int64) bool  // O(1)
//	InsertCast(movie string, year int, cast []string, weight int64) int  // O(k²)
//	ClearEdges()                                                         // O(V)
//
//	// Query
//	Neighbors(id NodeID) []Edge  // insertion order
//	Order() int                  // node count
//	Size() int                   // directed edge count
//
// Search state:
//
//	Tree holds distance, predecessor and predecessor-edge label per NodeID
//	for one BFS or Dijkstra run. Algorithms Reset it at the top of every
//	call, so repeated runs on a growing graph never see stale state.
//
// Graph and Tree are not safe for concurrent use.
package core
