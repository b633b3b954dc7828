// File: methods_edges.go
// Role: Edge insertion & queries: InsertEdge, InsertDirectedEdge, InsertCast,
//       Neighbors, Size, ClearEdges.
//
// Rules:
//   - An edge is inserted only between two existing, distinct nodes.
//   - Parallel edges are allowed: two actors sharing several movies get one
//     edge per movie.
package core

// InsertEdge inserts the undirected relation a–b as the two directed edges
// a→b and b→a, labeled with movie, year and weight.
//
// Returns false if either endpoint is missing or a == b. A failing direction
// never mutates the graph.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(a, b, movie string, year int, weight int64) bool {
	if !g.InsertDirectedEdge(a, b, movie, year, weight) {
		return false
	}

	return g.InsertDirectedEdge(b, a, movie, year, weight)
}

// InsertDirectedEdge inserts the single edge a→b.
// Returns false on a self-loop (a == b) or when either endpoint is missing.
func (g *Graph) InsertDirectedEdge(a, b, movie string, year int, weight int64) bool {
	if a == b {
		return false
	}
	from, ok := g.index[a]
	if !ok {
		return false
	}
	to, ok := g.index[b]
	if !ok {
		return false
	}

	g.nodes[from].Edges = append(g.nodes[from].Edges, Edge{To: to, Movie: movie, Year: year, Weight: weight})
	g.size++

	return true
}

// InsertCast inserts the clique over a movie's cast list.
//
// Every pair (i, j) with 0 ≤ i ≤ j < len(cast) is offered to InsertEdge once,
// so self pairs (and repeated credits of the same actor) are rejected by the
// self-loop rule while every other unordered pair is touched exactly once.
// A rejected pair never aborts the rest of the clique.
//
// Returns the number of undirected edges inserted.
// Complexity: O(k²) for k = len(cast).
func (g *Graph) InsertCast(movie string, year int, cast []string, weight int64) int {
	inserted := 0
	for i := 0; i < len(cast); i++ {
		for j := i; j < len(cast); j++ {
			if g.InsertEdge(cast[i], cast[j], movie, year, weight) {
				inserted++
			}
		}
	}

	return inserted
}

// Neighbors returns the outgoing edges of id in insertion order, or nil when
// id is out of range. The slice is owned by the graph.
func (g *Graph) Neighbors(id NodeID) []Edge {
	if !g.valid(id) {
		return nil
	}

	return g.nodes[id].Edges
}

// Size returns the number of directed edges (twice the undirected count).
func (g *Graph) Size() int { return g.size }

// ClearEdges drops every edge while keeping all nodes and their NodeIDs.
func (g *Graph) ClearEdges() {
	for i := range g.nodes {
		g.nodes[i].Edges = nil
	}
	g.size = 0
}
