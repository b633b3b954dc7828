// Package costar is an actor collaboration-graph engine: actors are nodes,
// a shared movie credit is an edge.
//
// 🎬 What does costar answer?
//
//   - Who links two actors through the fewest movies (BFS), or through the
//     most recent ones (Dijkstra, edge cost 1 + (base year − release year))?
//   - For a batch of actor pairs, in which year did each pair first become
//     connected? Answered once with a growing graph plus BFS and once with
//     a union-find forest, which must agree.
//
// Under the hood the module is organized into small packages:
//
//	cast/      — TSV credit and pair readers, year-ordered movie index
//	core/      — arena graph of actors and movie-labeled edges, search Tree
//	bfs/       — breadth-first search with early exit
//	dijkstra/  — weighted shortest paths with name tie-break
//	pathfind/  — weight policy, trail formatting, batch path queries
//	uptree/    — disjoint-set forest with path compression
//	connect/   — temporal batch connectivity over both back ends
//	builder/   — deterministic synthetic catalogs
//	config/, logging/, report/, watch/ — command-line plumbing
//	cmd/costar — the `pathfinder`, `connections` and `gen` commands
//
// Quick ASCII example:
//
//	(A)──M1 2000──(B)──M2 2005──(C)
//
//	pathfinder:  (A)--[M1#@2000]-->(B)--[M2#@2005]-->(C)
//	connections: A	C	2005
//
//	go install github.com/katalvlaran/costar/cmd/costar@latest
package costar
