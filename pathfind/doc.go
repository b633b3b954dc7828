// Package pathfind answers actor-to-actor path queries and renders them as
// movie trails.
//
// Two modes are offered. Unweighted runs BFS and minimizes the number of
// shared movies. Weighted runs Dijkstra with edge cost 1 + (base − year),
// favoring recent collaborations. Build turns a cast.Index into the graph
// for either mode; Engine runs the queries and Format prints each result.
package pathfind
