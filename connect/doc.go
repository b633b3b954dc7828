// Package connect answers "in which year did these two actors first become
// connected?" for a batch of pairs in one pass over the movie timeline.
//
// The pass walks movies in year order and grows a connectivity structure one
// movie at a time. Connectivity is only checked at year boundaries, and a
// pair found connected there is answered with the year that just ended.
// Two interchangeable back ends implement the structure:
//
//   - "bfs":   core.Graph plus a BFS per check (GraphBackend).
//   - "ufind": uptree.Forest plus representative comparison (UpTreeBackend).
//
// Both must produce identical answers for identical input; pairs that are
// never connected report Sentinel (9999).
package connect
