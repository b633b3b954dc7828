// Package uptree implements a disjoint-set (union-find) forest keyed by actor
// name.
//
// FindSet walks to the representative and applies full path compression.
// UnionSet attaches the root with the smaller size counter under the larger
// one. The size counter starts at zero and grows by one per union absorbed
// by that root, so it counts merges rather than members; it only steers
// which root survives.
//
// Unknown names never panic: lookups report ok=false and UnionSet returns
// false.
//
// Complexity: near-constant amortized per operation.
package uptree
