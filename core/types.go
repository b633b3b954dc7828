// SPDX-License-Identifier: MIT
//
// Package core defines the actor collaboration Graph, its Node and Edge
// types, and the per-run query state (Tree) shared by the path algorithms.
//
// This file declares NodeID, Node, Edge, Graph, GraphOption, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrGraphNil - a nil *Graph was passed to an algorithm.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates that an algorithm received a nil graph pointer.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Infinity is the distance of a node not (yet) reached by a search.
const Infinity int64 = math.MaxInt64

// NoNode is the NodeID used for "no predecessor" and failed lookups.
const NoNode NodeID = -1

// NodeID is a stable index into the Graph's node arena.
// IDs are assigned densely in insertion order starting at 0 and never reused.
type NodeID int

// Edge is one directed half of an actor relation.
//
// An undirected collaboration is stored as two Edges (a→b and b→a) that carry
// the same Movie, Year and Weight.
type Edge struct {
	// To is the target node.
	To NodeID

	// Movie is the title of the movie that created this relation.
	Movie string

	// Year is the release year of Movie.
	Year int

	// Weight is the traversal cost of the edge (1 in unweighted mode).
	Weight int64
}

// Node is an actor vertex owned by exactly one Graph.
type Node struct {
	// Name is the actor name exactly as it appeared in the input.
	Name string

	// Edges is the outgoing adjacency list in insertion order.
	Edges []Edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node arena and name index for n actors.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory actor graph.
//
// Nodes live in a contiguous arena addressed by NodeID; index maps the raw
// actor name to its NodeID. Edges reference nodes of the same Graph only.
// Graph is not safe for concurrent use.
type Graph struct {
	capacity int

	nodes []Node            // arena, NodeID → Node
	index map[string]NodeID // actor name → NodeID
	size  int               // number of directed edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make([]Node, 0, g.capacity)
	g.index = make(map[string]NodeID, g.capacity)

	return g
}
