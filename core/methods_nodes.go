// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Identity:
//   - A node is identified by its raw name: no trimming, no case folding.
//   - The empty string is a valid (if unusual) actor name.
package core

// InsertNode adds a node named name if it is absent.
//
// Returns:
//   - bool: true if a new node was created, false if the name already existed.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertNode(name string) bool {
	if _, exists := g.index[name]; exists {
		return false
	}
	g.index[name] = NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Name: name})

	return true
}

// FindNode returns the NodeID for name.
// A missing name yields (NoNode, false); FindNode never mutates the graph.
// Complexity: O(1).
func (g *Graph) FindNode(name string) (NodeID, bool) {
	id, ok := g.index[name]
	if !ok {
		return NoNode, false
	}

	return id, true
}

// HasNode reports whether a node named name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Node returns the node stored at id, or (nil, false) when id is out of range.
// The returned pointer stays owned by the graph; callers must not retain it
// across insertions.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if !g.valid(id) {
		return nil, false
	}

	return &g.nodes[id], true
}

// Name returns the actor name of id, or "" when id is out of range.
func (g *Graph) Name(id NodeID) string {
	if !g.valid(id) {
		return ""
	}

	return g.nodes[id].Name
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// valid reports whether id addresses a node in the arena.
func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
