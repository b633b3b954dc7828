// File: tree.go
// Role: Per-run search state (distance, predecessor, predecessor edge label,
//       finalized flag) for BFS and Dijkstra.
//
// Invariants:
//   - Reset restores every node to (Infinity, NoNode, "", -1, false).
//   - After a completed run exactly the reached nodes have finite distance.
//   - Parent links are navigational NodeIDs, never ownership.
package core

// Step is one hop of a reconstructed path.
//
// Movie and Year label the edge from the previous Step to Node; the first
// Step of a path has Movie == "" and Year == -1.
type Step struct {
	Node  NodeID
	Movie string
	Year  int
}

// Tree stores the search state of one BFS or Dijkstra run, indexed by NodeID.
type Tree struct {
	source NodeID
	dist   []int64
	parent []NodeID
	movie  []string
	year   []int
	done   []bool
}

// NewTree allocates a Tree for a graph with n nodes, already reset.
func NewTree(n int) *Tree {
	t := &Tree{}
	t.Reset(n)

	return t
}

// Reset sizes the tree for n nodes and restores every entry to "unreached".
// Backing arrays are reused when large enough.
// Complexity: O(n).
func (t *Tree) Reset(n int) {
	if cap(t.dist) < n {
		t.dist = make([]int64, n)
		t.parent = make([]NodeID, n)
		t.movie = make([]string, n)
		t.year = make([]int, n)
		t.done = make([]bool, n)
	}
	t.dist = t.dist[:n]
	t.parent = t.parent[:n]
	t.movie = t.movie[:n]
	t.year = t.year[:n]
	t.done = t.done[:n]

	for i := 0; i < n; i++ {
		t.dist[i] = Infinity
		t.parent[i] = NoNode
		t.movie[i] = ""
		t.year[i] = -1
		t.done[i] = false
	}
	t.source = NoNode
}

// Len returns the number of nodes the tree is sized for.
func (t *Tree) Len() int { return len(t.dist) }

// Start marks src as the search root at distance 0.
func (t *Tree) Start(src NodeID) {
	if !t.valid(src) {
		return
	}
	t.source = src
	t.dist[src] = 0
}

// Source returns the root of the last run, or NoNode.
func (t *Tree) Source() NodeID { return t.source }

// Reach records that to is reached at distance dist through edge e from from.
func (t *Tree) Reach(to, from NodeID, e Edge, dist int64) {
	if !t.valid(to) {
		return
	}
	t.dist[to] = dist
	t.parent[to] = from
	t.movie[to] = e.Movie
	t.year[to] = e.Year
}

// Finalize marks id as settled (Dijkstra only).
func (t *Tree) Finalize(id NodeID) {
	if t.valid(id) {
		t.done[id] = true
	}
}

// Finalized reports whether id has been settled.
func (t *Tree) Finalized(id NodeID) bool {
	return t.valid(id) && t.done[id]
}

// Distance returns the best-known distance of id (Infinity if unreached or
// out of range).
func (t *Tree) Distance(id NodeID) int64 {
	if !t.valid(id) {
		return Infinity
	}

	return t.dist[id]
}

// Reachable reports whether id has a finite distance.
func (t *Tree) Reachable(id NodeID) bool {
	return t.Distance(id) != Infinity
}

// Parent returns the predecessor of id on the best-known path, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}

	return t.parent[id]
}

// Via returns the movie and year labeling the edge from Parent(id) to id.
// Unreached nodes and the source report ("", -1).
func (t *Tree) Via(id NodeID) (string, int) {
	if !t.valid(id) {
		return "", -1
	}

	return t.movie[id], t.year[id]
}

// PathTo reconstructs the path from the source to dst by walking predecessor
// links, returned start-to-end. It returns nil if dst was not reached.
//
// Complexity: O(L) for a path of L steps.
func (t *Tree) PathTo(dst NodeID) []Step {
	if !t.Reachable(dst) {
		return nil
	}

	// build reversed path
	var path []Step
	for cur := dst; cur != NoNode; cur = t.parent[cur] {
		path = append(path, Step{Node: cur, Movie: t.movie[cur], Year: t.year[cur]})
		if len(path) > len(t.dist) {
			return nil // parent cycle
		}
	}
	// reverse to get source → dst
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.dist)
}
