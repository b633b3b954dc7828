package uptree

// InsertNode adds name as a singleton set. It returns false if name already
// exists, leaving its set untouched.
func (f *Forest) InsertNode(name string) bool {
	if _, ok := f.index[name]; ok {
		return false
	}
	f.index[name] = len(f.names)
	f.names = append(f.names, name)
	f.parent = append(f.parent, noParent)
	f.size = append(f.size, 0)
	f.sets++

	return true
}

// FindNode returns the id of name without touching the forest.
func (f *Forest) FindNode(name string) (int, bool) {
	id, ok := f.index[name]

	return id, ok
}

// find returns the representative of id and points every node on the way
// directly at it.
func (f *Forest) find(id int) int {
	root := id
	for f.parent[root] != noParent {
		root = f.parent[root]
	}
	// full path compression
	for id != root {
		next := f.parent[id]
		f.parent[id] = root
		id = next
	}

	return root
}

// FindSet returns the representative name of name's set.
// Every node on the traversed path is re-parented to the representative.
func (f *Forest) FindSet(name string) (string, bool) {
	id, ok := f.index[name]
	if !ok {
		return "", false
	}

	return f.names[f.find(id)], true
}

// UnionSet merges the sets of a and b.
//
// Returns false if either name is unknown and true otherwise, including when
// both already share a set. The root with the strictly larger size absorbs
// the other; on a tie a's root goes under b's. The survivor's size grows by
// one and the absorbed root's size drops to zero.
func (f *Forest) UnionSet(a, b string) bool {
	ia, ok := f.index[a]
	if !ok {
		return false
	}
	ib, ok := f.index[b]
	if !ok {
		return false
	}

	ra, rb := f.find(ia), f.find(ib)
	if ra == rb {
		return true
	}
	if f.size[ra] > f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[ra] = rb
	f.size[ra] = 0
	f.size[rb]++
	f.sets--

	return true
}

// UnionCast unions every pair (i, j), 0 ≤ i ≤ j < len(cast), like a clique
// insert. Unknown names are skipped pair by pair. It returns the number of
// unions that merged two distinct sets.
func (f *Forest) UnionCast(cast []string) int {
	merged := 0
	for i := 0; i < len(cast); i++ {
		for j := i; j < len(cast); j++ {
			before := f.sets
			f.UnionSet(cast[i], cast[j])
			if f.sets < before {
				merged++
			}
		}
	}

	return merged
}

// Connected reports whether a and b are both known and share a set.
func (f *Forest) Connected(a, b string) bool {
	ra, ok := f.FindSet(a)
	if !ok {
		return false
	}
	rb, ok := f.FindSet(b)

	return ok && ra == rb
}

// Size returns the size counter stored on name's representative.
func (f *Forest) Size(name string) (int, bool) {
	id, ok := f.index[name]
	if !ok {
		return 0, false
	}

	return f.size[f.find(id)], true
}

// Len returns the number of nodes.
func (f *Forest) Len() int { return len(f.names) }

// Sets returns the number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Reset isolates every node into its own set, keeping all names.
func (f *Forest) Reset() {
	for i := range f.parent {
		f.parent[i] = noParent
		f.size[i] = 0
	}
	f.sets = len(f.names)
}
