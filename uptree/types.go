// Package uptree defines the disjoint-set forest used for incremental actor
// connectivity.
package uptree

// noParent marks a set representative.
const noParent = -1

// Option configures a Forest.
type Option func(*Forest)

// WithCapacity pre-sizes the forest for n actors. Non-positive n is ignored.
func WithCapacity(n int) Option {
	return func(f *Forest) {
		if n > 0 {
			f.capacity = n
		}
	}
}

// Forest is an arena of up-tree nodes addressed by dense int ids.
//
// parent[i] is the id of i's parent, or noParent when i is a representative.
// size[i] is meaningful only on representatives.
//
// A Forest is not safe for concurrent use.
type Forest struct {
	capacity int
	names    []string
	parent   []int
	size     []int
	index    map[string]int
	sets     int
}

// New creates an empty Forest.
func New(opts ...Option) *Forest {
	f := &Forest{}
	for _, opt := range opts {
		opt(f)
	}
	f.names = make([]string, 0, f.capacity)
	f.parent = make([]int, 0, f.capacity)
	f.size = make([]int, 0, f.capacity)
	f.index = make(map[string]int, f.capacity)

	return f
}
