package connect

import (
	"fmt"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/core"
	"github.com/katalvlaran/costar/uptree"
)

// GraphBackend answers connectivity with a BFS per check over a growing
// unit-weight graph.
type GraphBackend struct {
	g    *core.Graph
	tree *core.Tree
}

// NewGraphBackend creates an edgeless graph over every actor of ix.
func NewGraphBackend(ix *cast.Index) *GraphBackend {
	actors := ix.Actors()
	g := core.NewGraph(core.WithCapacity(len(actors)))
	for _, a := range actors {
		g.InsertNode(a)
	}

	return &GraphBackend{g: g, tree: core.NewTree(g.Order())}
}

// Name implements Backend.
func (b *GraphBackend) Name() string { return AlgBFS }

// Reset implements Backend by dropping every edge.
func (b *GraphBackend) Reset() { b.g.ClearEdges() }

// Connect implements Backend by inserting the movie's clique.
func (b *GraphBackend) Connect(m cast.Movie) {
	b.g.InsertCast(m.Title, m.Year, m.Cast, 1)
}

// Connected implements Backend.
func (b *GraphBackend) Connected(src, dst string) bool {
	_, ok, err := bfs.BFS(b.g, src, dst, bfs.WithTree(b.tree))

	return err == nil && ok
}

// Graph exposes the underlying graph.
func (b *GraphBackend) Graph() *core.Graph { return b.g }

// UpTreeBackend answers connectivity by comparing set representatives.
type UpTreeBackend struct {
	f *uptree.Forest
}

// NewUpTreeBackend creates a forest of singleton sets, one per actor of ix.
func NewUpTreeBackend(ix *cast.Index) *UpTreeBackend {
	actors := ix.Actors()
	f := uptree.New(uptree.WithCapacity(len(actors)))
	for _, a := range actors {
		f.InsertNode(a)
	}

	return &UpTreeBackend{f: f}
}

// Name implements Backend.
func (b *UpTreeBackend) Name() string { return AlgUFind }

// Reset implements Backend by isolating every actor.
func (b *UpTreeBackend) Reset() { b.f.Reset() }

// Connect implements Backend by unioning the movie's cast.
func (b *UpTreeBackend) Connect(m cast.Movie) { b.f.UnionCast(m.Cast) }

// Connected implements Backend.
func (b *UpTreeBackend) Connected(src, dst string) bool { return b.f.Connected(src, dst) }

// Forest exposes the underlying forest.
func (b *UpTreeBackend) Forest() *uptree.Forest { return b.f }

// CheckAlgorithm reports ErrUnknownAlgorithm unless name is "bfs" or "ufind".
func CheckAlgorithm(name string) error {
	if name != AlgBFS && name != AlgUFind {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return nil
}

// NewBackend returns the back end registered under name.
func NewBackend(name string, ix *cast.Index) (Backend, error) {
	if err := CheckAlgorithm(name); err != nil {
		return nil, err
	}
	if name == AlgBFS {
		return NewGraphBackend(ix), nil
	}

	return NewUpTreeBackend(ix), nil
}
