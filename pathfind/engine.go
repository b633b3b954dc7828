package pathfind

import (
	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/core"
	"github.com/katalvlaran/costar/dijkstra"
)

// Build creates a graph holding every actor of ix and, for every movie, the
// clique over its cast weighted by Weight(m, year, base).
func Build(ix *cast.Index, m Mode, base int) *core.Graph {
	actors := ix.Actors()
	g := core.NewGraph(core.WithCapacity(len(actors)))
	for _, a := range actors {
		g.InsertNode(a)
	}
	for _, mv := range ix.Movies() {
		g.InsertCast(mv.Title, mv.Year, mv.Cast, Weight(m, mv.Year, base))
	}

	return g
}

// Engine answers path queries against one graph, reusing a single search
// tree between queries.
type Engine struct {
	g    *core.Graph
	mode Mode
	tree *core.Tree

	queries int
	found   int
}

// NewEngine returns an Engine searching g with mode m.
func NewEngine(g *core.Graph, m Mode) *Engine {
	return &Engine{g: g, mode: m, tree: core.NewTree(g.Order())}
}

// Mode returns the search mode of e.
func (e *Engine) Mode() Mode { return e.mode }

// Graph returns the graph e searches.
func (e *Engine) Graph() *core.Graph { return e.g }

// ActorPath searches from src to dst and returns the formatted trail.
func (e *Engine) ActorPath(src, dst string) (string, error) {
	var (
		ok  bool
		err error
	)
	switch e.mode {
	case Weighted:
		_, ok, err = dijkstra.Dijkstra(e.g, src, dst, dijkstra.WithTree(e.tree))
	default:
		_, ok, err = bfs.BFS(e.g, src, dst, bfs.WithTree(e.tree))
	}
	if err != nil {
		return "", err
	}
	e.queries++
	if ok {
		e.found++
	}

	return Format(e.g, e.tree, src, dst, ok), nil
}

// Counts returns how many queries were answered and how many found a path.
func (e *Engine) Counts() (queries, found int) { return e.queries, e.found }

// Run answers every pair in order, one trail per pair.
func (e *Engine) Run(pairs []cast.Pair) ([]string, error) {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		line, err := e.ActorPath(p.Src, p.Dst)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, nil
}
