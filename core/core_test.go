// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/core"
)

// Common actor names used across core tests.
const (
	ActorA = "A"
	ActorB = "B"
	ActorC = "C"
	ActorZ = "Z"

	Movie1 = "M1"
	Movie2 = "M2"
)

// buildChain returns A–B (M1, 2000) and B–C (M2, 2005), unit weights.
func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []string{ActorA, ActorB, ActorC} {
		require.True(t, g.InsertNode(n))
	}
	require.True(t, g.InsertEdge(ActorA, ActorB, Movie1, 2000, 1))
	require.True(t, g.InsertEdge(ActorB, ActorC, Movie2, 2005, 1))

	return g
}

func TestGraph_InsertFindNode(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))

	assert.True(t, g.InsertNode(ActorA), "first insert creates the node")
	assert.False(t, g.InsertNode(ActorA), "duplicate insert is a no-op")
	assert.Equal(t, 1, g.Order())

	id, ok := g.FindNode(ActorA)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(0), id)
	assert.Equal(t, ActorA, g.Name(id))

	// no trimming, no case folding
	for _, name := range []string{"a", " A", "A ", ActorZ} {
		id, ok := g.FindNode(name)
		assert.False(t, ok, "FindNode(%q)", name)
		assert.Equal(t, core.NoNode, id)
	}
	assert.Equal(t, 1, g.Order(), "FindNode must not mutate")
}

func TestGraph_EmptyNameIsRaw(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.HasNode(""))
	assert.True(t, g.InsertNode(""))
	assert.True(t, g.HasNode(""))
}

func TestGraph_InsertEdge(t *testing.T) {
	g := buildChain(t)
	assert.Equal(t, 4, g.Size(), "two undirected edges = four directed")

	a, _ := g.FindNode(ActorA)
	b, _ := g.FindNode(ActorB)

	require.Len(t, g.Neighbors(a), 1)
	e := g.Neighbors(a)[0]
	assert.Equal(t, b, e.To)
	assert.Equal(t, Movie1, e.Movie)
	assert.Equal(t, 2000, e.Year)
	assert.Equal(t, int64(1), e.Weight)

	// mirror direction exists
	var back bool
	for _, e := range g.Neighbors(b) {
		if e.To == a {
			back = true
		}
	}
	assert.True(t, back, "B→A mirror edge")
}

func TestGraph_InsertEdgeRejected(t *testing.T) {
	g := buildChain(t)
	before := g.Size()

	assert.False(t, g.InsertEdge(ActorA, ActorA, Movie1, 2000, 1), "self-loop")
	assert.False(t, g.InsertEdge(ActorA, ActorZ, Movie1, 2000, 1), "missing dst")
	assert.False(t, g.InsertEdge(ActorZ, ActorA, Movie1, 2000, 1), "missing src")
	assert.Equal(t, before, g.Size(), "rejected inserts never mutate")
}

func TestGraph_InsertCast(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []string{ActorA, ActorB, ActorC} {
		g.InsertNode(n)
	}

	// duplicate credit of A and an unknown actor must not abort the clique
	n := g.InsertCast(Movie1, 1999, []string{ActorA, ActorB, ActorA, ActorZ, ActorC}, 1)
	// accepted: A-B, A-C, B-A, B-C, A-C (second credit of A)
	assert.Equal(t, 5, n)
	assert.Equal(t, 10, g.Size())
}

func TestGraph_ClearEdges(t *testing.T) {
	g := buildChain(t)
	g.ClearEdges()
	assert.Equal(t, 0, g.Size())
	assert.Equal(t, 3, g.Order())
	a, _ := g.FindNode(ActorA)
	assert.Empty(t, g.Neighbors(a))
}

func TestGraph_OutOfRange(t *testing.T) {
	g := buildChain(t)
	n, ok := g.Node(42)
	assert.Nil(t, n)
	assert.False(t, ok)
	assert.Equal(t, "", g.Name(core.NoNode))
	assert.Nil(t, g.Neighbors(core.NoNode))
	assert.Equal(t, ActorC, g.Name(2))
}

func TestTree_ResetAndPath(t *testing.T) {
	g := buildChain(t)
	a, _ := g.FindNode(ActorA)
	b, _ := g.FindNode(ActorB)
	c, _ := g.FindNode(ActorC)

	tr := core.NewTree(g.Order())
	for i := 0; i < tr.Len(); i++ {
		assert.Equal(t, core.Infinity, tr.Distance(core.NodeID(i)))
		assert.Equal(t, core.NoNode, tr.Parent(core.NodeID(i)))
	}

	tr.Start(a)
	tr.Reach(b, a, core.Edge{To: b, Movie: Movie1, Year: 2000, Weight: 1}, 1)
	tr.Reach(c, b, core.Edge{To: c, Movie: Movie2, Year: 2005, Weight: 1}, 2)

	path := tr.PathTo(c)
	require.Len(t, path, 3)
	assert.Equal(t, core.Step{Node: a, Movie: "", Year: -1}, path[0])
	assert.Equal(t, core.Step{Node: b, Movie: Movie1, Year: 2000}, path[1])
	assert.Equal(t, core.Step{Node: c, Movie: Movie2, Year: 2005}, path[2])

	movie, year := tr.Via(c)
	assert.Equal(t, Movie2, movie)
	assert.Equal(t, 2005, year)

	tr.Reset(g.Order())
	assert.False(t, tr.Reachable(c), "reset clears state")
	assert.Nil(t, tr.PathTo(c))
	assert.Equal(t, core.NoNode, tr.Source())
}

func TestTree_Finalize(t *testing.T) {
	tr := core.NewTree(2)
	assert.False(t, tr.Finalized(0))
	tr.Finalize(0)
	assert.True(t, tr.Finalized(0))
	assert.False(t, tr.Finalized(5), "out of range is never finalized")

	// grow after reset
	tr.Reset(8)
	assert.Equal(t, 8, tr.Len())
	assert.False(t, tr.Finalized(0))
}
