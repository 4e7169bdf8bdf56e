package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexlab/spectral/graph"
)

// TestGraph_VerticesSorted verifies deterministic ascending vertex order.
func TestGraph_VerticesSorted(t *testing.T) {
	g := graph.New()
	g.AddVertex("c")
	g.AddVertex("a")
	g.AddVertex("b")

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
}

// TestGraph_EdgesSortedAndDeduped verifies that undirected edges are
// reported once, sorted by (From, To).
func TestGraph_EdgesSortedAndDeduped(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("b", "c", 2)
	g.AddWeightedEdge("a", "b", 1)
	g.AddWeightedEdge("a", "a", 5) // self-loop

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "a", edges[0].From)
	assert.Equal(t, "a", edges[0].To)
	assert.Equal(t, "a", edges[1].From)
	assert.Equal(t, "b", edges[1].To)
	assert.Equal(t, "b", edges[2].From)
	assert.Equal(t, "c", edges[2].To)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestGraph_UndirectedMirroring verifies both orientations resolve to
// the same edge object.
func TestGraph_UndirectedMirroring(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("x", "y", 4)

	ab, ok := g.Edge("x", "y")
	require.True(t, ok)
	ba, ok := g.Edge("y", "x")
	require.True(t, ok)
	assert.Same(t, ab, ba)

	ab.SetWeight("weight", 9)
	w, ok := ba.Weight("weight")
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
}

// TestGraph_DirectedNoMirroring verifies directed edges are one-way.
func TestGraph_DirectedNoMirroring(t *testing.T) {
	g := graph.New(graph.WithDirected())
	g.AddWeightedEdge("u", "v", 1)

	assert.True(t, g.HasEdge("u", "v"))
	assert.False(t, g.HasEdge("v", "u"))
}

// TestGraph_RemoveEdge verifies removal of present and absent edges.
func TestGraph_RemoveEdge(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 1)

	require.NoError(t, g.RemoveEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.ErrorIs(t, g.RemoveEdge("a", "b"), graph.ErrEdgeNotFound)
}

// TestGraph_WeightedDegree verifies undirected degree with self-loops
// counted twice and missing attributes counted as 1.
func TestGraph_WeightedDegree(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 2)
	g.AddWeightedEdge("a", "a", 3)
	g.AddEdge("a", "c", nil) // no weight attribute → unit

	d, err := g.Degree("a", "weight")
	require.NoError(t, err)
	assert.InDelta(t, 2+2*3+1, d, 1e-12)

	_, err = g.Degree("zz", "weight")
	assert.ErrorIs(t, err, graph.ErrUnknownVertex)
}

// TestGraph_DirectedDegrees verifies in/out degree accounting including
// self-loops.
func TestGraph_DirectedDegrees(t *testing.T) {
	g := graph.New(graph.WithDirected())
	g.AddWeightedEdge("a", "b", 2)
	g.AddWeightedEdge("c", "a", 5)
	g.AddWeightedEdge("a", "a", 1)

	out, err := g.OutDegree("a", "weight")
	require.NoError(t, err)
	assert.InDelta(t, 3, out, 1e-12) // a→b + loop

	in, err := g.InDegree("a", "weight")
	require.NoError(t, err)
	assert.InDelta(t, 6, in, 1e-12) // c→a + loop
}

// TestGraph_CloneIndependence verifies Clone yields a deep copy whose
// mutation does not leak back.
func TestGraph_CloneIndependence(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 1)

	c := g.Clone()
	e, ok := c.Edge("a", "b")
	require.True(t, ok)
	e.SetWeight("weight", 42)
	c.AddWeightedEdge("b", "z", 7)

	orig, ok := g.Edge("a", "b")
	require.True(t, ok)
	w, _ := orig.Weight("weight")
	assert.Equal(t, 1.0, w)
	assert.False(t, g.HasVertex("z"))
}

// TestGraph_Subgraph verifies induced-subgraph semantics.
func TestGraph_Subgraph(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 1)
	g.AddWeightedEdge("b", "c", 2)
	g.AddWeightedEdge("c", "d", 3)

	sub := g.Subgraph([]string{"a", "b", "c", "nope"})
	assert.Equal(t, []string{"a", "b", "c"}, sub.Vertices())
	assert.True(t, sub.HasEdge("a", "b"))
	assert.True(t, sub.HasEdge("b", "c"))
	assert.False(t, sub.HasVertex("d"))
}
