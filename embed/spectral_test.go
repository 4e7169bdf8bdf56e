package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vertexlab/spectral/augment"
	"github.com/vertexlab/spectral/embed"
	"github.com/vertexlab/spectral/graph"
)

// ringGraph builds a weighted undirected ring over n vertices.
func ringGraph(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		from := string(rune('a' + i))
		to := string(rune('a' + (i+1)%n))
		g.AddWeightedEdge(from, to, float64(i+1))
	}
	return g
}

// TestAdjacencyEmbedding_Shape verifies rows, labels and width bounds.
func TestAdjacencyEmbedding_Shape(t *testing.T) {
	g := ringGraph(6)

	c, err := embed.AdjacencyEmbedding(g, embed.WithSVDSeed(3))
	require.NoError(t, err)

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, c.Labels())
	r, d := c.Embedding().Dims()
	assert.Equal(t, 6, r)
	assert.GreaterOrEqual(t, d, 1)
	assert.LessOrEqual(t, d, embed.DefaultMaxDimensions)
}

// TestAdjacencyEmbedding_DoesNotMutateInput verifies the caller's graph
// keeps its original weights and loop structure.
func TestAdjacencyEmbedding_DoesNotMutateInput(t *testing.T) {
	g := ringGraph(4)

	_, err := embed.AdjacencyEmbedding(g, embed.WithSVDSeed(3))
	require.NoError(t, err)

	e, ok := g.Edge("a", "b")
	require.True(t, ok)
	w, _ := e.Weight("weight")
	assert.Equal(t, 1.0, w, "original weight must survive the call")
	for _, v := range g.Vertices() {
		assert.False(t, g.HasEdge(v, v), "no self-loops may leak into the input")
	}
}

// TestAdjacencyEmbedding_Reproducible verifies a fixed seed produces
// identical output and the label/row invariant holds.
func TestAdjacencyEmbedding_Reproducible(t *testing.T) {
	g := ringGraph(5)

	c1, err := embed.AdjacencyEmbedding(g, embed.WithSVDSeed(1234))
	require.NoError(t, err)
	c2, err := embed.AdjacencyEmbedding(g, embed.WithSVDSeed(1234))
	require.NoError(t, err)

	assert.Equal(t, c1.Labels(), c2.Labels())
	assert.True(t, mat.Equal(c1.Embedding(), c2.Embedding()))
}

// TestAdjacencyEmbedding_MultipleComponents verifies the dedicated
// invalid-graph error.
func TestAdjacencyEmbedding_MultipleComponents(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 1)
	g.AddWeightedEdge("x", "y", 1)

	_, err := embed.AdjacencyEmbedding(g)
	assert.ErrorIs(t, err, embed.ErrInvalidGraph)
}

// TestAdjacencyEmbedding_Unweighted verifies missing weight attributes
// surface as the augmentation error.
func TestAdjacencyEmbedding_Unweighted(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 1)
	g.AddEdge("b", "c", nil)

	_, err := embed.AdjacencyEmbedding(g)
	assert.ErrorIs(t, err, augment.ErrUnweightedGraph)
}

// TestAdjacencyEmbedding_WeightAttribute verifies a custom attribute
// name is honored.
func TestAdjacencyEmbedding_WeightAttribute(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", map[string]float64{"capacity": 2})
	g.AddEdge("b", "c", map[string]float64{"capacity": 5})
	g.AddEdge("c", "a", map[string]float64{"capacity": 1})

	_, err := embed.AdjacencyEmbedding(g)
	assert.ErrorIs(t, err, augment.ErrUnweightedGraph)

	c, err := embed.AdjacencyEmbedding(g,
		embed.WithWeightAttribute("capacity"), embed.WithSVDSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

// TestAdjacencyEmbedding_DegenerateGraph verifies sub-2-vertex graphs
// are rejected rather than dividing by zero.
func TestAdjacencyEmbedding_DegenerateGraph(t *testing.T) {
	single := graph.New()
	single.AddVertex("only")

	_, err := embed.AdjacencyEmbedding(single)
	assert.ErrorIs(t, err, augment.ErrDegenerateGraph)

	_, err = embed.AdjacencyEmbedding(graph.New())
	assert.ErrorIs(t, err, augment.ErrDegenerateGraph)
}

// TestAdjacencyEmbedding_NilGraph verifies nil input is rejected.
func TestAdjacencyEmbedding_NilGraph(t *testing.T) {
	_, err := embed.AdjacencyEmbedding(nil)
	assert.ErrorIs(t, err, graph.ErrNilGraph)
}

// TestAdjacencyEmbedding_UnknownNormalizer verifies enum validation.
func TestAdjacencyEmbedding_UnknownNormalizer(t *testing.T) {
	_, err := embed.AdjacencyEmbedding(ringGraph(4),
		embed.WithPowerIterationNormalizer("cholesky"))
	assert.ErrorIs(t, err, embed.ErrUnknownNormalizer)
}

// TestDirectedEmbedding_DoubleWidth verifies a directed graph embeds
// exactly twice as wide as the same structure treated as undirected.
func TestDirectedEmbedding_DoubleWidth(t *testing.T) {
	und := ringGraph(5)

	dir := graph.New(graph.WithDirected())
	for _, e := range und.Edges() {
		w, _ := e.Weight("weight")
		dir.AddWeightedEdge(e.From, e.To, w)
		dir.AddWeightedEdge(e.To, e.From, w)
	}

	// Fix the dimension so only directedness differs.
	opts := []embed.Option{
		embed.WithoutElbowCut(), embed.WithMaxDimensions(2), embed.WithSVDSeed(5),
	}
	cu, err := embed.AdjacencyEmbedding(und, opts...)
	require.NoError(t, err)
	cd, err := embed.AdjacencyEmbedding(dir, opts...)
	require.NoError(t, err)

	assert.Equal(t, 2, cu.Dimensions())
	assert.Equal(t, 4, cd.Dimensions())
	assert.Equal(t, cu.Len(), cd.Len())
}

// TestLaplacianEmbedding_DiffersFromAdjacency verifies the two matrices
// produce different coordinates over the same graph.
func TestLaplacianEmbedding_DiffersFromAdjacency(t *testing.T) {
	g := ringGraph(6)
	opts := []embed.Option{
		embed.WithoutElbowCut(), embed.WithMaxDimensions(2), embed.WithSVDSeed(11),
	}

	ca, err := embed.AdjacencyEmbedding(g, opts...)
	require.NoError(t, err)
	cl, err := embed.LaplacianEmbedding(g, opts...)
	require.NoError(t, err)

	assert.Equal(t, ca.Labels(), cl.Labels())
	assert.False(t, mat.EqualApprox(ca.Embedding(), cl.Embedding(), 1e-9))
}

// TestEmbedding_TinyGraph verifies the smallest legal graph (two
// vertices) embeds into a single dimension.
func TestEmbedding_TinyGraph(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("a", "b", 1)

	c, err := embed.AdjacencyEmbedding(g, embed.WithSVDSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Dimensions())
}
