package embed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vertexlab/spectral/graph"
)

// TestAugmentedAdjacency_SortedOrder verifies rows/columns follow
// ascending vertex labels and undirected entries are mirrored.
func TestAugmentedAdjacency_SortedOrder(t *testing.T) {
	g := graph.New()
	g.AddWeightedEdge("c", "a", 3)
	g.AddWeightedEdge("a", "b", 1)
	g.AddWeightedEdge("b", "b", 7) // self-loop on the diagonal

	a, labels := augmentedAdjacency(g, "weight")
	require.Equal(t, []string{"a", "b", "c"}, labels)

	want := mat.NewDense(3, 3, []float64{
		0, 1, 3,
		1, 7, 0,
		3, 0, 0,
	})
	assert.True(t, mat.Equal(want, a), "got %v", mat.Formatted(a))
}

// TestAugmentedAdjacency_Directed verifies no mirroring for directed
// graphs.
func TestAugmentedAdjacency_Directed(t *testing.T) {
	g := graph.New(graph.WithDirected())
	g.AddWeightedEdge("a", "b", 5)

	a, _ := augmentedAdjacency(g, "weight")
	assert.Equal(t, 5.0, a.At(0, 1))
	assert.Equal(t, 0.0, a.At(1, 0))
}

// TestLaplacianNormalize verifies l[i][j] = a[i][j]/sqrt(rowsum_i·colsum_j).
func TestLaplacianNormalize(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		1, 1,
		0, 2,
	})
	// row sums (out): 2, 2 ; column sums (in): 1, 3
	l := laplacianNormalize(a)

	assert.InDelta(t, 1/math.Sqrt(2*1), l.At(0, 0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt(2*3), l.At(0, 1), 1e-12)
	assert.InDelta(t, 0, l.At(1, 0), 1e-12)
	assert.InDelta(t, 2/math.Sqrt(2*3), l.At(1, 1), 1e-12)

	// input untouched
	assert.Equal(t, 1.0, a.At(0, 0))
}
