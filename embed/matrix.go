package embed

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vertexlab/spectral/graph"
)

// augmentedAdjacency builds the dense adjacency matrix of g with rows
// and columns ordered by ascending vertex label, and returns that label
// order. An edge missing the weight attribute contributes 1.
//
// Dense is used for all shapes: gonum carries no general sparse matrix
// type, and the augmented matrices here have a fully populated diagonal
// anyway.
func augmentedAdjacency(g *graph.Graph, weightAttr string) (*mat.Dense, []string) {
	labels := g.Vertices()
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	a := mat.NewDense(len(labels), len(labels), nil)
	for _, e := range g.Edges() {
		w, ok := e.Weight(weightAttr)
		if !ok {
			w = 1
		}
		i, j := index[e.From], index[e.To]
		a.Set(i, j, w)
		if !g.IsDirected() && i != j {
			a.Set(j, i, w)
		}
	}

	return a, labels
}

// laplacianNormalize returns D_out^{-1/2} · A · D_in^{-1/2}, where the
// out/in degree diagonals are the row and column sums of a. The input is
// not modified.
func laplacianNormalize(a *mat.Dense) *mat.Dense {
	n, m := a.Dims()

	outDegree := make([]float64, n)
	inDegree := make([]float64, m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := a.At(i, j)
			outDegree[i] += v
			inDegree[j] += v
		}
	}
	for i := range outDegree {
		outDegree[i] = 1 / math.Sqrt(outDegree[i])
	}
	for j := range inDegree {
		inDegree[j] = 1 / math.Sqrt(inDegree[j])
	}

	l := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			l.Set(i, j, a.At(i, j)*outDegree[i]*inDegree[j])
		}
	}

	return l
}
