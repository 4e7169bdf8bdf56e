package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vertexlab/spectral/augment"
	"github.com/vertexlab/spectral/graph"
)

// ContainerPair holds the two halves of one pairwise omnibus embedding.
// Both containers share the same vertex-label ordering, so rows are
// directly comparable across the pair.
type ContainerPair struct {
	Previous *Container
	Current  *Container
}

// OmnibusEmbedding generates a joint spectral embedding for each
// consecutive pair of graphs in a time series: given graphs A, B, C it
// embeds (A,B) and (B,C).
//
// Each graph of a pair is prepared independently from the original
// input (reduced to its largest connected component, rank-transformed,
// diagonally augmented), and the pair is then restricted to the
// intersection of the two vertex sets, so both matrices share one
// ordering and dimension. The 2×2 block omnibus matrix (original
// matrices on the diagonal, their elementwise mean off it) is decomposed
// once, and its rows are split back into the two per-graph embeddings.
//
// WithMethod selects adjacency or Laplacian matrices (Laplacian by
// default). Errors: ErrTooFewGraphs for nil/empty/singleton input,
// ErrMixedDirectedness when graphs disagree on directedness,
// ErrUnknownMethod for an unrecognized method, and
// augment.ErrDegenerateGraph when a graph (or a reduced pair) collapses
// below two vertices.
func OmnibusEmbedding(graphs []*graph.Graph, opts ...Option) ([]ContainerPair, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(graphs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewGraphs, len(graphs))
	}
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("graph %d: %w", i, graph.ErrNilGraph)
		}
	}
	directed := graphs[0].IsDirected()
	for _, g := range graphs[1:] {
		if g.IsDirected() != directed {
			return nil, ErrMixedDirectedness
		}
	}

	previous, err := prepareForOmnibus(graphs[0], &o)
	if err != nil {
		return nil, fmt.Errorf("graph 0: %w", err)
	}

	pairs := make([]ContainerPair, 0, len(graphs)-1)
	for i := 1; i < len(graphs); i++ {
		o.logger.Debug("omnibus pair", "index", i, "of", len(graphs)-1)

		current, err := prepareForOmnibus(graphs[i], &o)
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", i, err)
		}

		common := intersectVertices(previous, current)
		if len(common) <= 1 {
			return nil, fmt.Errorf("graphs %d and %d share %d vertices: %w",
				i-1, i, len(common), augment.ErrDegenerateGraph)
		}
		reducedPrev := previous.Subgraph(common)
		reducedCurr := current.Subgraph(common)

		prevMatrix, labels := augmentedAdjacency(reducedPrev, o.weightAttr)
		currMatrix, _ := augmentedAdjacency(reducedCurr, o.weightAttr)
		if o.method == MethodLaplacian {
			prevMatrix = laplacianNormalize(prevMatrix)
			currMatrix = laplacianNormalize(currMatrix)
		}

		omni, err := GenerateOmnibusMatrix([]*mat.Dense{prevMatrix, currMatrix})
		if err != nil {
			return nil, err
		}

		embedding, err := generateEmbedding(omni, directed, &o)
		if err != nil {
			return nil, err
		}

		n := len(labels)
		_, width := embedding.Dims()
		prevContainer, err := NewContainer(mat.DenseCopyOf(embedding.Slice(0, n, 0, width)), labels)
		if err != nil {
			return nil, err
		}
		currContainer, err := NewContainer(mat.DenseCopyOf(embedding.Slice(n, 2*n, 0, width)), labels)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, ContainerPair{Previous: prevContainer, Current: currContainer})
		previous = current
	}

	return pairs, nil
}

// prepareForOmnibus applies the single-graph preprocessing pipeline to
// an independent copy: largest connected component, edge ranking,
// diagonal augmentation.
func prepareForOmnibus(g *graph.Graph, o *options) (*graph.Graph, error) {
	lcc := g.LargestConnectedComponent()
	if err := augment.RankEdges(lcc, o.weightAttr); err != nil {
		return nil, err
	}
	if err := augment.DiagonalAugmentation(lcc, o.weightAttr); err != nil {
		return nil, err
	}
	return lcc, nil
}

// intersectVertices returns the sorted vertex IDs present in both
// graphs.
func intersectVertices(a, b *graph.Graph) []string {
	var common []string
	for _, id := range a.Vertices() {
		if b.HasVertex(id) {
			common = append(common, id)
		}
	}
	return common
}

// GenerateOmnibusMatrix builds the omnibus matrix of k same-shape square
// matrices M_1..M_k: a k·n × k·n block matrix whose (i,i) block is M_i
// and whose (i,j) block, i≠j, is (M_i+M_j)/2.
//
// The omnibus embedder uses k=2, but the construction holds for any
// k ≥ 2. Returns ErrDimensionMismatch when the inputs disagree in shape
// or are not square, ErrTooFewGraphs for fewer than two matrices.
func GenerateOmnibusMatrix(matrices []*mat.Dense) (*mat.Dense, error) {
	if len(matrices) < 2 {
		return nil, ErrTooFewGraphs
	}
	n, c := matrices[0].Dims()
	if n != c {
		return nil, ErrDimensionMismatch
	}
	for _, m := range matrices[1:] {
		if r, cc := m.Dims(); r != n || cc != n {
			return nil, ErrDimensionMismatch
		}
	}

	k := len(matrices)
	omni := mat.NewDense(k*n, k*n, nil)
	for bi := 0; bi < k; bi++ {
		for bj := 0; bj < k; bj++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					var v float64
					if bi == bj {
						v = matrices[bi].At(i, j)
					} else {
						v = (matrices[bi].At(i, j) + matrices[bj].At(i, j)) / 2
					}
					omni.Set(bi*n+i, bj*n+j, v)
				}
			}
		}
	}

	return omni, nil
}
