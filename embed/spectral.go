package embed

import (
	"fmt"

	"github.com/vertexlab/spectral/augment"
	"github.com/vertexlab/spectral/graph"
)

// AdjacencyEmbedding generates a spectral embedding from the augmented
// adjacency matrix of the graph.
//
// The graph must have exactly one (weakly, if directed) connected
// component; otherwise ErrInvalidGraph is returned. Reduce with
// graph.LargestConnectedComponent first or embed each component
// separately. The caller's graph is never mutated: the pipeline runs on
// a deep copy.
//
// Directed graphs yield embeddings twice as wide as the same structure
// treated as undirected, all else equal.
func AdjacencyEmbedding(g *graph.Graph, opts ...Option) (*Container, error) {
	return spectralEmbedding(g, MethodAdjacency, opts...)
}

// LaplacianEmbedding generates a spectral embedding from the
// degree-normalized Laplacian D_out^{-1/2}·A·D_in^{-1/2} of the
// augmented adjacency matrix. Preconditions and guarantees match
// AdjacencyEmbedding.
func LaplacianEmbedding(g *graph.Graph, opts ...Option) (*Container, error) {
	return spectralEmbedding(g, MethodLaplacian, opts...)
}

func spectralEmbedding(g *graph.Graph, method Method, opts ...Option) (*Container, error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if g.NumConnectedComponents() > 1 {
		return nil, fmt.Errorf("%w: reduce with graph.LargestConnectedComponent or embed each component separately", ErrInvalidGraph)
	}

	work := g.Clone()

	o.logger.Debug("ranking edge weights")
	if err := augment.RankEdges(work, o.weightAttr); err != nil {
		return nil, err
	}

	o.logger.Debug("diagonal augmentation")
	if err := augment.DiagonalAugmentation(work, o.weightAttr); err != nil {
		return nil, err
	}

	a, labels := augmentedAdjacency(work, o.weightAttr)
	if method == MethodLaplacian {
		a = laplacianNormalize(a)
	}

	embedding, err := generateEmbedding(a, g.IsDirected(), &o)
	if err != nil {
		return nil, err
	}

	return NewContainer(embedding, labels)
}
