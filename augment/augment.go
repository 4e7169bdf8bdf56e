package augment

import (
	"errors"
	"sort"

	"github.com/vertexlab/spectral/graph"
)

// Sentinel errors for graph augmentation.
var (
	// ErrUnweightedGraph indicates at least one edge lacks the requested
	// weight attribute.
	ErrUnweightedGraph = errors.New("augment: weight attribute not found on every edge")

	// ErrDegenerateGraph indicates the graph has fewer than two vertices,
	// for which the degree normalization degree/(n-1) is undefined.
	ErrDegenerateGraph = errors.New("augment: graph must have at least two vertices")
)

// RankEdges replaces the named weight attribute of every edge with a
// rank-based score in the open interval (0, 2).
//
// Each weight is mapped to its statistical rank among all m edge weights
// (ties share the average rank, as in scipy.stats.rankdata) and then
// scaled by 2/(m+1), so the smallest score is strictly above 0 and the
// largest strictly below 2. The rank ordering of weights is preserved.
//
// The graph is mutated in place. Returns ErrUnweightedGraph if any edge
// lacks the attribute, graph.ErrNilGraph on a nil graph.
//
// Complexity: O(E log E).
func RankEdges(g *graph.Graph, weightAttr string) error {
	if g == nil {
		return graph.ErrNilGraph
	}

	edges := g.Edges()
	m := len(edges)
	weights := make([]float64, m)
	for i, e := range edges {
		w, ok := e.Weight(weightAttr)
		if !ok {
			return ErrUnweightedGraph
		}
		weights[i] = w
	}

	ranks := averageRanks(weights)
	scale := 2 / float64(m+1)
	for i, e := range edges {
		e.SetWeight(weightAttr, ranks[i]*scale)
	}

	return nil
}

// averageRanks assigns 1-based ranks with ties resolved to the average
// of the positions they occupy.
func averageRanks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// positions i..j (0-based) share the average of ranks i+1..j+1
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}

	return ranks
}

// DiagonalAugmentation replaces the self-loop of every vertex with one
// whose weight is the vertex's weighted degree divided by (n-1). For
// directed graphs the degree is the mean of weighted in- and out-degree.
// Existing self-loops are removed before the degree is computed, so the
// transform is idempotent with respect to loop structure.
//
// The graph is mutated in place. Returns ErrDegenerateGraph when the
// graph has fewer than two vertices, graph.ErrNilGraph on a nil graph.
//
// Complexity: O(V + E).
func DiagonalAugmentation(g *graph.Graph, weightAttr string) error {
	if g == nil {
		return graph.ErrNilGraph
	}

	n := g.VertexCount()
	if n <= 1 {
		return ErrDegenerateGraph
	}

	norm := float64(n - 1)
	for _, v := range g.Vertices() {
		if g.HasEdge(v, v) {
			if err := g.RemoveEdge(v, v); err != nil {
				return err
			}
		}

		var degree float64
		if g.IsDirected() {
			in, err := g.InDegree(v, weightAttr)
			if err != nil {
				return err
			}
			out, err := g.OutDegree(v, weightAttr)
			if err != nil {
				return err
			}
			degree = (in + out) / 2
		} else {
			d, err := g.Degree(v, weightAttr)
			if err != nil {
				return err
			}
			degree = d
		}

		g.AddEdge(v, v, map[string]float64{weightAttr: degree / norm})
	}

	return nil
}
