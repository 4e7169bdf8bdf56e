// Package spectral is a family of packages for computing low-dimensional
// vector embeddings of the vertices of weighted graphs via spectral
// decomposition, with automatic selection of the embedding dimensionality.
//
// What lives where:
//
//	graph/      — weighted, optionally directed graph value type with
//	              deterministic iteration, cloning and connected components
//	augment/    — edge-weight rank transform and diagonal augmentation,
//	              the preprocessing applied before any spectral embedding
//	elbow/      — profile-likelihood elbow detection on a scree plot
//	              (Zhu & Ghodsi, 2006), used to pick embedding dimension
//	embed/      — adjacency, Laplacian and omnibus spectral embedders
//	              built on randomized truncated SVD
//	embedstore/ — SQLite-backed persistence for embedding containers
//
// The typical flow is: build (or load) a graph, reduce it to a single
// connected component, then call embed.AdjacencyEmbedding or
// embed.LaplacianEmbedding. For a time series of graphs over a shared
// vertex set, embed.OmnibusEmbedding produces pairwise joint embeddings
// whose coordinates are directly comparable between consecutive graphs.
//
// Every embedding call deep-copies its input; caller-owned graphs are
// never mutated. Randomness is confined to the SVD solver and is fully
// determined by an optional seed, so results are reproducible on demand.
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := graph.New()
//	g.AddWeightedEdge("A", "B", 1)
//	g.AddWeightedEdge("A", "C", 2)
//	g.AddWeightedEdge("B", "D", 1)
//	g.AddWeightedEdge("C", "D", 3)
//	c, err := embed.AdjacencyEmbedding(g, embed.WithSVDSeed(7))
//
// See examples/ for complete scenarios.
package spectral
