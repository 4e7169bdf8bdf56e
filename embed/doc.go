// Package embed computes spectral vertex embeddings of weighted graphs.
//
// Three entry points are provided:
//
//   - AdjacencyEmbedding — truncated SVD of the rank-transformed,
//     diagonally augmented adjacency matrix.
//   - LaplacianEmbedding — the same pipeline over the degree-normalized
//     matrix D_out^{-1/2}·A·D_in^{-1/2}.
//   - OmnibusEmbedding — a joint embedding of consecutive graph pairs in
//     a time series, via a block "omnibus" matrix (Levin et al.,
//     https://arxiv.org/abs/1705.09355), so that coordinates of the two
//     graphs in a pair live in one space and can be compared directly.
//
// The pipeline for a single graph is: clone the input (callers' graphs
// are never mutated) → augment.RankEdges → augment.DiagonalAugmentation
// → build the matrix over ascending vertex labels → randomized truncated
// SVD → elbow-based dimension selection (package elbow) → project
// U·√Σ, appending V·√Σ for directed graphs (doubling the width).
//
// All randomness lives in the SVD's range finder and is controlled by
// WithSVDSeed; omitting the seed draws from the wall clock, so results
// vary between runs. Every precondition failure is returned synchronously as an
// error matching one of the package sentinels via errors.Is; nothing is
// retried and there are no partial results.
package embed
