// Package augment prepares a weighted graph for spectral embedding.
//
// Two transforms are applied, in order, before a graph is turned into a
// matrix:
//
//  1. RankEdges replaces every edge weight by a rank-based score in the
//     open interval (0, 2). Raw weights from wildly different scales
//     collapse onto a common, outlier-free scale while preserving their
//     ordering (ties share the average rank).
//
//  2. DiagonalAugmentation replaces every self-loop with one whose
//     weight is the vertex's weighted degree divided by (n-1). Writing
//     a degree-proportional value onto the matrix diagonal stabilizes
//     the spectral decomposition around low-degree vertices.
//
// Both functions mutate the graph they are given and are meant to run on
// a clone; the embed package always clones the caller's graph first.
package augment
