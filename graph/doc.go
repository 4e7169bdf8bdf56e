// Package graph provides the weighted graph value type consumed by the
// augmentation and embedding packages.
//
// A Graph G = (V,E) is a simple graph (at most one edge per ordered
// vertex pair) with:
//
//   - string vertex IDs,
//   - directed or undirected edges (New(WithDirected())),
//   - self-loops,
//   - arbitrary float64 edge attributes keyed by name, so that a
//     configurable weight attribute ("weight" by default) can be present
//     on some edges and absent on others.
//
// Determinism: Vertices() returns IDs in ascending order and Edges()
// returns edges sorted by (From, To), so any matrix or ranking built
// from a Graph is reproducible.
//
// Ownership: Graph is a plain mutable value with no internal locking.
// Clone() produces a fully independent deep copy; the embedding packages
// always clone before mutating, so a caller-owned Graph is never touched
// by an embedding call.
//
// Connectivity helpers (ConnectedComponents, LargestConnectedComponent)
// treat directed graphs as weakly connected, matching what the spectral
// embedders require of their input.
package graph
