// Package embedstore persists embedding containers in a local SQLite
// database.
//
// Each container is stored under a caller-chosen name as one row per
// vertex, keeping the label order and the exact float64 coordinates.
// The store is safe for concurrent use.
//
// Typical usage:
//
//	store, err := embedstore.Open("embeddings.db")
//	...
//	err = store.Save(ctx, "graph-2024-01", container)
//	back, err := store.Load(ctx, "graph-2024-01")
package embedstore
