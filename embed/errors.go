// Package embed: sentinel error set. All entry points return these
// sentinels (optionally wrapped with context via %w) and tests match
// them with errors.Is.

package embed

import "errors"

var (
	// ErrInvalidGraph indicates the input graph has more than one
	// (weakly) connected component. Reduce to the largest connected
	// component first (graph.LargestConnectedComponent) or embed each
	// component separately.
	ErrInvalidGraph = errors.New("embed: graph has more than one connected component")

	// ErrTooFewGraphs indicates the omnibus embedder received a nil,
	// empty or single-element graph sequence.
	ErrTooFewGraphs = errors.New("embed: omnibus embedding requires at least two graphs")

	// ErrMixedDirectedness indicates the omnibus graph sequence mixes
	// directed and undirected graphs.
	ErrMixedDirectedness = errors.New("embed: all graphs must agree on directedness")

	// ErrUnknownMethod indicates an unrecognized embedding Method value.
	ErrUnknownMethod = errors.New("embed: unknown embedding method")

	// ErrUnknownNormalizer indicates an unrecognized power-iteration
	// normalizer.
	ErrUnknownNormalizer = errors.New("embed: unknown power iteration normalizer")

	// ErrMatrixTooSmall indicates the matrix's minimum dimension cannot
	// support even one embedding component (or the requested elbow).
	ErrMatrixTooSmall = errors.New("embed: matrix too small for requested components")

	// ErrLabelMismatch indicates embedding rows and vertex labels are not
	// positionally correlated (row count != label count).
	ErrLabelMismatch = errors.New("embed: embedding rows and vertex labels must correspond")

	// ErrDimensionMismatch indicates omnibus input matrices disagree in
	// shape.
	ErrDimensionMismatch = errors.New("embed: matrices must share one square shape")
)
