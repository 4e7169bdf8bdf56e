package elbow

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults for FindElbows.
const (
	// DefaultNumElbows is the number of elbows requested when no option
	// is given.
	DefaultNumElbows = 1

	// DefaultThreshold discards values at or below it before analysis.
	DefaultThreshold = 0.0
)

// Option configures FindElbows.
type Option func(*options)

type options struct {
	numElbows int
	threshold float64
}

// WithNumElbows requests up to n elbows. n must be ≥ 0; n == 0 yields an
// empty result.
func WithNumElbows(n int) Option {
	return func(o *options) { o.numElbows = n }
}

// WithThreshold discards values at or below t before the elbow search.
func WithThreshold(t float64) Option {
	return func(o *options) { o.threshold = t }
}

// FindElbows locates elbows in a numeric sequence, typically the
// singular values of a graph matrix.
//
// The input is copied, filtered to values strictly above the threshold
// and sorted descending. Up to NumElbows elbows are found greedily: each
// iteration scans every split point d of the current suffix, scores it
// by the summed Normal densities of the two segments under a pooled
// sample standard deviation (ddof=1), keeps the best d, and recurses on
// the values after it. If the data runs out before NumElbows are found,
// a final elbow at the filtered sequence length is appended.
//
// Returned positions are 1-based indices into the descending-sorted
// filtered sequence, in ascending order. An empty (or fully filtered)
// input yields nil; a single surviving value yields [1].
//
// Complexity: O(k·L²) for k elbows over L surviving values.
func FindElbows(values []float64, opts ...Option) []int {
	o := options{numElbows: DefaultNumElbows, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	if o.numElbows <= 0 {
		return nil
	}

	work := make([]float64, 0, len(values))
	for _, v := range values {
		if v > o.threshold {
			work = append(work, v)
		}
	}
	if len(work) == 0 {
		return nil
	}
	if len(work) == 1 {
		return []int{1}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(work)))
	n := len(work)

	var elbows []int
	cur := work
	for len(elbows) < o.numElbows && len(cur) > 1 {
		d := bestSplit(cur)

		pos := d
		if len(elbows) > 0 {
			pos += elbows[len(elbows)-1]
		}
		elbows = append(elbows, pos)
		cur = cur[d:]
	}

	if len(elbows) == o.numElbows || len(cur) == 0 {
		return elbows
	}

	return append(elbows, n)
}

// bestSplit returns the split point d ∈ [1, len(values)) maximizing the
// summed signal+noise Normal densities; ties keep the earliest d.
func bestSplit(values []float64) int {
	scale := math.Sqrt(stat.Variance(values, nil))

	best := 0
	bestLikelihood := 0.0
	for d := 1; d < len(values); d++ {
		signal := distuv.Normal{Mu: stat.Mean(values[:d], nil), Sigma: scale}
		noise := distuv.Normal{Mu: stat.Mean(values[d:], nil), Sigma: scale}

		var likelihood float64
		for _, v := range values[:d] {
			likelihood += signal.Prob(v)
		}
		for _, v := range values[d:] {
			likelihood += noise.Prob(v)
		}

		if likelihood > bestLikelihood {
			bestLikelihood = likelihood
			best = d
		}
	}
	if best == 0 {
		// degenerate likelihoods (e.g. zero variance): take the first split
		best = 1
	}

	return best
}
