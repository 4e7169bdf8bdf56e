package embed

import (
	"math"
	"time"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/vertexlab/spectral/elbow"
)

// generateEmbedding turns a graph matrix into embedding coordinates:
// truncated SVD, elbow-based dimension selection, then the projection
// U·√Σ (directed inputs additionally append V·√Σ, doubling the width).
//
// Row count of the result always equals the row count of a.
func generateEmbedding(a *mat.Dense, directed bool, o *options) (*mat.Dense, error) {
	rows, cols := a.Dims()
	k := min(o.maxDimensions, min(rows, cols)-1)
	if k < 1 {
		return nil, ErrMatrixTooSmall
	}

	o.logger.Debug("spectral embedding", "components", k, "rows", rows)
	u, sigma, v, err := randomizedSVD(a, k, o.numOversamples, o.numIterations, o.normalizer, o.randSource())
	if err != nil {
		return nil, err
	}

	d := k
	if o.elbowCut > 0 {
		positions := elbow.FindElbows(sigma, elbow.WithNumElbows(o.elbowCut))
		if len(positions) < o.elbowCut {
			return nil, ErrMatrixTooSmall
		}
		d = positions[o.elbowCut-1]
		if d > k {
			d = k
		}
	}
	o.logger.Debug("dimension reduction", "dimension", d, "elbow_cut", o.elbowCut)

	sqrtSigma := make([]float64, d)
	for i := 0; i < d; i++ {
		sqrtSigma[i] = math.Sqrt(sigma[i])
	}

	width := d
	if directed {
		width = 2 * d
	}
	out := mat.NewDense(rows, width, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < d; j++ {
			out.Set(i, j, u.At(i, j)*sqrtSigma[j])
		}
	}
	if directed {
		// cols == rows for every matrix built here, so V's rows align
		// with the output rows.
		for i := 0; i < rows; i++ {
			for j := 0; j < d; j++ {
				out.Set(i, d+j, v.At(i, j)*sqrtSigma[j])
			}
		}
	}

	return out, nil
}

// randSource yields the RNG feeding the SVD sketch: seeded when the
// caller asked for reproducibility, wall-clock otherwise.
func (o *options) randSource() *xrand.Rand {
	seed := o.seed
	if !o.hasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	return xrand.New(xrand.NewSource(seed))
}
