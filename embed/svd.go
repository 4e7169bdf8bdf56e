package embed

import (
	"fmt"
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// randomizedSVD computes an approximate truncated SVD of a via the
// randomized range-finder scheme of Halko, Martinsson & Tropp (2011):
// project a onto a Gaussian sketch, refine the basis with normalized
// power iterations, then decompose the small projected matrix exactly.
//
// Returns the first k left singular vectors (rows(a)×k), the k largest
// approximate singular values in descending order, and the first k right
// singular vectors (cols(a)×k).
func randomizedSVD(
	a mat.Matrix,
	k, oversamples, iterations int,
	normalizer Normalizer,
	rnd *xrand.Rand,
) (u *mat.Dense, s []float64, v *mat.Dense, err error) {
	rows, cols := a.Dims()
	size := k + oversamples
	if minDim := min(rows, cols); size > minDim {
		size = minDim // sketch wider than the rank buys nothing
	}
	if k < 1 || k > size {
		return nil, nil, nil, ErrMatrixTooSmall
	}

	q, err := rangeFinder(a, size, iterations, normalizer, rnd)
	if err != nil {
		return nil, nil, nil, err
	}

	// b = qᵀ·a is small (size×cols); decompose it exactly.
	var b mat.Dense
	b.Mul(q.T(), a)

	var svd mat.SVD
	if ok := svd.Factorize(&b, mat.SVDThin); !ok {
		return nil, nil, nil, fmt.Errorf("embed: SVD of projected matrix failed to converge")
	}

	var ub, vb mat.Dense
	svd.UTo(&ub)
	svd.VTo(&vb)
	values := svd.Values(nil)

	var full mat.Dense
	full.Mul(q, &ub)

	u = mat.DenseCopyOf(full.Slice(0, rows, 0, k))
	v = mat.DenseCopyOf(vb.Slice(0, cols, 0, k))
	s = values[:k]

	return u, s, v, nil
}

// rangeFinder returns an orthonormal basis q (rows(a)×size) whose span
// approximates the range of a.
func rangeFinder(a mat.Matrix, size, iterations int, normalizer Normalizer, rnd *xrand.Rand) (*mat.Dense, error) {
	_, cols := a.Dims()

	if normalizer == NormalizerAuto {
		if iterations <= 2 {
			normalizer = NormalizerNone
		} else {
			normalizer = NormalizerLU
		}
	}

	// Gaussian sketch.
	q := mat.NewDense(cols, size, nil)
	for i := 0; i < cols; i++ {
		for j := 0; j < size; j++ {
			q.Set(i, j, rnd.NormFloat64())
		}
	}

	step := func(m mat.Matrix, cur *mat.Dense) (*mat.Dense, error) {
		var next mat.Dense
		next.Mul(m, cur)
		switch normalizer {
		case NormalizerNone:
			return &next, nil
		case NormalizerLU:
			return luNormalize(&next), nil
		case NormalizerQR:
			return thinQ(&next), nil
		default:
			return nil, ErrUnknownNormalizer
		}
	}

	var err error
	for i := 0; i < iterations; i++ {
		if q, err = step(a, q); err != nil {
			return nil, err
		}
		if q, err = step(a.T(), q); err != nil {
			return nil, err
		}
	}

	// Final orthonormalization is always a QR, regardless of the
	// per-iteration normalizer.
	var proj mat.Dense
	proj.Mul(a, q)

	return thinQ(&proj), nil
}

// thinQ returns the thin orthonormal factor (m×n) of an m×n matrix,
// m ≥ n.
func thinQ(a *mat.Dense) *mat.Dense {
	m, n := a.Dims()

	var qr mat.QR
	qr.Factorize(a)
	var full mat.Dense
	qr.QTo(&full)

	return mat.DenseCopyOf(full.Slice(0, m, 0, n))
}

// luNormalize returns the permuted unit lower-trapezoidal factor P·L of
// a pivoted LU factorization of the m×n input, m ≥ n. Its columns span
// the same space as the input's, which is all power iteration needs.
func luNormalize(a *mat.Dense) *mat.Dense {
	m, n := a.Dims()
	work := mat.DenseCopyOf(a)

	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// partial pivoting: largest |entry| in column k at or below row k
		pivot := k
		best := math.Abs(work.At(k, k))
		for i := k + 1; i < m; i++ {
			if v := math.Abs(work.At(i, k)); v > best {
				best = v
				pivot = i
			}
		}
		if pivot != k {
			swapRows(work, k, pivot)
			perm[k], perm[pivot] = perm[pivot], perm[k]
		}

		pk := work.At(k, k)
		if pk == 0 {
			continue
		}
		for i := k + 1; i < m; i++ {
			f := work.At(i, k) / pk
			work.Set(i, k, f)
			for j := k + 1; j < n; j++ {
				work.Set(i, j, work.At(i, j)-f*work.At(k, j))
			}
		}
	}

	// Undo the row permutation while extracting L.
	pl := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n && j <= i; j++ {
			v := work.At(i, j)
			if j == i {
				v = 1
			}
			pl.Set(perm[i], j, v)
		}
	}

	return pl
}

func swapRows(a *mat.Dense, i, j int) {
	_, n := a.Dims()
	for c := 0; c < n; c++ {
		vi, vj := a.At(i, c), a.At(j, c)
		a.Set(i, c, vj)
		a.Set(j, c, vi)
	}
}

