// SPDX-License-Identifier: MIT
// Package: dmprdpg/embed
//
// embed.go — adjacency spectral embedding via gonum's thin SVD.
//
// Determinism & Policy:
//   - One SVD per call to Both; Embed delegates to Both.
//   - Components are ordered by decreasing singular value.
//   - Sign policy: argmax_i |U[i,j]| is made positive (ties → lowest i).
//
// Complexity:
//   - Time O(r·c·min(r,c)) for the SVD, O((r+c)·d) for scaling.

package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Side selects which factor of the decomposition to return.
type Side int

const (
	// Left embeds the rows of the input (U·Σ^{1/2}).
	Left Side = iota
	// Right embeds the columns of the input (V·Σ^{1/2}).
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

const (
	opEmbed = "Embed"
	opBoth  = "Both"
)

// Embedding bundles both factors of one decomposition.
type Embedding struct {
	Left     *mat.Dense // r×d
	Right    *mat.Dense // c×d
	Singular []float64  // leading d singular values (zero-padded)
}

// Embed returns the d-dimensional embedding of m on the requested side.
func Embed(m mat.Matrix, side Side, d int) (*mat.Dense, error) {
	if side != Left && side != Right {
		return nil, embedErrorf(opEmbed, fmt.Errorf("%v: %w", side, ErrUnknownSide))
	}
	e, err := Both(m, d)
	if err != nil {
		return nil, err
	}
	if side == Left {
		return e.Left, nil
	}

	return e.Right, nil
}

// Both returns the left and right d-dimensional embeddings of m from a
// single thin SVD.
func Both(m mat.Matrix, d int) (*Embedding, error) {
	// Stage 1 (Validate).
	if d <= 0 {
		return nil, embedErrorf(opBoth, fmt.Errorf("d=%d: %w", d, ErrBadDimension))
	}
	if m == nil {
		return nil, embedErrorf(opBoth, ErrNilMatrix)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, embedErrorf(opBoth, ErrNilMatrix)
	}

	// Stage 2 (Factorize).
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, embedErrorf(opBoth, ErrSVDFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	// Stage 3 (Scale & sign-fix the leading min(d, rank-bound) components).
	q := len(values)
	if d < q {
		q = d
	}
	left := mat.NewDense(r, d, nil)
	right := mat.NewDense(c, d, nil)
	sing := make([]float64, d)
	for j := 0; j < q; j++ {
		s := math.Sqrt(values[j])
		sign := signOf(&u, j)
		for i := 0; i < r; i++ {
			left.Set(i, j, sign*s*u.At(i, j))
		}
		for i := 0; i < c; i++ {
			right.Set(i, j, sign*s*v.At(i, j))
		}
		sing[j] = values[j]
	}

	return &Embedding{Left: left, Right: right, Singular: sing}, nil
}

// signOf returns +1 or -1 so that the largest-magnitude entry of column j
// of u becomes positive.
func signOf(u *mat.Dense, j int) float64 {
	r, _ := u.Dims()
	best, at := -1.0, 0
	for i := 0; i < r; i++ {
		if a := math.Abs(u.At(i, j)); a > best {
			best, at = a, i
		}
	}
	if u.At(at, j) < 0 {
		return -1
	}

	return 1
}
