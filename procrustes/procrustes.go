// SPDX-License-Identifier: MIT
// Package: dmprdpg/procrustes
//
// procrustes.go — orthogonal Procrustes alignment and its error metric.
//
// Determinism:
//   - Solve is a pure function of its inputs; repeated calls return the same R.
//
// Complexity:
//   - Solve: O(n·d²) for Aᵀ·B plus O(d³) for the SVD.
//   - SquaredError: O(n·d).

package procrustes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opSolve        = "Solve"
	opApply        = "Apply"
	opSquaredError = "SquaredError"
)

// Solve returns the d×d orthogonal matrix R minimising ‖a·R − b‖_F.
// a and b must have identical shapes n×d.
func Solve(a, b mat.Matrix) (*mat.Dense, error) {
	// Stage 1 (Validate).
	if err := validatePair(a, b); err != nil {
		return nil, procrustesErrorf(opSolve, err)
	}

	// Stage 2 (Cross-covariance): M = aᵀ·b, d×d.
	var cross mat.Dense
	cross.Mul(a.T(), b)

	// Stage 3 (SVD): M = U·Σ·Vᵀ.
	var svd mat.SVD
	if ok := svd.Factorize(&cross, mat.SVDThin); !ok {
		return nil, procrustesErrorf(opSolve, ErrSVDFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Stage 4 (Finalize): R = U·Vᵀ.
	var r mat.Dense
	r.Mul(&u, v.T())

	return &r, nil
}

// Apply returns a·r as a fresh matrix; a is left untouched.
func Apply(a, r mat.Matrix) (*mat.Dense, error) {
	if isNil(a) || isNil(r) {
		return nil, procrustesErrorf(opApply, ErrNilMatrix)
	}
	_, ac := a.Dims()
	rr, _ := r.Dims()
	if ac != rr {
		return nil, procrustesErrorf(opApply, fmt.Errorf("a.cols=%d r.rows=%d: %w", ac, rr, ErrDimensionMismatch))
	}
	var out mat.Dense
	out.Mul(a, r)

	return &out, nil
}

// SquaredError returns Σ_ij (a_ij − b_ij)², the squared Frobenius distance.
func SquaredError(a, b mat.Matrix) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, procrustesErrorf(opSquaredError, err)
	}
	r, c := a.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := a.At(i, j) - b.At(i, j)
			sum += d * d
		}
	}

	return sum, nil
}

// IsOrthogonal reports whether rᵀ·r is within tol of the identity.
func IsOrthogonal(r mat.Matrix, tol float64) bool {
	if isNil(r) {
		return false
	}
	rows, cols := r.Dims()
	if rows != cols {
		return false
	}
	var g mat.Dense
	g.Mul(r.T(), r)

	return mat.EqualApprox(&g, identity(rows), tol)
}

// identity returns the n×n identity as a diagonal matrix.
func identity(n int) *mat.DiagDense {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return mat.NewDiagDense(n, ones)
}

// validatePair checks non-nil operands of identical shape.
func validatePair(a, b mat.Matrix) error {
	if isNil(a) || isNil(b) {
		return ErrNilMatrix
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%dx%d vs %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch)
	}

	return nil
}

// isNil also catches a nil *mat.Dense stored in the interface.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)

	return ok && d == nil
}
