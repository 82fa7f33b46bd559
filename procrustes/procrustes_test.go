// SPDX-License-Identifier: MIT
package procrustes_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dmprdpg/procrustes"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

// randDense fills an r×c matrix with N(0,1) entries.
func randDense(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

// randOrthogonal returns the Q factor of a random square matrix.
func randOrthogonal(d int, seed int64) *mat.Dense {
	var qr mat.QR
	qr.Factorize(randDense(d, d, seed))
	var q mat.Dense
	qr.QTo(&q)

	return &q
}

// TestSolve_RecoversRotation: B = A·Q ⇒ Solve(A,B) = Q and zero residual.
func TestSolve_RecoversRotation(t *testing.T) {
	a := randDense(20, 4, 1)
	q := randOrthogonal(4, 2)
	var b mat.Dense
	b.Mul(a, q)

	r, err := procrustes.Solve(a, &b)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(q, r, 1e-8), "got\n%v", mat.Formatted(r))

	aligned, err := procrustes.Apply(a, r)
	require.NoError(t, err)
	e, err := procrustes.SquaredError(aligned, &b)
	require.NoError(t, err)
	require.InDelta(t, 0, e, 1e-12)
}

// TestSolve_Orthogonal: R is orthogonal for arbitrary (noisy) inputs.
func TestSolve_Orthogonal(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		a := randDense(15, 4, seed)
		b := randDense(15, 4, seed+100)
		r, err := procrustes.Solve(a, b)
		require.NoError(t, err)
		require.True(t, procrustes.IsOrthogonal(r, tol), "seed %d", seed)
	}
}

// TestSolve_Optimal: no other orthogonal matrix does better than R.
func TestSolve_Optimal(t *testing.T) {
	a := randDense(12, 3, 5)
	b := randDense(12, 3, 6)
	r, err := procrustes.Solve(a, b)
	require.NoError(t, err)
	ar, err := procrustes.Apply(a, r)
	require.NoError(t, err)
	best, err := procrustes.SquaredError(ar, b)
	require.NoError(t, err)

	for seed := int64(0); seed < 25; seed++ {
		q := randOrthogonal(3, 1000+seed)
		aq, err := procrustes.Apply(a, q)
		require.NoError(t, err)
		e, err := procrustes.SquaredError(aq, b)
		require.NoError(t, err)
		require.GreaterOrEqual(t, e+1e-9, best)
	}
}

// TestSolve_Idempotent: same inputs ⇒ identical rotation.
func TestSolve_Idempotent(t *testing.T) {
	a := randDense(8, 4, 7)
	b := randDense(8, 4, 8)
	r1, err := procrustes.Solve(a, b)
	require.NoError(t, err)
	r2, err := procrustes.Solve(a, b)
	require.NoError(t, err)
	require.True(t, mat.Equal(r1, r2))
}

// TestSquaredError equals the explicit double sum.
func TestSquaredError(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{0, 2, 5, 1})
	e, err := procrustes.SquaredError(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0+0+4+9, e)
}

func TestErrors(t *testing.T) {
	a := randDense(3, 2, 1)
	b := randDense(4, 2, 1)

	_, err := procrustes.Solve(a, b)
	require.ErrorIs(t, err, procrustes.ErrDimensionMismatch)
	_, err = procrustes.Solve(nil, b)
	require.ErrorIs(t, err, procrustes.ErrNilMatrix)
	_, err = procrustes.SquaredError(a, b)
	require.ErrorIs(t, err, procrustes.ErrDimensionMismatch)
	_, err = procrustes.Apply(a, mat.NewDense(3, 3, nil))
	require.ErrorIs(t, err, procrustes.ErrDimensionMismatch)
	_, err = procrustes.Apply(nil, a)
	require.ErrorIs(t, err, procrustes.ErrNilMatrix)

	// A nil *mat.Dense inside the interface is still a nil matrix.
	var none *mat.Dense
	_, err = procrustes.Solve(a, none)
	require.ErrorIs(t, err, procrustes.ErrNilMatrix)
	_, err = procrustes.SquaredError(none, a)
	require.ErrorIs(t, err, procrustes.ErrNilMatrix)
	_, err = procrustes.Apply(a, none)
	require.ErrorIs(t, err, procrustes.ErrNilMatrix)
}

func TestIsOrthogonal(t *testing.T) {
	require.True(t, procrustes.IsOrthogonal(randOrthogonal(5, 3), tol))

	theta := math.Pi / 6
	rot := mat.NewDense(2, 2, []float64{math.Cos(theta), -math.Sin(theta), math.Sin(theta), math.Cos(theta)})
	require.True(t, procrustes.IsOrthogonal(rot, tol))

	require.False(t, procrustes.IsOrthogonal(mat.NewDense(2, 2, []float64{2, 0, 0, 1}), tol))
	require.False(t, procrustes.IsOrthogonal(mat.NewDense(2, 3, nil), tol))
	require.False(t, procrustes.IsOrthogonal(nil, tol))
	var none *mat.Dense
	require.False(t, procrustes.IsOrthogonal(none, tol))
	require.False(t, procrustes.IsOrthogonal(mat.NewDense(2, 2, []float64{1, 1e-3, 0, 1}), tol))
}
