// SPDX-License-Identifier: MIT
package embed_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dmprdpg/embed"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

// randDense fills an r×c matrix deterministically.
func randDense(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()
	}

	return mat.NewDense(r, c, data)
}

// TestBoth_Shapes: one row per input row (left) / column (right), d columns.
func TestBoth_Shapes(t *testing.T) {
	m := randDense(12, 8, 1)
	e, err := embed.Both(m, 4)
	require.NoError(t, err)

	r, c := e.Left.Dims()
	require.Equal(t, 12, r)
	require.Equal(t, 4, c)
	r, c = e.Right.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 4, c)
	require.Len(t, e.Singular, 4)
	for j := 1; j < 4; j++ {
		require.GreaterOrEqual(t, e.Singular[j-1], e.Singular[j], "singular values decrease")
	}
}

// TestBoth_ReconstructsLowRank: for rank ≤ d, Left·Rightᵀ == M.
func TestBoth_ReconstructsLowRank(t *testing.T) {
	x := randDense(10, 2, 2)
	y := randDense(7, 2, 3)
	var m mat.Dense
	m.Mul(x, y.T()) // rank 2

	e, err := embed.Both(&m, 3)
	require.NoError(t, err)

	var got mat.Dense
	got.Mul(e.Left, e.Right.T())
	require.True(t, mat.EqualApprox(&m, &got, 1e-9))
	require.InDelta(t, 0, e.Singular[2], 1e-9, "third component has no spectrum")
}

// TestBoth_PadsBeyondRankBound: d > min(r,c) yields zero trailing columns.
func TestBoth_PadsBeyondRankBound(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 2, 0})
	e, err := embed.Both(m, 4)
	require.NoError(t, err)

	for _, side := range []*mat.Dense{e.Left, e.Right} {
		r, c := side.Dims()
		require.Equal(t, 4, c)
		for i := 0; i < r; i++ {
			require.Zero(t, side.At(i, 2))
			require.Zero(t, side.At(i, 3))
		}
	}
	require.InDelta(t, 2.0, e.Singular[0], tol)
	require.InDelta(t, 1.0, e.Singular[1], tol)
}

// TestBoth_SignPolicy: the dominant entry of each left component is positive.
func TestBoth_SignPolicy(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		-5, 0, 0,
		0, -3, 0,
		0, 0, 1,
	})
	e, err := embed.Both(m, 3)
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		best, at := -1.0, 0
		for i := 0; i < 3; i++ {
			if a := math.Abs(e.Left.At(i, j)); a > best {
				best, at = a, i
			}
		}
		require.Positive(t, e.Left.At(at, j), "component %d", j)
	}
	require.InDelta(t, math.Sqrt(5), e.Left.At(0, 0), tol)
	require.InDelta(t, -math.Sqrt(5), e.Right.At(0, 0), tol)
}

// TestEmbed_Deterministic: repeated calls agree exactly.
func TestEmbed_Deterministic(t *testing.T) {
	m := randDense(9, 9, 4)
	a, err := embed.Embed(m, embed.Left, 4)
	require.NoError(t, err)
	b, err := embed.Embed(m, embed.Left, 4)
	require.NoError(t, err)
	require.True(t, mat.Equal(a, b))

	r, err := embed.Embed(m, embed.Right, 4)
	require.NoError(t, err)
	e, err := embed.Both(m, 4)
	require.NoError(t, err)
	require.True(t, mat.Equal(r, e.Right))
}

func TestEmbed_Errors(t *testing.T) {
	m := randDense(3, 3, 5)

	_, err := embed.Both(m, 0)
	require.ErrorIs(t, err, embed.ErrBadDimension)

	_, err = embed.Both(nil, 2)
	require.ErrorIs(t, err, embed.ErrNilMatrix)

	_, err = embed.Embed(m, embed.Side(7), 2)
	require.ErrorIs(t, err, embed.ErrUnknownSide)
}

func TestSide_String(t *testing.T) {
	require.Equal(t, "left", embed.Left.String())
	require.Equal(t, "right", embed.Right.String())
	require.Equal(t, "Side(9)", embed.Side(9).String())
}
