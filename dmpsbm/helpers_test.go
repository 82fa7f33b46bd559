// SPDX-License-Identifier: MIT
package dmpsbm_test

import (
	"testing"

	"github.com/katalvlaran/dmprdpg/dmpsbm"
	"github.com/katalvlaran/dmprdpg/sbm"
	"github.com/stretchr/testify/require"
)

// tol is the numeric tolerance for orthogonality and exact-sum checks.
const tol = 1e-9

// threeCommunity is a stochastic block with clear assortative structure.
var threeCommunity = sbm.BlockMatrix{
	{0.80, 0.10, 0.05},
	{0.10, 0.60, 0.15},
	{0.05, 0.15, 0.70},
}

// mustParams builds Params or fails the test.
func mustParams(t testing.TB, layers, timesteps int, groups []int, probs sbm.ProbMap) *sbm.Params {
	t.Helper()
	p, err := sbm.NewParams(layers, timesteps, groups, probs)
	require.NoError(t, err)

	return p
}

// mustAligned runs the full pipeline or fails the test.
func mustAligned(t testing.TB, p *sbm.Params, opts ...dmpsbm.Option) *dmpsbm.Aligned {
	t.Helper()
	s, err := dmpsbm.Sample(p, opts...)
	require.NoError(t, err)
	c, err := s.Centroids()
	require.NoError(t, err)
	a, err := c.Align()
	require.NoError(t, err)

	return a
}

// blockDiagonal is the deterministic "communities are cliques" block.
func blockDiagonal(k int) sbm.BlockMatrix {
	b := make(sbm.BlockMatrix, k)
	for i := range b {
		b[i] = make([]float64, k)
		b[i][i] = 1
	}

	return b
}
