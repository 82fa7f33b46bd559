// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// block.go — one adjacency block for a single (layer, timestep) cell.
//
// Canonical model:
//   - Entry (u,v) ~ Bernoulli(B[label(u)][label(v)]), independently.
//   - Directed (default): every ordered pair, diagonal included.
//   - Symmetric: pairs u ≤ v are drawn once and mirrored.
//
// Determinism:
//   - Stable trial order: u asc, then v asc (v ≥ u when symmetric).
//   - p∈{0,1} consumes no randomness.
//
// Complexity:
//   - Time O(N²) Bernoulli trials, Space O(N²) for the block.

package sbm

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SampleBlock draws an N×N 0/1 adjacency block for community sizes groups
// and block probabilities b. rng may be nil only when every probability is
// 0 or 1; otherwise ErrNeedRandSource is returned.
func SampleBlock(groups []int, b BlockMatrix, rng *rand.Rand, symmetric bool) (*mat.Dense, error) {
	// 1) Validate inputs (fail fast, no allocation on bad input).
	if err := ValidateGroups(groups); err != nil {
		return nil, sbmErrorf(opSampleBlock, err)
	}
	if err := ValidateBlock(b, len(groups)); err != nil {
		return nil, sbmErrorf(opSampleBlock, err)
	}

	// 2) Allocate and fill.
	labels := Labels(groups)
	n := len(labels)
	out := mat.NewDense(n, n, nil)
	if err := fillBlock(out, labels, b, rng, symmetric); err != nil {
		return nil, sbmErrorf(opSampleBlock, err)
	}

	return out, nil
}

// fillBlock writes Bernoulli draws into dst (n×n, may be a view into a
// larger matrix). Inputs are assumed validated.
func fillBlock(dst *mat.Dense, labels []int, b BlockMatrix, rng *rand.Rand, symmetric bool) error {
	n := len(labels)
	var (
		u, v int
		x    float64
		err  error
	)
	for u = 0; u < n; u++ { // stable outer loop: u asc
		row := b[labels[u]]
		v = 0
		if symmetric {
			v = u
		}
		for ; v < n; v++ { // inner loop: v asc
			x, err = bernoulli(rng, row[labels[v]])
			if err != nil {
				return fmt.Errorf("entry (%d,%d) p=%g: %w", u, v, row[labels[v]], err)
			}
			dst.Set(u, v, x)
			if symmetric {
				dst.Set(v, u, x)
			}
		}
	}

	return nil
}
