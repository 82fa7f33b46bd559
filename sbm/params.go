// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// params.go — eager validation of model parameters.
//
// Contract:
//   • layers ≥ 1, timesteps ≥ 1               (else ErrInvalidLayers / ErrInvalidTimesteps)
//   • groups non-empty, every entry ≥ 1        (else ErrInvalidGroups)
//   • every key inside [0,layers)×[0,timesteps) (else ErrInvalidKey)
//   • every block K×K with entries in [0,1]    (else ErrInvalidBlock)
//
// Completeness of probs (one block per cell) is deliberately NOT checked here;
// a missing cell surfaces as ErrMissingBlock when it is first used.

package sbm

import (
	"fmt"
	"math"
)

// Probability domain bounds.
const (
	probMin = 0.0
	probMax = 1.0
)

// NewParams validates the inputs and returns a deep copy as *Params.
// No partial value is returned on error.
// Complexity: O(|probs|·K²).
func NewParams(layers, timesteps int, groups []int, probs ProbMap) (*Params, error) {
	// 1) Scalar shape checks first (priority: layers → timesteps → groups).
	if layers <= 0 {
		return nil, fmt.Errorf("%s: layers=%d: %w", opNewParams, layers, ErrInvalidLayers)
	}
	if timesteps <= 0 {
		return nil, fmt.Errorf("%s: timesteps=%d: %w", opNewParams, timesteps, ErrInvalidTimesteps)
	}
	if err := ValidateGroups(groups); err != nil {
		return nil, sbmErrorf(opNewParams, err)
	}

	// 2) Keys and blocks.
	k := len(groups)
	cp := make(ProbMap, len(probs))
	for key, block := range probs {
		if key.Layer < 0 || key.Layer >= layers || key.Time < 0 || key.Time >= timesteps {
			return nil, fmt.Errorf("%s: key (%d,%d) with layers=%d timesteps=%d: %w",
				opNewParams, key.Layer, key.Time, layers, timesteps, ErrInvalidKey)
		}
		if err := ValidateBlock(block, k); err != nil {
			return nil, fmt.Errorf("%s: key (%d,%d): %w", opNewParams, key.Layer, key.Time, err)
		}
		cp[key] = cloneBlock(block)
	}

	g := make([]int, k)
	copy(g, groups)

	return &Params{Layers: layers, Timesteps: timesteps, Groups: g, Probs: cp}, nil
}

// ValidateGroups checks that groups is non-empty and strictly positive.
func ValidateGroups(groups []int) error {
	if len(groups) == 0 {
		return fmt.Errorf("empty groups: %w", ErrInvalidGroups)
	}
	for i, g := range groups {
		if g <= 0 {
			return fmt.Errorf("groups[%d]=%d: %w", i, g, ErrInvalidGroups)
		}
	}

	return nil
}

// ValidateBlock checks that b is k×k and every entry is a probability.
func ValidateBlock(b BlockMatrix, k int) error {
	if len(b) != k {
		return fmt.Errorf("rows=%d want %d: %w", len(b), k, ErrInvalidBlock)
	}
	for a, row := range b {
		if len(row) != k {
			return fmt.Errorf("row %d has %d cols want %d: %w", a, len(row), k, ErrInvalidBlock)
		}
		for c, v := range row {
			if math.IsNaN(v) || v < probMin || v > probMax {
				return fmt.Errorf("entry [%d][%d]=%g not in [0,1]: %w", a, c, v, ErrInvalidBlock)
			}
		}
	}

	return nil
}

// cloneBlock returns an independent copy of b.
func cloneBlock(b BlockMatrix) BlockMatrix {
	out := make(BlockMatrix, len(b))
	for i, row := range b {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Uniform builds a ProbMap that assigns the same block to every cell.
// Useful for stationary models and fixtures.
func Uniform(layers, timesteps int, b BlockMatrix) ProbMap {
	out := make(ProbMap, layers*timesteps)
	for i := 0; i < layers; i++ {
		for j := 0; j < timesteps; j++ {
			out[Key{Layer: i, Time: j}] = cloneBlock(b)
		}
	}

	return out
}
