// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// errors.go — sentinel errors for the sbm package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (operation tag, offending values) is attached with %w wrapping.
//   • Runtime code never panics on user input; option constructors may.

package sbm

import (
	"errors"
	"fmt"
)

// ErrInvalidLayers indicates a non-positive layer count.
var ErrInvalidLayers = errors.New("sbm: number of layers must be a positive integer")

// ErrInvalidTimesteps indicates a non-positive timestep count.
var ErrInvalidTimesteps = errors.New("sbm: number of timesteps must be a positive integer")

// ErrInvalidGroups indicates an empty group list or a non-positive group size.
var ErrInvalidGroups = errors.New("sbm: groups must be a non-empty list of positive integers")

// ErrInvalidKey indicates a probability key outside [0,Layers)×[0,Timesteps).
var ErrInvalidKey = errors.New("sbm: probability key out of range")

// ErrInvalidBlock indicates a block matrix that is not K×K or holds a value
// outside [0,1] (NaN included).
var ErrInvalidBlock = errors.New("sbm: invalid block probability matrix")

// ErrMissingBlock indicates that no block matrix exists for a (layer, time)
// cell that sampling or the theoretical build needs.
var ErrMissingBlock = errors.New("sbm: missing block probability matrix")

// ErrNeedRandSource indicates stochastic sampling (0<p<1) without an RNG.
var ErrNeedRandSource = errors.New("sbm: rng is required")

// Operation tags used in wrapped errors.
const (
	opNewParams   = "NewParams"
	opSampleBlock = "SampleBlock"
	opSample      = "Sample"
	opTheoretical = "Theoretical"
)

// sbmErrorf prefixes err with the operation tag, keeping errors.Is intact.
func sbmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// missingBlock builds the ErrMissingBlock error for one cell.
func missingBlock(op string, k Key) error {
	return fmt.Errorf("%s: key (%d,%d): %w", op, k.Layer, k.Time, ErrMissingBlock)
}
