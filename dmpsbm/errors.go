// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// errors.go — sentinel errors for the pipeline.

package dmpsbm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilParams indicates that a nil *sbm.Params reached the pipeline.
	ErrNilParams = errors.New("dmpsbm: nil params")

	// ErrShapeMismatch indicates an adjacency or embedding whose shape does
	// not match the model parameters.
	ErrShapeMismatch = errors.New("dmpsbm: shape does not match model")

	// ErrNotSampled indicates a stage that needs embeddings ran before Sample.
	ErrNotSampled = errors.New("dmpsbm: model has not been sampled")

	// ErrNoCentroids indicates alignment was requested before centroids exist.
	ErrNoCentroids = errors.New("dmpsbm: centroids have not been computed")

	// ErrNoTheory indicates Rotate ran before the theoretical embedding existed.
	ErrNoTheory = errors.New("dmpsbm: theoretical embedding has not been computed")

	// ErrNotAligned indicates aligned output was requested before alignment ran.
	ErrNotAligned = errors.New("dmpsbm: theoretical embedding has not been aligned")
)

// Operation tags used in wrapped errors.
const (
	opSample      = "Sample"
	opEmbed       = "Embed"
	opCentroids   = "Centroids"
	opTheoretical = "Theoretical"
	opRotations   = "Rotations"
	opAlign       = "Align"
	opVariances   = "Variances"
	opQQ          = "QQ"
)

// pipelineErrorf prefixes err with the operation tag.
func pipelineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
