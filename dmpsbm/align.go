// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// align.go — stage 3: theoretical embedding and Procrustes alignment.
//
// Flow:
//   1. Theoretical: embed the (L·K)×(T·K) probability supermatrix.
//   2. Rotations:   R_left  = Procrustes(theory.Left,  stack(LeftCentroids)),
//                   R_right = Procrustes(theory.Right, stack(RightCentroids)).
//   3. Align:       rotate theory, score Σ(theory·R − centroids)² on both sides.
//
// Nothing is printed; the error metric is returned on Aligned.

package dmpsbm

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dmprdpg/embed"
	"github.com/katalvlaran/dmprdpg/procrustes"
	"github.com/katalvlaran/dmprdpg/sbm"
	"gonum.org/v1/gonum/mat"
)

// Theoretical is the unrotated embedding of the block-probability supermatrix.
//
//	Left:  (L·K)×d, layer-major then community
//	Right: (T·K)×d, timestep-major then community
type Theoretical struct {
	Left  *mat.Dense
	Right *mat.Dense
}

// Rotations holds the d×d orthogonal maps from theory onto centroids.
type Rotations struct {
	Left  *mat.Dense
	Right *mat.Dense
}

// Aligned is the final pipeline state.
type Aligned struct {
	*Centroided

	// Theory holds the rotated theoretical embeddings.
	Theory *Theoretical
	// Rotations used to produce Theory.
	Rotations *Rotations
	// LeftError and RightError are the per-side squared misalignments.
	LeftError  float64
	RightError float64
	// Error = LeftError + RightError.
	Error float64
}

// Theoretical embeds the probability supermatrix of the model with the same
// dimension as the sampled embedding.
func (c *Centroided) Theoretical() (*Theoretical, error) {
	if c == nil || c.Sampled == nil {
		return nil, pipelineErrorf(opTheoretical, ErrNoCentroids)
	}
	p, err := sbm.Theoretical(c.Params)
	if err != nil {
		return nil, pipelineErrorf(opTheoretical, err)
	}
	e, err := embed.Both(p, c.cfg.dim)
	if err != nil {
		return nil, pipelineErrorf(opTheoretical, err)
	}

	return &Theoretical{Left: e.Left, Right: e.Right}, nil
}

// Rotations solves both Procrustes problems for th against c's centroids.
// Calling it twice with the same inputs yields identical matrices.
func (c *Centroided) Rotations(th *Theoretical) (*Rotations, error) {
	left, right, err := c.stacks()
	if err != nil {
		return nil, pipelineErrorf(opRotations, err)
	}
	if err := th.check(); err != nil {
		return nil, pipelineErrorf(opRotations, err)
	}
	lr, err := procrustes.Solve(th.Left, left)
	if err != nil {
		return nil, pipelineErrorf(opRotations, fmt.Errorf("left: %w", err))
	}
	rr, err := procrustes.Solve(th.Right, right)
	if err != nil {
		return nil, pipelineErrorf(opRotations, fmt.Errorf("right: %w", err))
	}

	return &Rotations{Left: lr, Right: rr}, nil
}

// Rotate applies rot to th and returns the rotated copy; th is unchanged.
func (th *Theoretical) Rotate(rot *Rotations) (*Theoretical, error) {
	if err := th.check(); err != nil {
		return nil, err
	}
	if rot == nil || rot.Left == nil || rot.Right == nil {
		return nil, fmt.Errorf("nil rotations: %w", ErrShapeMismatch)
	}
	left, err := procrustes.Apply(th.Left, rot.Left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	right, err := procrustes.Apply(th.Right, rot.Right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}

	return &Theoretical{Left: left, Right: right}, nil
}

// Align runs Theoretical → Rotations → Rotate → error and returns the
// aligned stage.
func (c *Centroided) Align() (*Aligned, error) {
	th, err := c.Theoretical()
	if err != nil {
		return nil, err
	}
	rot, err := c.Rotations(th)
	if err != nil {
		return nil, err
	}

	return c.alignWith(th, rot)
}

// alignWith rotates th by rot and scores the result.
func (c *Centroided) alignWith(th *Theoretical, rot *Rotations) (*Aligned, error) {
	left, right, err := c.stacks()
	if err != nil {
		return nil, pipelineErrorf(opAlign, err)
	}
	rotated, err := th.Rotate(rot)
	if err != nil {
		return nil, pipelineErrorf(opAlign, err)
	}
	le, err := procrustes.SquaredError(rotated.Left, left)
	if err != nil {
		return nil, pipelineErrorf(opAlign, fmt.Errorf("left: %w", err))
	}
	re, err := procrustes.SquaredError(rotated.Right, right)
	if err != nil {
		return nil, pipelineErrorf(opAlign, fmt.Errorf("right: %w", err))
	}
	c.cfg.logger.Debug("aligned theoretical embedding",
		slog.Float64("left_error", le), slog.Float64("right_error", re))

	return &Aligned{
		Centroided: c,
		Theory:     rotated,
		Rotations:  rot,
		LeftError:  le,
		RightError: re,
		Error:      le + re,
	}, nil
}

// stacks returns both stacked centroid matrices or ErrNoCentroids.
func (c *Centroided) stacks() (left, right *mat.Dense, err error) {
	if c == nil || c.Sampled == nil {
		return nil, nil, ErrNoCentroids
	}
	left, okL := c.LeftCentroids.Stack()
	right, okR := c.RightCentroids.Stack()
	if !okL || !okR {
		return nil, nil, ErrNoCentroids
	}

	return left, right, nil
}

// check rejects a nil or partially built theoretical embedding.
func (th *Theoretical) check() error {
	if th == nil || th.Left == nil || th.Right == nil {
		return fmt.Errorf("incomplete theoretical embedding: %w", ErrNoTheory)
	}

	return nil
}
