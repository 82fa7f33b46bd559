// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// model.go — mutable facade over the phased pipeline.
//
// Model keeps the latest stage value and exposes the classic ordered calls:
//
//	m.Sample()            → Sampled
//	m.ComputeCentroids()  → Centroided        (ErrNotSampled before Sample)
//	m.Theoretical()       → Theoretical       (ErrNoCentroids before ComputeCentroids)
//	m.Rotation()          → Rotations         (ErrNoCentroids before ComputeCentroids)
//	m.Rotate()            → Aligned, error    (ErrNoTheory before Theoretical/Rotation)
//	m.AlignTheoretical()  → Theoretical + Rotate
//
// Re-running an upstream stage discards every downstream result, so stale
// centroids or rotations are never mixed with a fresh sample.
// Model is not safe for concurrent use.

package dmpsbm

import (
	"github.com/katalvlaran/dmprdpg/sbm"
)

// Model is one analysis session over fixed parameters.
type Model struct {
	params *sbm.Params
	opts   []Option

	sampled    *Sampled
	centroided *Centroided
	theory     *Theoretical
	aligned    *Aligned
}

// NewModel validates the parameters eagerly (see sbm.NewParams) and returns
// an unsampled model. No partial model is returned on error.
func NewModel(layers, timesteps int, groups []int, probs sbm.ProbMap, opts ...Option) (*Model, error) {
	p, err := sbm.NewParams(layers, timesteps, groups, probs)
	if err != nil {
		return nil, err
	}

	return NewModelFromParams(p, opts...)
}

// NewModelFromParams wraps already validated parameters.
func NewModelFromParams(p *sbm.Params, opts ...Option) (*Model, error) {
	if p == nil {
		return nil, ErrNilParams
	}

	return &Model{params: p, opts: opts}, nil
}

// Params returns the model parameters.
func (m *Model) Params() *sbm.Params { return m.params }

// Sample draws a fresh supermatrix and embeds it. Downstream results are reset.
func (m *Model) Sample() error {
	s, err := Sample(m.params, m.opts...)
	if err != nil {
		return err
	}
	m.sampled, m.centroided, m.theory, m.aligned = s, nil, nil, nil

	return nil
}

// ComputeCentroids aggregates community centroids of the current sample.
func (m *Model) ComputeCentroids() error {
	if m.sampled == nil {
		return pipelineErrorf(opCentroids, ErrNotSampled)
	}
	c, err := m.sampled.Centroids()
	if err != nil {
		return err
	}
	m.centroided, m.theory, m.aligned = c, nil, nil

	return nil
}

// Theoretical embeds the probability supermatrix unless it already exists.
// Centroids must have been computed.
func (m *Model) Theoretical() error {
	if m.centroided == nil {
		return pipelineErrorf(opTheoretical, ErrNoCentroids)
	}
	if m.theory != nil {
		return nil
	}
	th, err := m.centroided.Theoretical()
	if err != nil {
		return err
	}
	m.theory = th

	return nil
}

// Rotation solves the Procrustes problems against the current centroids,
// embedding the theoretical supermatrix on first use.
func (m *Model) Rotation() (*Rotations, error) {
	if m.centroided == nil {
		return nil, pipelineErrorf(opRotations, ErrNoCentroids)
	}
	if err := m.Theoretical(); err != nil {
		return nil, err
	}

	return m.centroided.Rotations(m.theory)
}

// Rotate applies the Procrustes rotations to the theoretical embedding and
// returns the total squared alignment error. The stored unrotated theory is
// left intact, so repeated calls give the same result.
func (m *Model) Rotate() (float64, error) {
	if m.theory == nil {
		return 0, pipelineErrorf(opAlign, ErrNoTheory)
	}
	rot, err := m.centroided.Rotations(m.theory)
	if err != nil {
		return 0, err
	}
	a, err := m.centroided.alignWith(m.theory, rot)
	if err != nil {
		return 0, err
	}
	m.aligned = a

	return a.Error, nil
}

// AlignTheoretical embeds theory, rotates it onto the centroids and returns
// the total squared alignment error.
func (m *Model) AlignTheoretical() (float64, error) {
	if err := m.Theoretical(); err != nil {
		return 0, err
	}

	return m.Rotate()
}

// Sampled returns the sampled stage or ErrNotSampled.
func (m *Model) Sampled() (*Sampled, error) {
	if m.sampled == nil {
		return nil, ErrNotSampled
	}

	return m.sampled, nil
}

// Centroided returns the centroid stage or ErrNoCentroids.
func (m *Model) Centroided() (*Centroided, error) {
	if m.centroided == nil {
		return nil, ErrNoCentroids
	}

	return m.centroided, nil
}

// Aligned returns the aligned stage or ErrNotAligned.
func (m *Model) Aligned() (*Aligned, error) {
	if m.aligned == nil {
		return nil, ErrNotAligned
	}

	return m.aligned, nil
}

// TotalError returns the total squared alignment error or ErrNotAligned.
func (m *Model) TotalError() (float64, error) {
	a, err := m.Aligned()
	if err != nil {
		return 0, err
	}

	return a.Error, nil
}

// Variances reports within-community variances of the current sample.
func (m *Model) Variances() (*Variances, error) {
	if m.sampled == nil {
		return nil, pipelineErrorf(opVariances, ErrNotSampled)
	}

	return m.sampled.Variances()
}

// QQ reports normal QQ series of the current sample.
func (m *Model) QQ() ([]QQSeries, error) {
	if m.sampled == nil {
		return nil, pipelineErrorf(opQQ, ErrNotSampled)
	}

	return m.sampled.QQ()
}

// Scatter reports scatter point sets; alignment must have run.
func (m *Model) Scatter() ([]ScatterSlice, error) {
	a, err := m.Aligned()
	if err != nil {
		return nil, err
	}

	return a.Scatter(), nil
}
