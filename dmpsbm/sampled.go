// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// sampled.go — stage 1: sample the supermatrix and embed it.

package dmpsbm

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dmprdpg/embed"
	"github.com/katalvlaran/dmprdpg/sbm"
	"gonum.org/v1/gonum/mat"
)

// Sampled is the pipeline state after sampling.
//
//	A:     (L·N)×(T·N) adjacency supermatrix
//	Left:  (L·N)×d     row embedding, layer-major
//	Right: (T·N)×d     column embedding, timestep-major
type Sampled struct {
	Params *sbm.Params
	A      *mat.Dense
	Left   *mat.Dense
	Right  *mat.Dense
	// Singular holds the leading d singular values of A.
	Singular []float64

	cfg config
}

// Sample draws A from p and computes its left/right embeddings.
func Sample(p *sbm.Params, opts ...Option) (*Sampled, error) {
	if p == nil {
		return nil, pipelineErrorf(opSample, ErrNilParams)
	}
	cfg := newConfig(opts...)

	a, err := sbm.Sample(p, cfg.sampleOpts...)
	if err != nil {
		return nil, pipelineErrorf(opSample, err)
	}
	r, c := a.Dims()
	cfg.logger.Debug("sampled adjacency supermatrix", slog.Int("rows", r), slog.Int("cols", c))

	return embedWith(p, a, cfg)
}

// Embed builds the Sampled stage from a caller-supplied adjacency
// supermatrix of shape (L·N)×(T·N). Sampling options are ignored.
func Embed(p *sbm.Params, a mat.Matrix, opts ...Option) (*Sampled, error) {
	if p == nil {
		return nil, pipelineErrorf(opEmbed, ErrNilParams)
	}
	if a == nil {
		return nil, pipelineErrorf(opEmbed, fmt.Errorf("nil adjacency: %w", ErrShapeMismatch))
	}
	r, c := a.Dims()
	n := p.N()
	if r != p.Layers*n || c != p.Timesteps*n {
		return nil, pipelineErrorf(opEmbed, fmt.Errorf("adjacency %dx%d want %dx%d: %w",
			r, c, p.Layers*n, p.Timesteps*n, ErrShapeMismatch))
	}

	return embedWith(p, mat.DenseCopyOf(a), newConfig(opts...))
}

// embedWith runs the spectral primitive on a and assembles the stage value.
func embedWith(p *sbm.Params, a *mat.Dense, cfg config) (*Sampled, error) {
	e, err := embed.Both(a, cfg.dim)
	if err != nil {
		return nil, pipelineErrorf(opEmbed, err)
	}
	cfg.logger.Debug("embedded adjacency", slog.Int("dim", cfg.dim), slog.Any("singular", e.Singular))

	return &Sampled{
		Params:   p,
		A:        a,
		Left:     e.Left,
		Right:    e.Right,
		Singular: e.Singular,
		cfg:      cfg,
	}, nil
}

// Dim returns the embedding dimension d.
func (s *Sampled) Dim() int { return s.cfg.dim }

// LayerSlice returns the N×d rows of the left embedding that belong to layer l.
func (s *Sampled) LayerSlice(l int) *mat.Dense {
	n := s.Params.N()
	return s.Left.Slice(l*n, (l+1)*n, 0, s.cfg.dim).(*mat.Dense)
}

// TimeSlice returns the N×d rows of the right embedding that belong to timestep t.
func (s *Sampled) TimeSlice(t int) *mat.Dense {
	n := s.Params.N()
	return s.Right.Slice(t*n, (t+1)*n, 0, s.cfg.dim).(*mat.Dense)
}

// slices returns the per-layer or per-timestep views of one side.
func (s *Sampled) slices(side embed.Side) []*mat.Dense {
	if side == embed.Left {
		out := make([]*mat.Dense, s.Params.Layers)
		for l := range out {
			out[l] = s.LayerSlice(l)
		}
		return out
	}
	out := make([]*mat.Dense, s.Params.Timesteps)
	for t := range out {
		out[t] = s.TimeSlice(t)
	}

	return out
}
