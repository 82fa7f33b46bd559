// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// options.go — functional options for the pipeline.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (d ≤ 0, nil logger/rng).
//   • Defaults: d = DefaultDim, seed 0 (fixed default stream), directed
//     blocks, silent logger.

package dmpsbm

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/dmprdpg/sbm"
)

// DefaultDim is the embedding dimension used when WithDim is not given.
const DefaultDim = 4

// Option customizes the pipeline.
type Option func(*config)

// config aggregates pipeline knobs; carried by value through the stages.
type config struct {
	dim        int
	sampleOpts []sbm.Option
	logger     *slog.Logger
}

// WithDim sets the embedding dimension d. Panics if d ≤ 0.
func WithDim(d int) Option {
	if d <= 0 {
		panic("dmpsbm: WithDim(d<=0)")
	}
	return func(c *config) {
		c.dim = d
	}
}

// WithSeed seeds the adjacency sampler.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.sampleOpts = append(c.sampleOpts, sbm.WithSeed(seed))
	}
}

// WithRand supplies an explicit random source to the sampler. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dmpsbm: WithRand(nil)")
	}
	return func(c *config) {
		c.sampleOpts = append(c.sampleOpts, sbm.WithRand(r))
	}
}

// WithSymmetric samples undirected blocks.
func WithSymmetric() Option {
	return func(c *config) {
		c.sampleOpts = append(c.sampleOpts, sbm.WithSymmetric())
	}
}

// WithLogger enables debug-level stage tracing. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dmpsbm: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	c := config{dim: DefaultDim}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}
