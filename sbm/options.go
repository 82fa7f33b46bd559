// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// options.go — functional options for sampling.
//
// Contract:
//   • Options are functional (type Option func(*sampleConfig)).
//   • Option constructors PANIC on meaningless inputs (nil RNG).
//   • Sampling itself never panics.
//   • Defaults are deterministic: seed 0 ⇒ fixed default seed, directed blocks.

package sbm

import "math/rand"

// Option customizes Sample / SampleSupermatrix.
type Option func(*sampleConfig)

// sampleConfig is the single source of truth for sampling knobs.
type sampleConfig struct {
	rng       *rand.Rand // random source; never nil after newSampleConfig
	symmetric bool       // draw u ≤ v only and mirror (undirected layers)
}

// WithSeed creates a seeded source. Same seed ⇒ same supermatrix.
func WithSeed(seed int64) Option {
	return func(c *sampleConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit source; callers own its seed policy.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sbm: WithRand(nil)")
	}
	return func(c *sampleConfig) {
		c.rng = r
	}
}

// WithSymmetric samples undirected blocks: entry (u,v) is drawn once for
// u ≤ v and mirrored to (v,u). Block matrices should be symmetric for this
// to be meaningful; the upper triangle of B is what gets used.
func WithSymmetric() Option {
	return func(c *sampleConfig) {
		c.symmetric = true
	}
}

// newSampleConfig applies opts over deterministic defaults (later wins).
func newSampleConfig(opts ...Option) sampleConfig {
	cfg := sampleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
