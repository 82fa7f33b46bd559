// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// rng.go — deterministic random sources for sampling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package sbm

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// bernoulli draws one 0/1 outcome with success probability p.
// p∈{0,1} never touches rng, so degenerate models sample without a source.
func bernoulli(rng *rand.Rand, p float64) (float64, error) {
	switch {
	case p <= probMin:
		return 0, nil
	case p >= probMax:
		return 1, nil
	case rng == nil:
		return 0, ErrNeedRandSource
	}
	if rng.Float64() < p {
		return 1, nil
	}

	return 0, nil
}
