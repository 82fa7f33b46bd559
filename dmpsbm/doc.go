// Package dmpsbm runs the dynamic multi-layer SBM analysis pipeline:
//
//	Sample → Centroids → Align → Metrics
//
// Each stage is a method on the value produced by the previous one, so the
// pipeline order is enforced by the types:
//
//	s, err := dmpsbm.Sample(params, dmpsbm.WithSeed(42))   // *Sampled
//	c, err := s.Centroids()                                  // *Centroided
//	a, err := c.Align()                                      // *Aligned
//	fmt.Println(a.Error)
//
// Stage values are never mutated after construction; every stage returns
// fresh matrices.
//
// Stages:
//   - Sampled: adjacency supermatrix A and its left/right spectral embeddings.
//   - Centroided: per-slice, per-community mean embedding vectors.
//   - Theoretical: embedding of the block-probability supermatrix.
//   - Rotations: orthogonal Procrustes maps theory → centroids.
//   - Aligned: rotated theory and the total squared alignment error.
//
// Diagnostics (Variances, QQ, Scatter) only read stage values and return
// data for a caller-controlled reporting step; nothing in this package prints.
//
// Model is a mutable facade over the same stages for callers that prefer a
// single object with ordered method calls. It reports out-of-order calls with
// ErrNotSampled, ErrNoCentroids and ErrNotAligned.
//
// Precondition: every layer/timestep slice shares the community labelling
// derived from Params.Groups. The embedding dimension defaults to 4 and is
// configurable with WithDim.
package dmpsbm
