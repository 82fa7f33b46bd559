// Package embed computes low-rank spectral embeddings of real matrices.
//
// Given a matrix M (r×c) with thin SVD M = U·Σ·Vᵀ, the d-dimensional
// adjacency spectral embedding is
//
//	Left  = U_d · Σ_d^{1/2}   (one row per row of M)
//	Right = V_d · Σ_d^{1/2}   (one row per column of M)
//
// so that Left·Rightᵀ is the best rank-d approximation of M.
//
// Embeddings are identifiable only up to an orthogonal transformation; this
// package fixes the sign of every component (largest-magnitude entry of the
// left singular vector is positive) so output is deterministic for a given
// input, but callers comparing two embeddings must still align them (see
// package procrustes).
//
// When d exceeds min(r,c) the trailing components are zero columns: the
// matrix has no further spectrum to embed.
package embed
