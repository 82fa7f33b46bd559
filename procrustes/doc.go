// Package procrustes solves the orthogonal Procrustes problem and scores the
// residual misalignment.
//
// Problem:
//
//	Given A, B ∈ ℝ^{n×d}, find R ∈ O(d) minimising ‖A·R − B‖_F.
//
// Solution (Schönemann 1966):
//
//	Aᵀ·B = U·Σ·Vᵀ   ⇒   R = U·Vᵀ
//
// The package also exposes SquaredError (Σ (A−B)², the squared Frobenius
// distance) and IsOrthogonal, a tolerance check of Rᵀ·R ≈ I.
//
// ⚙️ Usage:
//
//	R, err := procrustes.Solve(theory, centroids)
//	aligned, err := procrustes.Apply(theory, R)
//	e, err := procrustes.SquaredError(aligned, centroids)
package procrustes
