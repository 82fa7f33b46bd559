// SPDX-License-Identifier: MIT
// Package: dmprdpg/procrustes
//
// errors.go — sentinel errors for the procrustes package.

package procrustes

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("procrustes: nil matrix")

	// ErrDimensionMismatch indicates operands of incompatible shapes.
	ErrDimensionMismatch = errors.New("procrustes: dimension mismatch")

	// ErrSVDFailed indicates that the cross-covariance SVD did not converge.
	ErrSVDFailed = errors.New("procrustes: singular value decomposition failed")
)

// procrustesErrorf prefixes err with the operation tag.
func procrustesErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
