// SPDX-License-Identifier: MIT
// Package: dmprdpg/embed
//
// errors.go — sentinel errors for the embed package.

package embed

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates a non-positive embedding dimension.
	ErrBadDimension = errors.New("embed: embedding dimension must be > 0")

	// ErrNilMatrix indicates a nil or empty input matrix.
	ErrNilMatrix = errors.New("embed: nil or empty matrix")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("embed: singular value decomposition failed")

	// ErrUnknownSide indicates a Side value other than Left or Right.
	ErrUnknownSide = errors.New("embed: unknown embedding side")
)

// embedErrorf prefixes err with the operation tag.
func embedErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
