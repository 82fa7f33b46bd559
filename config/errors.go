// SPDX-License-Identifier: MIT
// Package: dmprdpg/config
//
// errors.go — sentinel errors for configuration loading.

package config

import "errors"

var (
	// ErrInvalidConfig indicates a document that fails structural validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrDuplicateBlock indicates two block entries for the same (layer, time).
	ErrDuplicateBlock = errors.New("config: duplicate block entry")
)
