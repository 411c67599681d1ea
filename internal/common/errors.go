// Package common defines sentinel errors shared across the courier
// packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrPersistence = errors.New("persistence failure")

	// Coordinator-level errors.
	ErrValidation = errors.New("validation error")

	// Backup errors.
	ErrImport = errors.New("malformed backup document")
)
