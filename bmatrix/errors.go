package bmatrix

import "errors"

// Sentinel errors for boundary-matrix construction, loading, and queries.
var (
	// ErrBoundaryDimensionMismatch indicates a loaded text line declared
	// dimension d but supplied a row count other than d.
	ErrBoundaryDimensionMismatch = errors.New("bmatrix: boundary dimension mismatch")

	// ErrInvalidInput indicates malformed matrix text input (non-integer
	// token, negative dimension, unsorted row list, duplicate row).
	ErrInvalidInput = errors.New("bmatrix: invalid input")
)
