package convert

import "errors"

// Sentinel errors for complex-to-boundary-matrix conversion.
var (
	// ErrBrokenFiltration indicates a simplex's codimension-1 face was not
	// found at an earlier filtration position than the simplex itself.
	ErrBrokenFiltration = errors.New("convert: filtration is not closed under taking faces")

	// ErrMissingFace indicates a simplex's codimension-1 face is absent
	// from the complex entirely.
	ErrMissingFace = errors.New("convert: referenced face is not present in the complex")
)
