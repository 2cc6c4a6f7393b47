package complex

import "errors"

// Sentinel errors for filtered-complex construction and queries.
var (
	// ErrEmptySimplex indicates a push/insert was attempted with a simplex
	// that has no vertices.
	ErrEmptySimplex = errors.New("complex: simplex has no vertices")

	// ErrDuplicateSimplex indicates Push/Insert was given a vertex set
	// already present in the complex.
	ErrDuplicateSimplex = errors.New("complex: simplex already present")

	// ErrMissingFace indicates Sort rejected a reordering because it would
	// place a simplex before one of its own codimension-1 faces. Push never
	// returns this: it auto-creates any missing face instead.
	ErrMissingFace = errors.New("complex: face closure violated")

	// ErrNotFound indicates a query or mutation referenced a simplex that
	// is not present in the complex.
	ErrNotFound = errors.New("complex: simplex not found")

	// ErrIndexOutOfRange indicates Replace was given a position outside
	// [0, Size()). At does not return it: it yields the zero Simplex instead.
	ErrIndexOutOfRange = errors.New("complex: index out of range")

	// ErrVertexSetMismatch indicates Replace was given a simplex whose
	// vertex set differs from the one at the target position.
	ErrVertexSetMismatch = errors.New("complex: replacement vertex set differs")

	// ErrEmptyComplex indicates Dim() was called on a complex with no
	// simplices, which has no well-defined dimension.
	ErrEmptyComplex = errors.New("complex: operation undefined on empty complex")
)
