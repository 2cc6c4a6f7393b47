package column

import "errors"

// Sentinel errors shared by every Column implementation.
var (
	// ErrOutOfRange indicates a column index j was outside [0, NumColumns()),
	// or, from BitmapColumns.SetColumn, a row index that does not fit in 32
	// bits.
	ErrOutOfRange = errors.New("column: index out of range")

	// ErrUnsorted indicates SetColumn was given rows that were not sorted
	// ascending and duplicate-free.
	ErrUnsorted = errors.New("column: rows must be sorted ascending and duplicate-free")
)
