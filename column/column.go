package column

import "math"

// Index is an unsigned row/column identifier wide enough to index every
// simplex in a complex. Invalid denotes "no column" / "unpaired".
type Index = uint64

// Invalid is the sentinel INVALID_INDEX of spec.md §3.
const Invalid Index = math.MaxUint64

// Column is the storage-agnostic contract every boundary-matrix
// representation must satisfy. All implementations preserve: columns are
// always sorted when read back via GetColumn; duplicates never survive
// (two equal row indices cancel mod 2, so AddColumns must toggle, not
// append).
type Column interface {
	// NumColumns returns the number of columns currently allocated.
	NumColumns() int

	// SetNumColumns grows or shrinks the column count. Growing appends
	// empty columns of dimension 0; shrinking discards trailing columns.
	SetNumColumns(n int)

	// SetColumn replaces column j's contents with rows, which must already
	// be sorted ascending and duplicate-free (callers that cannot guarantee
	// this should sort first; SetColumn does not re-sort for them).
	SetColumn(j int, rows []Index) error

	// GetColumn returns the sorted row indices of column j. The returned
	// slice is owned by the caller.
	GetColumn(j int) []Index

	// ClearColumn empties column j in place.
	ClearColumn(j int)

	// MaximumIndex returns the greatest row index stored in column j and
	// valid=true, or valid=false if column j is empty.
	MaximumIndex(j int) (row Index, valid bool)

	// AddColumns computes dst ^= src (symmetric difference) in place,
	// leaving src untouched. Complexity must be O(|src|+|dst|) or better.
	AddColumns(src, dst int) error

	// Dim returns column j's declared simplex dimension.
	Dim(j int) int

	// SetDim sets column j's declared simplex dimension.
	SetDim(j int, d int)

	// MaxDim returns the maximum Dim(j) over all columns (0 if none set).
	MaxDim() int
}
