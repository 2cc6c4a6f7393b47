package bmatrix

import "github.com/katalvlaran/tda/column"

// Index is re-exported from column for callers that only need the boundary
// matrix surface and should not have to import column directly.
type Index = column.Index

// Invalid is the sentinel INVALID_INDEX of spec.md §3.
const Invalid = column.Invalid

// Backend selects which column.Column implementation a new Matrix wraps.
type Backend int

const (
	// VectorBackend stores each column as a sorted []Index (default).
	VectorBackend Backend = iota
	// BitmapBackend stores each column as a compressed roaring.Bitmap.
	BitmapBackend
)

// Option configures a Matrix at construction time.
type Option func(*config)

type config struct {
	backend Backend
}

// WithBackend selects the column storage backend. Default: VectorBackend.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// Matrix is the boundary matrix of spec.md §3/§4.3: N columns of a
// column.Column, each with a declared dimension, plus a dualized flag.
type Matrix struct {
	cols     column.Column
	dualized bool
}

// New allocates an N-column Matrix with all columns empty and of
// dimension 0.
func New(n int, opts ...Option) *Matrix {
	cfg := config{backend: VectorBackend}
	for _, opt := range opts {
		opt(&cfg)
	}

	var cols column.Column
	switch cfg.backend {
	case BitmapBackend:
		cols = column.NewBitmapColumns(n)
	default:
		cols = column.NewVectorColumns(n)
	}

	return &Matrix{cols: cols}
}

// FromColumns wraps an already-built column.Column as a Matrix, for callers
// that populate a column.Column directly. The result is not dualized.
func FromColumns(cols column.Column) *Matrix {
	return &Matrix{cols: cols}
}

// NumColumns returns N.
func (m *Matrix) NumColumns() int { return m.cols.NumColumns() }

// SetColumn sets column j's boundary rows (must be sorted, duplicate-free,
// each < NumColumns()).
func (m *Matrix) SetColumn(j int, rows []Index) error {
	for _, r := range rows {
		if r >= Index(m.cols.NumColumns()) {
			return ErrInvalidInput
		}
	}

	return m.cols.SetColumn(j, rows)
}

// GetColumn returns column j's sorted row indices.
func (m *Matrix) GetColumn(j int) []Index { return m.cols.GetColumn(j) }

// ClearColumn empties column j.
func (m *Matrix) ClearColumn(j int) { m.cols.ClearColumn(j) }

// MaximumIndex returns the pivot (greatest row index) of column j.
func (m *Matrix) MaximumIndex(j int) (Index, bool) { return m.cols.MaximumIndex(j) }

// AddColumns computes dst ^= src in place.
func (m *Matrix) AddColumns(src, dst int) error { return m.cols.AddColumns(src, dst) }

// Dim returns column j's declared dimension.
func (m *Matrix) Dim(j int) int { return m.cols.Dim(j) }

// SetDim sets column j's declared dimension.
func (m *Matrix) SetDim(j int, d int) { m.cols.SetDim(j, d) }

// MaxColumnDim returns max_j Dim(j).
func (m *Matrix) MaxColumnDim() int { return m.cols.MaxDim() }

// Dualized reports whether this Matrix is the anti-transpose of some
// original matrix (i.e. whether Dualize has been called an odd number of
// times). The text format does not record the flag: Load always returns a
// non-dualized Matrix.
func (m *Matrix) Dualized() bool { return m.dualized }

// Columns exposes the underlying column.Column so reduce.Reduce can operate
// on it without bmatrix needing to re-expose every Column method it adds in
// the future.
func (m *Matrix) Columns() column.Column { return m.cols }
