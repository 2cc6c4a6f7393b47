package column

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// BitmapColumns is the set-backed Column: each column is a compressed Z/2
// vector stored as a *roaring.Bitmap. MaximumIndex is Bitmap.Maximum;
// AddColumns is a single Bitmap.Xor call, which is exactly symmetric
// difference — the representation and the operation line up perfectly.
//
// Row indices are truncated to 32 bits (roaring.Bitmap's native width).
// Complexes with more than 2^32 simplices should use VectorColumns instead;
// this is a deliberate, documented capacity limit, not a silent truncation
// bug — SetColumn returns ErrOutOfRange if any row overflows uint32.
type BitmapColumns struct {
	bitmaps []*roaring.Bitmap
	dims    []int
}

// NewBitmapColumns allocates n empty columns of dimension 0.
func NewBitmapColumns(n int) *BitmapColumns {
	bitmaps := make([]*roaring.Bitmap, n)
	for i := range bitmaps {
		bitmaps[i] = roaring.New()
	}

	return &BitmapColumns{bitmaps: bitmaps, dims: make([]int, n)}
}

var _ Column = (*BitmapColumns)(nil)

// NumColumns implements Column.
func (c *BitmapColumns) NumColumns() int { return len(c.bitmaps) }

// SetNumColumns implements Column.
func (c *BitmapColumns) SetNumColumns(n int) {
	if n <= len(c.bitmaps) {
		c.bitmaps = c.bitmaps[:n]
		c.dims = c.dims[:n]

		return
	}
	grown := make([]*roaring.Bitmap, n)
	copy(grown, c.bitmaps)
	for i := len(c.bitmaps); i < n; i++ {
		grown[i] = roaring.New()
	}
	grownDims := make([]int, n)
	copy(grownDims, c.dims)
	c.bitmaps, c.dims = grown, grownDims
}

// SetColumn implements Column. rows must be sorted ascending and
// duplicate-free and must each fit in 32 bits.
func (c *BitmapColumns) SetColumn(j int, rows []Index) error {
	if j < 0 || j >= len(c.bitmaps) {
		return ErrOutOfRange
	}
	bm := roaring.New()
	var prev Index
	for i, r := range rows {
		if r > uint64(^uint32(0)) {
			return ErrOutOfRange
		}
		if i > 0 && r <= prev {
			return ErrUnsorted
		}
		bm.Add(uint32(r))
		prev = r
	}
	c.bitmaps[j] = bm

	return nil
}

// GetColumn implements Column, returning rows in ascending order.
func (c *BitmapColumns) GetColumn(j int) []Index {
	if j < 0 || j >= len(c.bitmaps) {
		return nil
	}
	arr := c.bitmaps[j].ToArray()
	out := make([]Index, len(arr))
	for i, v := range arr {
		out[i] = Index(v)
	}

	return out
}

// ClearColumn implements Column.
func (c *BitmapColumns) ClearColumn(j int) {
	if j < 0 || j >= len(c.bitmaps) {
		return
	}
	c.bitmaps[j].Clear()
}

// MaximumIndex implements Column.
func (c *BitmapColumns) MaximumIndex(j int) (Index, bool) {
	if j < 0 || j >= len(c.bitmaps) || c.bitmaps[j].IsEmpty() {
		return 0, false
	}

	return Index(c.bitmaps[j].Maximum()), true
}

// AddColumns implements Column: dst ^= src via Bitmap.Xor.
func (c *BitmapColumns) AddColumns(src, dst int) error {
	if src < 0 || src >= len(c.bitmaps) || dst < 0 || dst >= len(c.bitmaps) {
		return ErrOutOfRange
	}
	c.bitmaps[dst].Xor(c.bitmaps[src])

	return nil
}

// Dim implements Column.
func (c *BitmapColumns) Dim(j int) int {
	if j < 0 || j >= len(c.dims) {
		return 0
	}

	return c.dims[j]
}

// SetDim implements Column.
func (c *BitmapColumns) SetDim(j int, d int) {
	if j < 0 || j >= len(c.dims) {
		return
	}
	c.dims[j] = d
}

// MaxDim implements Column.
func (c *BitmapColumns) MaxDim() int {
	max := 0
	for _, d := range c.dims {
		if d > max {
			max = d
		}
	}

	return max
}
