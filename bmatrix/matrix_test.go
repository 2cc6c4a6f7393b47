package bmatrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/tda/bmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleBoundary builds the boundary matrix of the closed triangle
// {0},{1},{2},{0,1},{0,2},{1,2},{0,1,2} in that filtration order.
func triangleBoundary(t *testing.T) *bmatrix.Matrix {
	t.Helper()
	m := bmatrix.New(7)
	// vertices: columns 0,1,2 are empty (dim 0).
	for j := 0; j < 3; j++ {
		m.SetDim(j, 0)
	}
	// edges {0,1}=3 -> {0,1}; {0,2}=4 -> {0,2}; {1,2}=5 -> {1,2}
	require.NoError(t, m.SetColumn(3, []bmatrix.Index{0, 1}))
	m.SetDim(3, 1)
	require.NoError(t, m.SetColumn(4, []bmatrix.Index{0, 2}))
	m.SetDim(4, 1)
	require.NoError(t, m.SetColumn(5, []bmatrix.Index{1, 2}))
	m.SetDim(5, 1)
	// triangle {0,1,2}=6 has boundary {edge01=3, edge02=4, edge12=5}
	require.NoError(t, m.SetColumn(6, []bmatrix.Index{3, 4, 5}))
	m.SetDim(6, 2)

	return m
}

func TestDualizeTwiceIsIdentity(t *testing.T) {
	m := triangleBoundary(t)
	dual := m.Dualize()
	assert.True(t, dual.Dualized())
	back := dual.Dualize()
	assert.False(t, back.Dualized())

	for j := 0; j < m.NumColumns(); j++ {
		assert.Equal(t, m.GetColumn(j), back.GetColumn(j), "column %d", j)
		assert.Equal(t, m.Dim(j), back.Dim(j), "dim %d", j)
	}
}

func TestDualizeBitmapBackend(t *testing.T) {
	vm := triangleBoundary(t)
	bm := bmatrix.New(vm.NumColumns(), bmatrix.WithBackend(bmatrix.BitmapBackend))
	for j := 0; j < vm.NumColumns(); j++ {
		require.NoError(t, bm.SetColumn(j, vm.GetColumn(j)))
		bm.SetDim(j, vm.Dim(j))
	}
	dual := bm.Dualize()
	back := dual.Dualize()
	for j := 0; j < vm.NumColumns(); j++ {
		assert.Equal(t, vm.GetColumn(j), back.GetColumn(j))
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	text := "0\n0\n0\n2 0 1\n2 0 2\n2 1 2\n3 3 4 5\n"
	m, err := bmatrix.Load(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 7, m.NumColumns())

	var buf strings.Builder
	require.NoError(t, bmatrix.Store(&buf, m))

	m2, err := bmatrix.Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	for j := 0; j < m.NumColumns(); j++ {
		assert.Equal(t, m.GetColumn(j), m2.GetColumn(j))
	}
}

func TestLoadRejectsDimensionMismatch(t *testing.T) {
	_, err := bmatrix.Load(strings.NewReader("2 0\n"))
	assert.ErrorIs(t, err, bmatrix.ErrBoundaryDimensionMismatch)
}

func TestLoadIgnoresBlankAndCommentLines(t *testing.T) {
	text := "# comment\n\n0\n\n# another\n"
	m, err := bmatrix.Load(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumColumns())
}

func TestAddColumnsAndMaximumIndex(t *testing.T) {
	m := bmatrix.New(3)
	require.NoError(t, m.SetColumn(0, []bmatrix.Index{0, 1}))
	require.NoError(t, m.SetColumn(1, []bmatrix.Index{1, 2}))
	require.NoError(t, m.AddColumns(0, 1))
	assert.Equal(t, []bmatrix.Index{0, 2}, m.GetColumn(1))
	row, valid := m.MaximumIndex(1)
	assert.True(t, valid)
	assert.Equal(t, bmatrix.Index(2), row)
}
