package complex_test

import (
	"testing"

	"github.com/katalvlaran/tda/complex"
	"github.com/katalvlaran/tda/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSimplex(t *testing.T, vs []uint64, data float64) simplex.Simplex[float64] {
	t.Helper()
	s, err := simplex.New(vs, data)
	require.NoError(t, err)

	return s
}

func TestPushAutoCreatesMissingFaces(t *testing.T) {
	c := complex.New[float64]()

	triangle := mustSimplex(t, []uint64{0, 1, 2}, 7)
	require.NoError(t, c.Push(triangle))

	// Every face, at every level, must have been auto-created with the
	// pushed simplex's own data value.
	for _, vs := range [][]uint64{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}} {
		found, ok := c.Find(mustSimplex(t, vs, 0))
		require.True(t, ok, "face %v must exist", vs)
		assert.Equal(t, 7.0, found.Data(), "face %v", vs)
	}
	assert.Equal(t, 7, c.Size())

	dim, err := c.Dim()
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	// Pushing the triangle again is still rejected as a duplicate.
	assert.ErrorIs(t, c.Push(triangle), complex.ErrDuplicateSimplex)
}

func TestPushLeavesExistingFaceDataUntouched(t *testing.T) {
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 1)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 2)))

	edge := mustSimplex(t, []uint64{0, 1}, 99)
	require.NoError(t, c.Push(edge))

	v0, ok := c.Find(mustSimplex(t, []uint64{0}, 0))
	require.True(t, ok)
	assert.Equal(t, 1.0, v0.Data())
}

func TestPushRejectsDuplicates(t *testing.T) {
	c := complex.New[float64]()
	v := mustSimplex(t, []uint64{0}, 0)
	require.NoError(t, c.Push(v))
	assert.ErrorIs(t, c.Push(v), complex.ErrDuplicateSimplex)
}

func TestPushRejectsEmptySimplex(t *testing.T) {
	c := complex.New[float64]()
	var empty simplex.Simplex[float64]
	assert.ErrorIs(t, c.Push(empty), complex.ErrEmptySimplex)
}

func TestContainsFindIndexAt(t *testing.T) {
	c := complex.New[float64]()
	v0 := mustSimplex(t, []uint64{0}, 1.5)
	require.NoError(t, c.Push(v0))

	assert.True(t, c.Contains(mustSimplex(t, []uint64{0}, 0)))
	found, ok := c.Find(mustSimplex(t, []uint64{0}, 0))
	require.True(t, ok)
	assert.Equal(t, 1.5, found.Data())

	idx, err := c.Index(mustSimplex(t, []uint64{0}, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.True(t, simplex.Equal(v0, c.At(idx)))
}

func TestRangeAndDim(t *testing.T) {
	c := triangleComplex(t)

	assert.Len(t, c.Range(0), 3)
	assert.Len(t, c.Range(1), 3)
	assert.Len(t, c.Range(2), 1)

	dim, err := c.Dim()
	require.NoError(t, err)
	assert.Equal(t, 2, dim)
}

func TestDimOnEmptyComplex(t *testing.T) {
	c := complex.New[float64]()
	_, err := c.Dim()
	assert.ErrorIs(t, err, complex.ErrEmptyComplex)
}

func TestRemoveShiftsIndices(t *testing.T) {
	c := complex.New[float64]()
	v0 := mustSimplex(t, []uint64{0}, 0)
	v1 := mustSimplex(t, []uint64{1}, 0)
	require.NoError(t, c.Push(v0))
	require.NoError(t, c.Push(v1))

	require.NoError(t, c.Remove(v0))
	assert.Equal(t, 1, c.Size())
	idx, err := c.Index(v1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestRemoveTransitivelyRemovesCofaces(t *testing.T) {
	c := triangleComplex(t)

	require.NoError(t, c.Remove(mustSimplex(t, []uint64{0}, 0)))

	// Removing vertex 0 invalidates edges {0,1} and {0,2} (and, through
	// them, the triangle {0,1,2}), leaving only vertex 1, vertex 2, and
	// edge {1,2}.
	assert.Equal(t, 3, c.Size())
	assert.False(t, c.Contains(mustSimplex(t, []uint64{0, 1}, 0)))
	assert.False(t, c.Contains(mustSimplex(t, []uint64{0, 2}, 0)))
	assert.False(t, c.Contains(mustSimplex(t, []uint64{0, 1, 2}, 0)))
	assert.True(t, c.Contains(mustSimplex(t, []uint64{1}, 0)))
	assert.True(t, c.Contains(mustSimplex(t, []uint64{2}, 0)))
	assert.True(t, c.Contains(mustSimplex(t, []uint64{1, 2}, 0)))
}

// triangleComplex builds the closed triangle {0,1,2} with all faces,
// pushed in a valid face-closed order.
func triangleComplex(t *testing.T) *complex.Complex[float64] {
	t.Helper()
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 1)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{2}, 2)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 1}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 2}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1, 2}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 1, 2}, 0)))

	return c
}

func TestSortRejectsFaceClosureViolation(t *testing.T) {
	c := triangleComplex(t)

	// Reverse order necessarily places the triangle before its edges.
	err := c.Sort(func(a, b simplex.Simplex[float64]) bool {
		return a.Size() > b.Size()
	})
	assert.ErrorIs(t, err, complex.ErrMissingFace)
}

func TestSortLowerStarFiltration(t *testing.T) {
	// spec.md Scenario F: weights [0,1,2] on vertices 0,1,2.
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 1)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{2}, 2)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 1}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 2}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1, 2}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 1, 2}, 0)))

	c.RecalculateWeights(false)

	err := c.Sort(func(a, b simplex.Simplex[float64]) bool {
		if a.Data() != b.Data() {
			return a.Data() < b.Data()
		}
		da, _ := a.Dim()
		db, _ := b.Dim()
		if da != db {
			return da < db
		}

		return simplex.Less(a, b)
	})
	require.NoError(t, err)

	want := [][]uint64{
		{0}, {1}, {0, 1}, {2}, {0, 2}, {1, 2}, {0, 1, 2},
	}
	for i, vs := range want {
		assert.Equal(t, vs, c.At(i).Vertices(), "position %d", i)
	}
}

func TestRecalculateWeightsIsIdempotent(t *testing.T) {
	c := triangleComplex(t)
	c.RecalculateWeights(false)
	first := make([]float64, c.Size())
	for i := 0; i < c.Size(); i++ {
		first[i] = c.At(i).Data()
	}

	c.RecalculateWeights(false)
	for i := 0; i < c.Size(); i++ {
		assert.Equal(t, first[i], c.At(i).Data(), "position %d", i)
	}
}

func TestRecalculateWeightsSkip1D(t *testing.T) {
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 5)))
	edge := mustSimplex(t, []uint64{0, 1}, 99)
	require.NoError(t, c.Push(edge))

	c.RecalculateWeights(true)

	got, ok := c.Find(edge)
	require.True(t, ok)
	assert.Equal(t, 99.0, got.Data(), "skip1D must leave edge weight untouched")
}

func TestRecalculateWeightsFromPartialMap(t *testing.T) {
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 0)))
	edge := mustSimplex(t, []uint64{0, 1}, 7)
	require.NoError(t, c.Push(edge))

	// vertex 1 is absent from the map; the max is taken over vertex 0 alone.
	c.RecalculateWeightsFrom(map[uint64]float64{0: 3}, false)

	got, ok := c.Find(edge)
	require.True(t, ok)
	assert.Equal(t, 3.0, got.Data())
}

func TestRecalculateWeightsFromLeavesSimplexWhenAllVerticesMissing(t *testing.T) {
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 0)))
	edge := mustSimplex(t, []uint64{0, 1}, 7)
	require.NoError(t, c.Push(edge))

	c.RecalculateWeightsFrom(map[uint64]float64{}, false)

	got, ok := c.Find(edge)
	require.True(t, ok)
	assert.Equal(t, 7.0, got.Data())
}
