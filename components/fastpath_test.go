package components_test

import (
	"testing"

	"github.com/katalvlaran/tda/complex"
	"github.com/katalvlaran/tda/components"
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

// pathGraph builds spec.md Scenario E: path 0-1-2-3, edge weights 1,2,3,
// vertex weights all 0.
func pathGraph(t *testing.T) *complex.Complex[float64] {
	t.Helper()
	c := complex.New[float64]()
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{2}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{3}, 0)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{0, 1}, 1)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{1, 2}, 2)))
	require.NoError(t, c.Push(mustSimplex(t, []uint64{2, 3}, 3)))

	return c
}

func TestFastPathScenarioE(t *testing.T) {
	c := pathGraph(t)
	identity := func(x float64) float64 { return x }

	dg, p, err := components.FastPath(c, identity, components.Traits{WithPairing: true})
	require.NoError(t, err)
	require.NotNil(t, p)

	require.Len(t, dg.Points, 4)
	assert.Equal(t, 1, dg.Betti())

	var finite []float64
	essentialSeen := false
	for _, pt := range dg.Points {
		if pt.Essential() {
			essentialSeen = true
			assert.Equal(t, 0.0, pt.Birth)

			continue
		}
		assert.Equal(t, 0.0, pt.Birth)
		finite = append(finite, pt.Death)
	}
	assert.True(t, essentialSeen)
	assert.ElementsMatch(t, []float64{1, 2, 3}, finite)
}

func TestFastPathWithoutPairingOmitsIt(t *testing.T) {
	c := pathGraph(t)
	identity := func(x float64) float64 { return x }

	dg, p, err := components.FastPath(c, identity, components.Traits{})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Len(t, dg.Points, 4)
}
