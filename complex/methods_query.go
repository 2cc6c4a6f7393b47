package complex

import (
	"slices"

	"github.com/katalvlaran/tda/simplex"
)

// Vertices returns every distinct 0-simplex vertex id present in the
// complex, ascending. Complexity: O(V log V).
func (c *Complex[D]) Vertices() []uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]uint64, 0, len(c.byDim[0]))
	for _, pos := range c.byDim[0] {
		vs := c.filtration[pos].Vertices()
		if len(vs) == 1 {
			out = append(out, vs[0])
		}
	}
	slices.Sort(out)

	return out
}

// Contains reports whether a simplex with s's vertex set is present,
// irrespective of data value. Complexity: O(1) expected (map lookup).
func (c *Complex[D]) Contains(s simplex.Simplex[D]) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.byKey[s.Key()]

	return ok
}

// Find returns the complex's stored simplex matching s's vertex set (with
// its current data value, which may differ from s.Data()) and whether one
// was found.
func (c *Complex[D]) Find(s simplex.Simplex[D]) (simplex.Simplex[D], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.byKey[s.Key()]
	if !ok {
		var zero simplex.Simplex[D]

		return zero, false
	}

	return c.filtration[pos], true
}

// Index returns the filtration position of the simplex matching s's
// vertex set.
func (c *Complex[D]) Index(s simplex.Simplex[D]) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.byKey[s.Key()]
	if !ok {
		return 0, ErrNotFound
	}

	return pos, nil
}

// At returns the simplex at filtration position i.
func (c *Complex[D]) At(i int) simplex.Simplex[D] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i < 0 || i >= len(c.filtration) {
		var zero simplex.Simplex[D]

		return zero
	}

	return c.filtration[i]
}

// Size returns the total number of simplices in the complex.
func (c *Complex[D]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.filtration)
}

// Dim returns the complex's dimension (the maximum simplex dimension).
// Fails with ErrEmptyComplex when the complex has no simplices.
func (c *Complex[D]) Dim() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.filtration) == 0 {
		return 0, ErrEmptyComplex
	}

	max := 0
	for d := range c.byDim {
		if len(c.byDim[d]) > 0 && d > max {
			max = d
		}
	}

	return max, nil
}

// Range returns every simplex of dimension d, in filtration order.
func (c *Complex[D]) Range(d int) []simplex.Simplex[D] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	positions := c.byDim[d]
	out := make([]simplex.Simplex[D], len(positions))
	for i, pos := range positions {
		out[i] = c.filtration[pos]
	}

	return out
}
