package complex

import (
	"cmp"
	"sync"

	"github.com/katalvlaran/tda/simplex"
)

// Complex is a filtered simplicial complex: an ordered sequence of
// simplices (the filtration) together with a lexicographic index and a
// per-dimension index, all kept consistent under a single lock.
//
// The zero value is not usable; construct with New.
type Complex[D cmp.Ordered] struct {
	mu sync.RWMutex

	filtration []simplex.Simplex[D] // position == filtration index
	byKey      map[string]int       // vertex-set key -> position
	byDim      map[int][]int        // dimension -> positions, filtration order preserved within each bucket
}

// Option configures a Complex at construction time.
type Option[D cmp.Ordered] func(*Complex[D])

// WithCapacity pre-sizes the backing filtration slice and lexicographic
// index, avoiding reallocation when the final simplex count is known in
// advance.
func WithCapacity[D cmp.Ordered](n int) Option[D] {
	return func(c *Complex[D]) {
		if n > 0 {
			c.filtration = make([]simplex.Simplex[D], 0, n)
			c.byKey = make(map[string]int, n)
		}
	}
}

// New creates an empty Complex. By default no capacity is pre-allocated.
//
// Complexity: O(1) without WithCapacity, O(n) with it.
func New[D cmp.Ordered](opts ...Option[D]) *Complex[D] {
	c := &Complex[D]{
		byKey: make(map[string]int),
		byDim: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
