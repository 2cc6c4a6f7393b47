package complex

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/tda/simplex"
)

// Sort reorders the filtration according to less (less(a, b) true means a
// must precede b) and rebuilds the lexicographic and dimension indices to
// match. The reordering is rejected with ErrMissingFace, leaving the
// complex untouched, if it would place any simplex before one of its own
// codimension-1 faces — Sort must never produce a filtration that is no
// longer closed under taking faces (spec.md §4.5.3).
//
// Complexity: O(n log n) for the sort, O(n * k) for the closure check
// afterwards (k = max simplex size).
func (c *Complex[D]) Sort(less func(a, b simplex.Simplex[D]) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.filtration)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(c.filtration[order[i]], c.filtration[order[j]])
	})

	newFiltration := make([]simplex.Simplex[D], n)
	for newIdx, oldIdx := range order {
		newFiltration[newIdx] = c.filtration[oldIdx]
	}

	if err := validateClosure(newFiltration); err != nil {
		return err
	}

	c.filtration = newFiltration
	c.byKey = make(map[string]int, n)
	for pos, s := range c.filtration {
		c.byKey[s.Key()] = pos
	}
	c.rebuildDimBucketsLocked()

	return nil
}

// validateClosure reports ErrMissingFace if any simplex in filtration
// precedes one of its own codimension-1 faces.
func validateClosure[D cmp.Ordered](filtration []simplex.Simplex[D]) error {
	seen := make(map[string]bool, len(filtration))
	for _, s := range filtration {
		if s.Size() > 1 {
			faces, err := s.Boundary()
			if err != nil {
				return err
			}
			for _, f := range faces {
				if !seen[f.Key()] {
					return ErrMissingFace
				}
			}
		}
		seen[s.Key()] = true
	}

	return nil
}
