package compute

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/tda/bmatrix"
	"github.com/katalvlaran/tda/pairing"
)

// Options controls ComputePairing's treatment of essential creators.
type Options struct {
	// IncludeAllUnpaired keeps every essential candidate, including
	// non-dualized columns at the maximum dimension (which would
	// otherwise be dropped per spec.md §4.8, since they cannot be
	// destroyed by any higher simplex absent from the complex).
	IncludeAllUnpaired bool
}

// DefaultOptions returns the spec.md §4.8 default: max-dimension
// essentials are dropped in the non-dualized case.
func DefaultOptions() Options { return Options{} }

// ComputePairing reads off the persistence pairing of a reduced boundary
// matrix m (spec.md §4.8). N = m.NumColumns(); column j's lowest nonzero
// row, if any, pairs (row, j); empty columns become essential-candidate
// creators, conditionally dropped at the maximum dimension in the
// non-dualized case unless opts.IncludeAllUnpaired is set. If m is
// dualized, every emitted index pair is remapped to the original index
// space and birth/death are swapped.
func ComputePairing(m *bmatrix.Matrix, opts Options) (*pairing.Pairing, error) {
	n := m.NumColumns()
	maxDim := m.MaxColumnDim()
	dualized := m.Dualized()

	candidates := mapset.NewThreadUnsafeSet[bmatrix.Index]()
	p := pairing.New()

	for j := 0; j < n; j++ {
		row, ok := m.MaximumIndex(j)
		if ok {
			candidates.Remove(row)
			birth, death := remapPair(row, bmatrix.Index(j), n, dualized)
			p.AppendPair(birth, death)

			continue
		}

		if dualized || opts.IncludeAllUnpaired || m.Dim(j) < maxDim {
			candidates.Add(bmatrix.Index(j))
		}
	}

	remaining := candidates.ToSlice()
	slices.Sort(remaining)
	for _, c := range remaining {
		birth := remapEssential(c, n, dualized)
		p.AppendEssential(birth)
	}

	p.Sort()

	return p, nil
}

// remapPair translates a reduced pair (i, j) — i the pivot row, j the
// column — into the original complex's index space, swapping birth/death
// when dualized (spec.md §4.8's dualization remap).
func remapPair(i, j bmatrix.Index, n int, dualized bool) (birth, death bmatrix.Index) {
	if !dualized {
		return i, j
	}
	N := bmatrix.Index(n)

	return N - 1 - j, N - 1 - i
}

// remapEssential translates an essential candidate index into the
// original complex's index space.
func remapEssential(c bmatrix.Index, n int, dualized bool) bmatrix.Index {
	if !dualized {
		return c
	}

	return bmatrix.Index(n) - 1 - c
}
