package reduce

import "github.com/katalvlaran/tda/bmatrix"

// Algorithm selects which reduction strategy Reduce runs.
type Algorithm int

const (
	// Standard processes columns 0..N-1 in order, chasing pivots without
	// regard to dimension (spec.md §4.4.1).
	Standard Algorithm = iota
	// Twist processes columns by decreasing dimension and clears a row as
	// soon as it becomes a pivot (spec.md §4.4.2).
	Twist
)

// Reduce transforms m in place into reduced form using algo. Reduction
// cannot fail on a well-formed matrix (spec.md §4.4.4); the only precondition
// is that every stored row in column j corresponds to a simplex of
// dimension Dim(j)-1, which convert.ToBoundaryMatrix guarantees.
func Reduce(m *bmatrix.Matrix, algo Algorithm) {
	switch algo {
	case Twist:
		reduceTwist(m)
	default:
		reduceStandard(m)
	}
}

// pivotTable maps a row index to the column that currently owns it as its
// pivot (lowest/maximum stored row index).
type pivotTable map[bmatrix.Index]int

// chasePivot repeatedly adds the column owning j's current pivot into j
// until j is empty or its pivot is unclaimed, then claims the pivot for j
// if one remains. It returns the row claimed and whether one was claimed.
//
// Termination: each iteration either empties column j or strictly
// decreases its pivot (the newly-added column's pivot row is, by
// induction, already claimed at a strictly smaller index than j's current
// one would otherwise persist as — see spec.md §4.4.3), so the loop
// terminates.
func chasePivot(m *bmatrix.Matrix, L pivotTable, j int) (bmatrix.Index, bool) {
	for {
		row, ok := m.MaximumIndex(j)
		if !ok {
			return 0, false
		}
		owner, claimed := L[row]
		if !claimed || owner == j {
			return row, true
		}
		_ = m.AddColumns(owner, j)
	}
}

func reduceStandard(m *bmatrix.Matrix) {
	L := make(pivotTable)
	n := m.NumColumns()
	for j := 0; j < n; j++ {
		row, ok := chasePivot(m, L, j)
		if ok {
			L[row] = j
		}
	}
}

func reduceTwist(m *bmatrix.Matrix) {
	L := make(pivotTable)
	n := m.NumColumns()
	maxDim := m.MaxColumnDim()

	// Bucket column indices by dimension once, up front, so each dimension
	// pass is a simple slice scan rather than a full rescan of all columns.
	buckets := make([][]int, maxDim+1)
	for j := 0; j < n; j++ {
		d := m.Dim(j)
		if d >= 0 && d <= maxDim {
			buckets[d] = append(buckets[d], j)
		}
	}

	for d := maxDim; d >= 1; d-- {
		for _, j := range buckets[d] {
			row, ok := chasePivot(m, L, j)
			if !ok {
				continue
			}
			L[row] = j
			// The row is now known to be a boundary (reducible to zero);
			// clearing it avoids redundant future work (spec.md §4.4.2).
			m.ClearColumn(int(row))
		}
	}
}
