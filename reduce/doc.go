// Package reduce implements the Standard and Twist boundary-matrix
// reduction algorithms of spec.md §4.4: in-place transformations of a
// bmatrix.Matrix into reduced form, in which no two non-empty columns
// share the same lowest (pivot) row index.
//
// Both variants maintain a pivot table mapping each row index to the
// unique column currently owning it, and repeatedly add a pivot-owning
// column into the column being processed until either the column empties
// or its pivot is unclaimed. Twist additionally processes columns by
// decreasing dimension and clears a row as soon as it is claimed as a
// pivot, since that row is then known to reduce to zero and needs no
// further work — this is what makes Twist empirically 5-10x faster than
// Standard on typical inputs (spec.md §5).
//
// Reduction is infallible on a well-formed boundary matrix (spec.md §4.4.4)
// and never allocates a growing data structure beyond the pivot table
// itself; N and every Dim(j) are left untouched.
package reduce
