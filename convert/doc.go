// Package convert builds a bmatrix.Matrix from a complex.Complex
// (spec.md §4.6): column j of the resulting matrix holds the filtration
// positions of the codimension-1 faces of the simplex at position j, and
// Dim(j) is that simplex's dimension.
//
// Conversion is a read-only projection: it validates the filtration is
// face-closed (every face precedes its coface) before allocating
// anything, matching the teacher's fail-fast-before-allocate staging in
// matrix/builder.go.
package convert
