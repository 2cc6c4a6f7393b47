// Package bmatrix implements the boundary matrix (spec.md §3, §4.3): a
// fixed-column-count wrapper around a column.Column, tracking a per-column
// dimension and a dualized flag.
//
// Matrix is reduction-agnostic: the reduce package mutates it in place via
// the column.Column contract alone. Dualize computes the anti-transpose
// (the cohomological dual), which is typically dramatically cheaper to
// reduce. Load/Store implement the text boundary-list format of spec.md §6.
package bmatrix
