// Package column defines the Column contract shared by all boundary-matrix
// representations (spec.md §4.2): a fixed number of sparse columns over
// Z/2, each with a small dimension tag, supporting lowest-index query,
// symmetric-difference ("xor"), clear, set, and get.
//
// Two implementations satisfy Column identically:
//
//   - VectorColumns: one sorted ascending []Index per column. AddColumns
//     merges via linear symmetric difference.
//   - BitmapColumns: one *roaring.Bitmap per column (compressed Z/2 vector).
//     AddColumns is a single Bitmap.Xor call; MaximumIndex is Bitmap.Maximum.
//
// Both are safe to use interchangeably behind the Column interface; reduce
// and bmatrix depend on the interface only, never on a concrete type
// (spec.md §9, "polymorphism over column storage").
package column
