// Package simplex defines the Simplex type: an ordered, deduplicated vertex
// set carrying a single ordered data value, plus its boundary (the set of
// codimension-1 faces obtained by omitting one vertex at a time).
//
// A Simplex never mutates its vertex set after construction; only its data
// value (Simplex.SetData) may be reassigned, and a reassignment never
// participates in equality, ordering, or hashing — two simplices with the
// same vertices but different data values compare equal.
//
//	s, _ := simplex.New([]uint64{2, 0, 1}, 3.5) // canonicalized to {0,1,2}
//	s.Dim()                                     // 2
//	s.Boundary()                                // {1,2}, {0,2}, {0,1}
//
// Complexity: New is O(k log k) in the vertex count k (dedup + sort);
// Boundary is O(k^2) (materializes k faces of k-1 vertices each).
package simplex
