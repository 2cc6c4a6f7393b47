package simplex

import (
	"cmp"
	"slices"
)

// Simplex is a finite, non-empty set of vertex identifiers together with an
// ordered data value of type D. Vertices are stored deduplicated and sorted
// ascending; this canonical order is the sole basis for equality and
// ordering — D never participates in either.
//
// The zero value Simplex[D]{} represents the empty simplex (no vertices);
// it is the "invalid" default produced by a zero-value declaration, and
// Dim/Boundary reject it with ErrEmptySimplex.
type Simplex[D cmp.Ordered] struct {
	vertices []uint64
	data     D
}

// New canonicalizes vertices (dedup + ascending sort) and returns a Simplex
// carrying data. The empty simplex (vertices deduplicates to length 0) is a
// legal result and represents the invalid/default simplex; New never
// returns an error for it, matching the source's convention that "empty is
// allowed and represents invalid in default-constructed cases."
//
// Complexity: O(k log k) where k = len(vertices).
func New[D cmp.Ordered](vertices []uint64, data D) (Simplex[D], error) {
	canon := canonicalize(vertices)

	return Simplex[D]{vertices: canon, data: data}, nil
}

// canonicalize returns a deduplicated, ascending-sorted copy of vs.
func canonicalize(vs []uint64) []uint64 {
	if len(vs) == 0 {
		return nil
	}
	out := slices.Clone(vs)
	slices.Sort(out)
	out = slices.Compact(out)

	return out
}

// Dim returns |vertices| - 1. Fails with ErrEmptySimplex for the empty
// simplex, which has no well-defined dimension.
//
// Complexity: O(1).
func (s Simplex[D]) Dim() (int, error) {
	if len(s.vertices) == 0 {
		return 0, ErrEmptySimplex
	}

	return len(s.vertices) - 1, nil
}

// Size returns the number of vertices (0 for the empty simplex).
func (s Simplex[D]) Size() int {
	return len(s.vertices)
}

// Vertices returns the canonical ascending vertex sequence. The returned
// slice is owned by the caller (a defensive copy of the internal storage).
func (s Simplex[D]) Vertices() []uint64 {
	return slices.Clone(s.vertices)
}

// Contains reports whether v is one of s's vertices.
//
// Complexity: O(log k) via binary search on the sorted vertex sequence.
func (s Simplex[D]) Contains(v uint64) bool {
	_, found := slices.BinarySearch(s.vertices, v)

	return found
}

// Data returns the simplex's current data value.
func (s Simplex[D]) Data() D {
	return s.data
}

// SetData returns a copy of s with its data value replaced by w. Vertex
// identity, ordering, and equality are unaffected — SetData never changes
// what Equal/Less observe.
func (s Simplex[D]) SetData(w D) Simplex[D] {
	s.data = w

	return s
}

// Boundary materializes the dim()+1 codimension-1 faces of s, each obtained
// by omitting exactly one vertex, in an order matching the vertex order
// (the face omitting vertices[i] appears at result index i). Each face
// inherits s's data value; callers needing boundary weights from the
// containing complex should look the face up there instead (the complex
// is the source of truth for face data once faces are closed).
//
// For a 0-simplex the boundary is empty. Fails with ErrEmptySimplex for the
// empty simplex itself.
//
// Complexity: O(k^2) — k faces, each a fresh (k-1)-length slice.
func (s Simplex[D]) Boundary() ([]Simplex[D], error) {
	if len(s.vertices) == 0 {
		return nil, ErrEmptySimplex
	}
	if len(s.vertices) == 1 {
		return nil, nil
	}

	faces := make([]Simplex[D], len(s.vertices))
	for i := range s.vertices {
		face := make([]uint64, 0, len(s.vertices)-1)
		face = append(face, s.vertices[:i]...)
		face = append(face, s.vertices[i+1:]...)
		faces[i] = Simplex[D]{vertices: face, data: s.data}
	}

	return faces, nil
}

// Key returns a canonical string key over the vertex set alone, suitable
// for use as a lexicographic lookup key (map key) that ignores the data
// value. Two simplices with the same vertex set always produce the same
// Key, regardless of D or of the current data value.
func (s Simplex[D]) Key() string {
	return vertexKey(s.vertices)
}

// Equal reports whether a and b have the same vertex set, ignoring data.
func Equal[D cmp.Ordered](a, b Simplex[D]) bool {
	return slices.Equal(a.vertices, b.vertices)
}

// Less implements the lexicographic order on vertex sequences used for the
// lexicographic view (spec.md §3): shorter-and-equal-prefix sorts first,
// ties elsewhere broken index by index.
func Less[D cmp.Ordered](a, b Simplex[D]) bool {
	return slices.Compare(a.vertices, b.vertices) < 0
}
