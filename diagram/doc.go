// Package diagram implements PersistenceDiagram (spec.md §4.9): a
// per-dimension multiset of 2D points built from a pairing.Pairing and
// the data values of the simplices (or raw function values) it refers to.
//
// Diagram construction is literal: a pairing that places a dimension-1
// birth and death at the same data value produces a diagonal (x, x)
// point in the dimension-1 diagram. Callers wanting the conventional
// "diagonal points are noise" view call RemoveDiagonal explicitly — it
// is never applied implicitly during construction.
package diagram
