// Package compute extracts a pairing.Pairing from a reduced bmatrix.Matrix
// (spec.md §4.8). It assumes m has already been reduced (reduce.Reduce);
// pairing extraction does not itself validate pivot uniqueness, since
// doing so would duplicate the scan the extraction already performs.
//
// When m.Dualized() is true, extracted indices are remapped back to the
// original (non-dualized) complex's index space, swapping which side of
// each pair is birth and which is death, per the dualization remap rule.
package compute
