// Package pairing implements PersistencePairing (spec.md §4.7): an
// index-only container of (birth, death) simplex-index pairs, consumable
// without the originating complex. Death may be bmatrix.Invalid, denoting
// an essential (unpaired) class.
package pairing
