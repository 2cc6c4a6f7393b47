// Package components implements the 0-dimensional connected-components
// fast path (spec.md §4.10): a disjoint-set forest with path compression,
// plus a FastPath entry point that computes 0-dimensional persistence
// directly from a filtered complex's vertices and edges, bypassing the
// boundary-matrix/reduction pipeline entirely.
//
// Unlike a classical union-find, merge direction here is never chosen by
// rank: the elder rule (spec.md §4.10) requires the filtration-younger
// component to be absorbed into the filtration-elder one, so the caller
// (FastPath) decides direction and UnionFind only maintains path
// compression and each root's oldest original index.
package components
