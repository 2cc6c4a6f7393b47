// Package complex implements Complex (spec.md §4.5): a filtered simplicial
// complex held in three coordinated views over one filtration-ordered
// backing slice —
//
//   - filtration order: the slice itself, position == filtration index;
//   - lexicographic index: byKey, a vertex-set key to position map, used
//     by Contains/Find/Index and by face-closure validation in Push;
//   - dimension buckets: byDim, position lists grouped by simplex
//     dimension, rebuilt whenever filtration order changes.
//
// All three views move together under a single sync.RWMutex; there is no
// per-view locking, because a caller observing one view mid-update would
// see an inconsistent complex (spec.md §5, §9).
package complex
