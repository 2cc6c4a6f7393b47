package complex

import (
	"github.com/katalvlaran/tda/simplex"
)

// Push appends s to the filtration after validating:
//   - s is non-empty (ErrEmptySimplex);
//   - s is not already present (ErrDuplicateSimplex).
//
// Face closure is maintained, not enforced: any codimension-1 face of s not
// already present is itself pushed first (recursively, so a newly created
// face's own faces are closed too), carrying data value s.Data(), exactly as
// spec.md §4.5 describes "push triggers face closure" and the source this
// is adapted from (checkAndRestoreValidity) auto-creates rather than
// rejects missing faces.
//
// Complexity: O(k) face checks of O(1) expected each in the common already-closed
// case, k = s.Size(); O(2^k) in the worst case where every face at every
// level must itself be created.
func (c *Complex[D]) Push(s simplex.Simplex[D]) error {
	if s.Size() == 0 {
		return ErrEmptySimplex
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pushLocked(s)
}

// pushLocked appends s, first auto-creating any missing codimension-1 face.
// Caller must hold c.mu for writing.
func (c *Complex[D]) pushLocked(s simplex.Simplex[D]) error {
	if _, exists := c.byKey[s.Key()]; exists {
		return ErrDuplicateSimplex
	}
	if s.Size() > 1 {
		faces, err := s.Boundary()
		if err != nil {
			return err
		}
		for _, f := range faces {
			if _, ok := c.byKey[f.Key()]; !ok {
				if err := c.pushLocked(f); err != nil {
					return err
				}
			}
		}
	}

	c.appendLocked(s)

	return nil
}

// PushWithoutValidation appends s to the filtration without checking
// duplication or face closure, trusting the caller to maintain those
// invariants itself. It still rejects the empty simplex, which can never
// be a meaningful filtration element.
//
// Intended use: bulk-loading a filtration already known to be well-formed
// (e.g. freshly converted from an external source), where per-element
// validation would be pure overhead.
func (c *Complex[D]) PushWithoutValidation(s simplex.Simplex[D]) error {
	if s.Size() == 0 {
		return ErrEmptySimplex
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.appendLocked(s)

	return nil
}

// appendLocked appends s to every view. Caller must hold c.mu for writing.
func (c *Complex[D]) appendLocked(s simplex.Simplex[D]) {
	pos := len(c.filtration)
	c.filtration = append(c.filtration, s)
	c.byKey[s.Key()] = pos
	d := s.Size() - 1
	c.byDim[d] = append(c.byDim[d], pos)
}

// Insert validates and appends each simplex in ss in order, stopping at
// the first error. Simplices already appended before the failing one
// remain in the complex; Insert is not transactional (spec.md §9 accepts
// partial application on error, matching the teacher's batch-mutation
// convention of fail-fast-in-place over all-or-nothing).
func (c *Complex[D]) Insert(ss ...simplex.Simplex[D]) error {
	for _, s := range ss {
		if err := c.Push(s); err != nil {
			return err
		}
	}

	return nil
}

// Replace overwrites the simplex at filtration position pos with s,
// keeping s's vertex set identical to the simplex it replaces (only the
// data value may differ) so that the lexicographic and dimension indices
// stay valid without a rebuild.
func (c *Complex[D]) Replace(pos int, s simplex.Simplex[D]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pos < 0 || pos >= len(c.filtration) {
		return ErrIndexOutOfRange
	}
	if !simplex.Equal(c.filtration[pos], s) {
		return ErrVertexSetMismatch
	}
	c.filtration[pos] = s

	return nil
}

// Remove deletes s and, transitively, every simplex that depends on it as a
// face: after s is gone, any remaining simplex whose boundary no longer
// exists in the complex is itself removed, and this repeats until no
// invalid simplex remains (spec.md §4.5: "removes s and transitively all
// its cofaces (iterate until no invalid simplex remains)"), restoring the
// standing face-closure invariant rather than leaving it violated.
//
// Complexity: O(n * k) worst case (n = Size(), k = max simplex size) across
// the fixpoint passes.
func (c *Complex[D]) Remove(s simplex.Simplex[D]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byKey[s.Key()]; !ok {
		return ErrNotFound
	}

	dead := map[string]bool{s.Key(): true}
	for {
		changed := false
		for _, sim := range c.filtration {
			if dead[sim.Key()] || sim.Size() <= 1 {
				continue
			}
			faces, err := sim.Boundary()
			if err != nil {
				return err
			}
			for _, f := range faces {
				if dead[f.Key()] {
					dead[sim.Key()] = true
					changed = true

					break
				}
			}
		}
		if !changed {
			break
		}
	}

	newFiltration := make([]simplex.Simplex[D], 0, len(c.filtration)-len(dead))
	for _, sim := range c.filtration {
		if !dead[sim.Key()] {
			newFiltration = append(newFiltration, sim)
		}
	}
	c.filtration = newFiltration

	c.byKey = make(map[string]int, len(newFiltration))
	for pos, sim := range newFiltration {
		c.byKey[sim.Key()] = pos
	}
	c.rebuildDimBucketsLocked()

	return nil
}

// rebuildDimBucketsLocked recomputes byDim from the current filtration.
// Caller must hold c.mu for writing.
func (c *Complex[D]) rebuildDimBucketsLocked() {
	c.byDim = make(map[int][]int, len(c.byDim))
	for pos, s := range c.filtration {
		d := s.Size() - 1
		c.byDim[d] = append(c.byDim[d], pos)
	}
}
