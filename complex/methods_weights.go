package complex

// RecalculateWeights assigns every simplex above the vertex level a weight
// equal to the maximum weight of its vertices (the lower-star filtration
// rule, spec.md §4.5.4): w(s) = max{ w(v) : v a vertex of s }. Vertex
// weights (dimension-0 simplices) are never touched.
//
// When skip1D is true, dimension-1 simplices (edges) are also left
// untouched — useful when edge weights were supplied independently (e.g.
// from a weighted graph) and only higher simplices need deriving.
//
// Complexity: O(n * k) where k is the max simplex size.
func (c *Complex[D]) RecalculateWeights(skip1D bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vertexWeight := make(map[uint64]D, len(c.byDim[0]))
	for _, pos := range c.byDim[0] {
		s := c.filtration[pos]
		vs := s.Vertices()
		if len(vs) == 1 {
			vertexWeight[vs[0]] = s.Data()
		}
	}

	c.recalculateLocked(vertexWeight, skip1D)
}

// RecalculateWeightsFrom behaves like RecalculateWeights but sources
// vertex weights from the supplied map rather than the complex's own
// dimension-0 simplices. Vertices absent from vertexWeights are silently
// ignored rather than treated as an error: a simplex takes the maximum over
// those of its vertices that are present, and is left unmodified only when
// none of its vertices is present.
func (c *Complex[D]) RecalculateWeightsFrom(vertexWeights map[uint64]D, skip1D bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recalculateLocked(vertexWeights, skip1D)
}

// recalculateLocked performs the weight rewrite. Caller must hold c.mu.
func (c *Complex[D]) recalculateLocked(vertexWeight map[uint64]D, skip1D bool) {
	for pos, s := range c.filtration {
		dim := s.Size() - 1
		if dim <= 0 {
			continue
		}
		if skip1D && dim == 1 {
			continue
		}

		vs := s.Vertices()
		var (
			max   D
			found bool
		)
		for _, v := range vs {
			w, ok := vertexWeight[v]
			if !ok {
				continue
			}
			if !found || w > max {
				max = w
				found = true
			}
		}
		if !found {
			continue // every vertex missing: leave this simplex untouched
		}

		c.filtration[pos] = s.SetData(max)
	}
}
