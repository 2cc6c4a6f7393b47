package components

import (
	"cmp"

	"github.com/katalvlaran/tda/complex"
	"github.com/katalvlaran/tda/diagram"
	"github.com/katalvlaran/tda/pairing"
)

// Traits controls FastPath's output.
type Traits struct {
	// WithPairing, when true, also returns the index-level pairing
	// alongside the dimension-0 diagram. When false, only the diagram is
	// built and the second return value is nil (saving the pairing
	// allocation when the caller only wants Betti numbers).
	WithPairing bool
}

// FastPath computes 0-dimensional persistence directly from c's vertices
// and edges (spec.md §4.10), bypassing bmatrix/reduce/compute entirely.
// toFloat projects the generic data value D onto the float64 diagram
// representation, exactly as diagram.BuildDiagrams does — FastPath builds
// a diagram.Diagram directly rather than routing through a pairing and
// BuildDiagrams, so it needs the same projection.
//
// Result must agree, up to ordering, with running the general pipeline
// on the complex's 1-skeleton (spec.md §8 property, Scenario E).
func FastPath[D cmp.Ordered](c *complex.Complex[D], toFloat func(D) float64, traits Traits) (*diagram.Diagram, *pairing.Pairing, error) {
	n := c.Size()
	uf := NewUnionFind(n)

	vertexPos := make(map[uint64]int)
	for _, pos := range rangePositions(c, 0) {
		vs := c.At(pos).Vertices()
		if len(vs) == 1 {
			vertexPos[vs[0]] = pos
		}
	}

	dg := diagram.New(0)
	var p *pairing.Pairing
	if traits.WithPairing {
		p = pairing.New()
	}

	for _, pos := range rangePositions(c, 1) {
		e := c.At(pos)
		vs := e.Vertices()
		if len(vs) != 2 {
			continue
		}
		pu, okU := vertexPos[vs[0]]
		pv, okV := vertexPos[vs[1]]
		if !okU || !okV {
			return nil, nil, ErrIndexOutOfRange
		}

		rootU, rootV := uf.Find(pu), uf.Find(pv)
		if rootU == rootV {
			continue
		}

		// Elder rule: the component whose oldest vertex is more recent
		// (greater Born) is the younger one and is the one that dies.
		younger, elder := rootU, rootV
		if uf.Born(rootU) < uf.Born(rootV) {
			younger, elder = rootV, rootU
		}

		birthIdx := uf.Born(younger)
		birth := toFloat(c.At(birthIdx).Data())
		death := toFloat(e.Data())
		dg.AddPair(birth, death)
		if p != nil {
			p.AppendPair(simplexIndex(birthIdx), simplexIndex(pos))
		}

		uf.Union(younger, elder)
	}

	seenRoot := make(map[int]bool)
	for _, pos := range rangePositions(c, 0) {
		root := uf.Find(pos)
		if seenRoot[root] {
			continue
		}
		seenRoot[root] = true

		birthIdx := uf.Born(root)
		dg.Add(toFloat(c.At(birthIdx).Data()))
		if p != nil {
			p.AppendEssential(simplexIndex(birthIdx))
		}
	}

	if p != nil {
		p.Sort()
	}

	return dg, p, nil
}

// rangePositions returns the filtration positions of every dimension-d
// simplex in c, in filtration order.
func rangePositions[D cmp.Ordered](c *complex.Complex[D], d int) []int {
	simplices := c.Range(d)
	positions := make([]int, len(simplices))
	for i, s := range simplices {
		pos, err := c.Index(s)
		if err != nil {
			// Range() only ever returns simplices already stored in c;
			// a lookup miss here would indicate a broken invariant in
			// Complex itself, not a caller error.
			panic("components: Range returned a simplex Complex cannot Index")
		}
		positions[i] = pos
	}

	return positions
}

// simplexIndex narrows an int filtration position to the pairing
// package's index type.
func simplexIndex(i int) uint64 { return uint64(i) }
