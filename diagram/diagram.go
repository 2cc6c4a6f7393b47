package diagram

import (
	"cmp"
	"math"
	"sort"

	"github.com/katalvlaran/tda/complex"
	"github.com/katalvlaran/tda/pairing"
)

// Point is a single persistence-diagram point. An unpaired (essential)
// point has Death == math.Inf(1).
type Point struct {
	Birth float64
	Death float64
}

// Essential reports whether p has no destroyer.
func (p Point) Essential() bool { return math.IsInf(p.Death, 1) }

// Diagram is the multiset of Points belonging to one homological
// dimension (spec.md §4.9). Point order is not observable: Equal
// compares as multisets.
type Diagram struct {
	Dim    int
	Points []Point
}

// New returns an empty Diagram for dimension dim.
func New(dim int) *Diagram {
	return &Diagram{Dim: dim}
}

// Add appends an unpaired point (x, +∞).
func (d *Diagram) Add(x float64) {
	d.Points = append(d.Points, Point{Birth: x, Death: math.Inf(1)})
}

// AddPair appends a paired point (x, y).
func (d *Diagram) AddPair(x, y float64) {
	d.Points = append(d.Points, Point{Birth: x, Death: y})
}

// RemoveDiagonal deletes every point with Birth == Death.
func (d *Diagram) RemoveDiagonal() {
	out := d.Points[:0]
	for _, p := range d.Points {
		if p.Birth != p.Death {
			out = append(out, p)
		}
	}
	d.Points = out
}

// RemoveUnpaired deletes every essential point.
func (d *Diagram) RemoveUnpaired() {
	out := d.Points[:0]
	for _, p := range d.Points {
		if !p.Essential() {
			out = append(out, p)
		}
	}
	d.Points = out
}

// Betti returns the number of essential (unpaired) points — the
// dimension's Betti number.
func (d *Diagram) Betti() int {
	n := 0
	for _, p := range d.Points {
		if p.Essential() {
			n++
		}
	}

	return n
}

// Equal reports whether d and other represent the same dimension and the
// same multiset of points, irrespective of storage order.
func (d *Diagram) Equal(other *Diagram) bool {
	if other == nil || d.Dim != other.Dim || len(d.Points) != len(other.Points) {
		return false
	}
	a := sortedPoints(d.Points)
	b := sortedPoints(other.Points)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func sortedPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Birth != out[j].Birth {
			return out[i].Birth < out[j].Birth
		}

		return out[i].Death < out[j].Death
	})

	return out
}

// BuildDiagrams constructs one Diagram per distinct dimension present
// among p's pairs (spec.md §4.9), sourcing each simplex's dimension and
// data value (projected through toFloat) from c by filtration position.
func BuildDiagrams[D cmp.Ordered](p *pairing.Pairing, c *complex.Complex[D], toFloat func(D) float64) ([]*Diagram, error) {
	n := c.Size()
	byDim := make(map[int]*Diagram)
	order := make([]int, 0)

	for _, pr := range p.Pairs() {
		if int(pr.Birth) >= n {
			return nil, ErrIndexOutOfRange
		}
		s := c.At(int(pr.Birth))
		dim := s.Size() - 1
		x := toFloat(s.Data())

		dg, ok := byDim[dim]
		if !ok {
			dg = New(dim)
			byDim[dim] = dg
			order = append(order, dim)
		}

		if pr.Essential() {
			dg.Add(x)

			continue
		}
		if int(pr.Death) >= n {
			return nil, ErrIndexOutOfRange
		}
		y := toFloat(c.At(int(pr.Death)).Data())
		dg.AddPair(x, y)
	}

	sort.Ints(order)
	out := make([]*Diagram, len(order))
	for i, dim := range order {
		out[i] = byDim[dim]
	}

	return out, nil
}

// BuildDiagrams1D specializes diagram construction for 1-dimensional
// function data (spec.md §4.9's "construction for 1D functions"): pairing
// indices refer directly into values, with no simplex structure. The
// resulting single Diagram has Dim 0.
func BuildDiagrams1D(p *pairing.Pairing, values []float64) ([]*Diagram, error) {
	dg := New(0)
	for _, pr := range p.Pairs() {
		if int(pr.Birth) >= len(values) {
			return nil, ErrIndexOutOfRange
		}
		x := values[pr.Birth]
		if pr.Essential() {
			dg.Add(x)

			continue
		}
		if int(pr.Death) >= len(values) {
			return nil, ErrIndexOutOfRange
		}
		dg.AddPair(x, values[pr.Death])
	}

	return []*Diagram{dg}, nil
}
