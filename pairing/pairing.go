package pairing

import (
	"sort"

	"github.com/katalvlaran/tda/bmatrix"
)

// Pair is a single (birth, death) index pair. Death == bmatrix.Invalid
// denotes an essential (unpaired) class.
type Pair struct {
	Birth bmatrix.Index
	Death bmatrix.Index
}

// Essential reports whether p has no destroyer.
func (p Pair) Essential() bool { return p.Death == bmatrix.Invalid }

// Pairing is an ordered collection of Pair values.
type Pairing struct {
	pairs []Pair
}

// New returns an empty Pairing.
func New() *Pairing { return &Pairing{} }

// AppendPair records a (birth, death) pair.
func (p *Pairing) AppendPair(birth, death bmatrix.Index) {
	p.pairs = append(p.pairs, Pair{Birth: birth, Death: death})
}

// AppendEssential records an unpaired birth (death = bmatrix.Invalid).
func (p *Pairing) AppendEssential(birth bmatrix.Index) {
	p.pairs = append(p.pairs, Pair{Birth: birth, Death: bmatrix.Invalid})
}

// Pairs returns the recorded pairs in their current order. The returned
// slice is owned by the caller.
func (p *Pairing) Pairs() []Pair {
	out := make([]Pair, len(p.pairs))
	copy(out, p.pairs)

	return out
}

// Len returns the number of recorded pairs.
func (p *Pairing) Len() int { return len(p.pairs) }

// Sort orders pairs ascending by Birth, ties broken by Death (spec.md §4.7).
func (p *Pairing) Sort() {
	sort.Slice(p.pairs, func(i, j int) bool {
		if p.pairs[i].Birth != p.pairs[j].Birth {
			return p.pairs[i].Birth < p.pairs[j].Birth
		}

		return p.pairs[i].Death < p.pairs[j].Death
	})
}

// Contains reports whether pr is present among the recorded pairs.
func (p *Pairing) Contains(pr Pair) bool {
	for _, existing := range p.pairs {
		if existing == pr {
			return true
		}
	}

	return false
}

// Equal reports whether p and other contain the same multiset of pairs,
// irrespective of order.
func (p *Pairing) Equal(other *Pairing) bool {
	if other == nil || len(p.pairs) != len(other.pairs) {
		return false
	}
	a, b := p.Pairs(), other.Pairs()
	sort.Slice(a, func(i, j int) bool {
		if a[i].Birth != a[j].Birth {
			return a[i].Birth < a[j].Birth
		}

		return a[i].Death < a[j].Death
	})
	sort.Slice(b, func(i, j int) bool {
		if b[i].Birth != b[j].Birth {
			return b[i].Birth < b[j].Birth
		}

		return b[i].Death < b[j].Death
	})
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
