package convert

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/tda/bmatrix"
	"github.com/katalvlaran/tda/complex"
)

// ToBoundaryMatrix builds the boundary matrix of c (spec.md §4.6): column
// j holds the filtration positions of the codimension-1 faces of the
// simplex at position j, and Dim(j) is that simplex's dimension.
//
// Stage 1 (Validate): every face of every simplex must already be present
// at a strictly earlier filtration position — a complex built exclusively
// through Push/Insert always satisfies this (and Sort rejects any order that
// would break it), but Complex also exposes PushWithoutValidation, which can
// produce a complex that does not.
// Stage 2 (Allocate): one bmatrix.Matrix column per filtration position.
// Stage 3 (Populate): fill each column's rows and declared dimension.
func ToBoundaryMatrix[D cmp.Ordered](c *complex.Complex[D]) (*bmatrix.Matrix, error) {
	n := c.Size()

	// Stage 1: validate face closure up front, before allocating anything.
	for j := 0; j < n; j++ {
		s := c.At(j)
		if s.Size() <= 1 {
			continue
		}
		faces, err := s.Boundary()
		if err != nil {
			return nil, fmt.Errorf("convert: boundary at position %d: %w", j, err)
		}
		for _, f := range faces {
			pos, err := c.Index(f)
			if err != nil {
				return nil, fmt.Errorf("convert: position %d: %w", j, ErrMissingFace)
			}
			if pos >= j {
				return nil, fmt.Errorf("convert: position %d: %w", j, ErrBrokenFiltration)
			}
		}
	}

	// Stage 2/3: allocate and populate.
	m := bmatrix.New(n)
	for j := 0; j < n; j++ {
		s := c.At(j)
		dim := s.Size() - 1
		m.SetDim(j, dim)
		if dim == 0 {
			continue
		}
		faces, err := s.Boundary()
		if err != nil {
			return nil, fmt.Errorf("convert: boundary at position %d: %w", j, err)
		}
		rows := make([]bmatrix.Index, 0, len(faces))
		for _, f := range faces {
			pos, _ := c.Index(f) // already validated to exist in stage 1
			rows = append(rows, bmatrix.Index(pos))
		}
		// Boundary() returns faces in vertex-omission order, not
		// necessarily ascending filtration position; SetColumn requires
		// sorted, duplicate-free rows.
		slices.Sort(rows)
		if err := m.SetColumn(j, rows); err != nil {
			return nil, fmt.Errorf("convert: set column %d: %w", j, err)
		}
	}

	return m, nil
}
