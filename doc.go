// Package tda computes persistent homology of a filtered simplicial
// complex over ℤ/2 coefficients.
//
// The pipeline, end to end:
//
//	complex.Complex      -- filtered simplicial complex (simplex.Simplex values)
//	convert.ToBoundaryMatrix -- Complex -> bmatrix.Matrix
//	(bmatrix.Matrix).Dualize -- optional anti-transpose, usually faster to reduce
//	reduce.Reduce        -- Standard or Twist reduction, in place
//	compute.ComputePairing -- reduced matrix -> pairing.Pairing
//	diagram.BuildDiagrams -- pairing.Pairing + Complex -> []*diagram.Diagram
//
// components.FastPath computes the dimension-0 diagram directly from a
// complex's vertices and edges, bypassing the rest of the pipeline.
//
// Packages:
//
//	simplex/    — ordered vertex set + generic data value, boundary iteration
//	column/     — ℤ/2 sparse column contract; vector- and bitmap-backed
//	bmatrix/    — boundary matrix, dualization, text-format load/store
//	reduce/     — Standard and Twist reduction algorithms
//	complex/    — filtered simplicial complex and its three coordinated views
//	convert/    — complex -> boundary matrix conversion
//	pairing/    — persistence pairing container
//	compute/    — reduced matrix -> pairing, with dualization remap
//	diagram/    — persistence diagram type and construction
//	components/ — union-find, dimension-0 fast path
//
//	go get github.com/katalvlaran/tda
package tda
