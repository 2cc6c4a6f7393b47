package simplex

import "errors"

// ErrEmptySimplex indicates Dim() or Boundary() was called on a simplex
// with zero vertices.
var ErrEmptySimplex = errors.New("simplex: operation undefined on empty simplex")
