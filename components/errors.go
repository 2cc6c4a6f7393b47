package components

import "errors"

// ErrIndexOutOfRange indicates FastPath was given a complex whose
// dimension-0 or dimension-1 simplices reference a vertex position
// outside the dimension-0 range, which should never happen on a
// face-closed complex.
var ErrIndexOutOfRange = errors.New("components: vertex index out of range")
