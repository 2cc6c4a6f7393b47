package diagram

import "errors"

// ErrIndexOutOfRange indicates BuildDiagrams/BuildDiagrams1D received a
// pairing referencing a position outside the source complex or value
// array.
var ErrIndexOutOfRange = errors.New("diagram: pairing references an out-of-range index")
