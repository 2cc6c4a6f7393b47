package simplex

import (
	"strconv"
	"strings"
)

// vertexKey encodes a canonical (already deduplicated, sorted) vertex
// sequence as a string, one decimal vertex id per segment separated by '/'.
// '/' cannot appear inside a decimal uint64, so the encoding is injective:
// two distinct canonical vertex sets never collide.
func vertexKey(vs []uint64) string {
	if len(vs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}

	return b.String()
}
