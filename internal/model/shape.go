package model

import (
	"strconv"
	"strings"
)

// Shape is an ordered sequence of tensor dimension sizes.
type Shape []int

// Equal reports whether both shapes have the same rank and identical
// dimensions in order.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the shape in its compact bracketed form, e.g. [1,3,224,224].
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteByte(']')
	return sb.String()
}
