package combo

import (
	"strconv"
	"strings"
)

// Assignment binds parameter Param to the value at position Index of its domain.
type Assignment struct {
	Param int
	Index int
}

// String renders "param: index".
func (a Assignment) String() string {
	return strconv.Itoa(a.Param) + ": " + strconv.Itoa(a.Index)
}

// Combination is a tuple of Assignments ordered by strictly increasing Param.
type Combination []Assignment

// Params returns the parameter indices of c in order.
func (c Combination) Params() []int {
	ps := make([]int, len(c))
	for i, a := range c {
		ps[i] = a.Param
	}

	return ps
}

// Equal reports element-wise equality.
func (c Combination) Equal(o Combination) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

func (c Combination) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, a := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
