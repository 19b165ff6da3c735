package ipo

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/covergen/combo"
)

// seed returns the cartesian product of the first n domains, one Row per
// tuple, last parameter varying fastest. Slots n..k-1 stay Unset.
//
// The product enumerates every combination of the first n parameters exactly
// once, so n-wise coverage over them holds by construction.
func seed(sizes []int, n int) []Row {
	tuples := combin.Cartesian(sizes[:n])
	rows := make([]Row, len(tuples))
	for j, t := range tuples {
		r := NewRow(len(sizes))
		for p, v := range t {
			r.Set(combo.Assignment{Param: p, Index: v})
		}
		rows[j] = r
	}

	return rows
}
