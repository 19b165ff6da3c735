package ipo

import (
	"math/rand"

	"github.com/katalvlaran/covergen/param"
)

// materialize resolves rows into values. Unset slots receive a value drawn
// uniformly from the parameter's domain with rng; the draw ignores coverage.
func materialize[V comparable](rows []Row, set *param.Set[V], rng *rand.Rand) [][]V {
	out := make([][]V, len(rows))
	for j, r := range rows {
		vals := make([]V, len(r))
		for p, s := range r {
			if a, ok := s.Assignment(); ok {
				vals[p] = set.ValueAt(p, a.Index)
				continue
			}
			vals[p] = set.ValueAt(p, rng.Intn(set.Size(p)))
		}
		out[j] = vals
	}

	return out
}
