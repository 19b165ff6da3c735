// Package coverage verifies n-wise coverage of a set of test rows by brute force.
//
// For every n-subset of parameters, every combination of one value per
// chosen parameter must occur in at least one row. The check is independent
// of how the rows were produced and is intended for tests and for hosts that
// want to double-check a generated covering array.
//
// Complexity: O(C(k,n)·(rows·n + Π|D|)) time, O(max Π|D|) extra space per subset.
package coverage

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/covergen/param"
)

var (
	// ErrIncomplete indicates at least one required combination is missing.
	ErrIncomplete = errors.New("coverage: n-wise coverage incomplete")

	// ErrShape indicates a row of the wrong length or with a value outside its domain.
	ErrShape = errors.New("coverage: malformed row")
)

// Gap is one uncovered combination: Values[i] is the value of parameter Params[i].
type Gap[V comparable] struct {
	Params []int
	Values []V
}

func (g Gap[V]) String() string {
	return fmt.Sprintf("params=%v values=%v", g.Params, g.Values)
}

// Count returns the number of n-combinations required for the given domain sizes.
func Count(sizes []int, n int) int {
	if n < 1 || n > len(sizes) {
		return 0
	}

	total := 0
	dims := make([]int, n)
	for _, sub := range combin.Combinations(len(sizes), n) {
		for i, p := range sub {
			dims[i] = sizes[p]
		}
		total += combin.Card(dims)
	}

	return total
}

// Gaps lists every uncovered n-combination, subsets in lexicographic order
// and values in row-major order within a subset.
//
// Errors: the param validation sentinels for bad domains or strength, and
// ErrShape for malformed rows.
func Gaps[V comparable](domains [][]V, rows [][]V, n int) ([]Gap[V], error) {
	set, err := param.New(domains)
	if err != nil {
		return nil, err
	}
	if err = set.ValidateStrength(n); err != nil {
		return nil, err
	}

	idx, err := indexRows(set, rows)
	if err != nil {
		return nil, err
	}

	var gaps []Gap[V]
	dims := make([]int, n)
	sub := make([]int, n)
	for _, params := range combin.Combinations(set.Len(), n) {
		for i, p := range params {
			dims[i] = set.Size(p)
		}
		seen := make([]bool, combin.Card(dims))
		for _, r := range idx {
			for i, p := range params {
				sub[i] = r[p]
			}
			seen[combin.IdxFor(sub, dims)] = true
		}
		for id, ok := range seen {
			if ok {
				continue
			}
			vs := combin.SubFor(nil, id, dims)
			g := Gap[V]{Params: append([]int(nil), params...), Values: make([]V, n)}
			for i, p := range params {
				g.Values[i] = set.ValueAt(p, vs[i])
			}
			gaps = append(gaps, g)
		}
	}

	return gaps, nil
}

// Check returns nil when rows cover every n-combination of domains, otherwise
// ErrIncomplete wrapped with the number of gaps and the first one.
func Check[V comparable](domains [][]V, rows [][]V, n int) error {
	gaps, err := Gaps(domains, rows, n)
	if err != nil {
		return err
	}
	if len(gaps) > 0 {
		return fmt.Errorf("%w: %d missing, first %v", ErrIncomplete, len(gaps), gaps[0])
	}

	return nil
}

// indexRows converts values into domain positions, validating shape.
func indexRows[V comparable](set *param.Set[V], rows [][]V) ([][]int, error) {
	out := make([][]int, len(rows))
	for j, r := range rows {
		if len(r) != set.Len() {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, j, len(r), set.Len())
		}
		out[j] = make([]int, len(r))
		for p, v := range r {
			i, ok := set.IndexOf(p, v)
			if !ok {
				return nil, fmt.Errorf("%w: row %d: %v is not in the domain of parameter %d", ErrShape, j, v, p)
			}
			out[j][p] = i
		}
	}

	return out, nil
}
