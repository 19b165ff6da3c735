package combo

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrBadCodec is returned by NewCodec for an inconsistent column/strength/sizes triple.
var ErrBadCodec = errors.New("combo: invalid codec parameters")

// Codec is the bijection between the n-combinations introduced by one column
// and the id range [0, Len()).
//
// The (n-1)-subsets of [0, column) are numbered by combin.IndexToCombination;
// subset s owns ids [offsets[s], offsets[s+1]). Within the block the value
// positions are encoded row-major by combin.IdxFor over the subset's domain
// sizes followed by the column's size.
type Codec struct {
	column   int
	strength int
	sizes    []int
	subsets  [][]int
	dims     [][]int
	offsets  []uint64
}

// NewCodec prepares the id space of column for the given strength.
// sizes must hold the domain sizes of at least parameters 0..column.
//
// Complexity: O(C(column, n-1)·n) time and space.
func NewCodec(sizes []int, column, strength int) (*Codec, error) {
	if column < 0 || column >= len(sizes) || strength < 1 || strength > column+1 {
		return nil, fmt.Errorf("%w: column=%d strength=%d parameters=%d", ErrBadCodec, column, strength, len(sizes))
	}
	for p := 0; p <= column; p++ {
		if sizes[p] < 1 {
			return nil, fmt.Errorf("%w: parameter %d has size %d", ErrBadCodec, p, sizes[p])
		}
	}

	r := strength - 1
	c := &Codec{
		column:   column,
		strength: strength,
		sizes:    append([]int(nil), sizes[:column+1]...),
	}

	if r == 0 {
		c.subsets = [][]int{{}}
	} else {
		m := combin.Binomial(column, r)
		c.subsets = make([][]int, m)
		for s := 0; s < m; s++ {
			c.subsets[s] = combin.IndexToCombination(nil, s, column, r)
		}
	}

	c.dims = make([][]int, len(c.subsets))
	c.offsets = make([]uint64, len(c.subsets)+1)
	for s, sub := range c.subsets {
		d := make([]int, 0, strength)
		for _, p := range sub {
			d = append(d, c.sizes[p])
		}
		d = append(d, c.sizes[column])
		c.dims[s] = d
		c.offsets[s+1] = c.offsets[s] + uint64(combin.Card(d))
	}

	return c, nil
}

// Column returns the parameter this codec introduces.
func (c *Codec) Column() int { return c.column }

// Strength returns n.
func (c *Codec) Strength() int { return c.strength }

// Len returns the number of combinations in the id space.
func (c *Codec) Len() uint64 { return c.offsets[len(c.offsets)-1] }

// Subsets returns the number of (n-1)-subsets, i.e. the number of
// combinations a single complete row contributes to this column.
func (c *Codec) Subsets() int { return len(c.subsets) }

// Encode maps a combination onto its id. It reports false when c does not
// belong to this codec's column (wrong length, order, last parameter or range).
func (c *Codec) Encode(cmb Combination) (uint64, bool) {
	if len(cmb) != c.strength || cmb[len(cmb)-1].Param != c.column {
		return 0, false
	}

	r := c.strength - 1
	params := make([]int, r)
	sub := make([]int, c.strength)
	prev := -1
	for i, a := range cmb {
		if i < r {
			if a.Param <= prev || a.Param >= c.column {
				return 0, false
			}
			params[i] = a.Param
			prev = a.Param
		}
		if a.Index < 0 || a.Index >= c.sizes[a.Param] {
			return 0, false
		}
		sub[i] = a.Index
	}

	s := 0
	if r > 0 {
		s = combin.CombinationIndex(params, c.column, r)
	}

	return c.offsets[s] + uint64(combin.IdxFor(sub, c.dims[s])), true
}

// Decode is the inverse of Encode.
func (c *Codec) Decode(id uint64) (Combination, bool) {
	if id >= c.Len() {
		return nil, false
	}

	s := sort.Search(len(c.subsets), func(i int) bool { return c.offsets[i+1] > id })
	sub := combin.SubFor(nil, int(id-c.offsets[s]), c.dims[s])

	cmb := make(Combination, c.strength)
	for i, p := range c.subsets[s] {
		cmb[i] = Assignment{Param: p, Index: sub[i]}
	}
	cmb[c.strength-1] = Assignment{Param: c.column, Index: sub[c.strength-1]}

	return cmb, true
}

// Anchors appends, for every subset, the id the row would produce with value
// position 0 on the column. The id for value position v is anchor+v.
//
// prefix[p] is the value position of parameter p; every p < column must be set.
// Complexity: O(C(column, n-1)·n).
func (c *Codec) Anchors(dst []uint64, prefix []int) []uint64 {
	sub := make([]int, c.strength)
	for s, ps := range c.subsets {
		for i, p := range ps {
			sub[i] = prefix[p]
		}
		sub[c.strength-1] = 0
		dst = append(dst, c.offsets[s]+uint64(combin.IdxFor(sub, c.dims[s])))
	}

	return dst
}
