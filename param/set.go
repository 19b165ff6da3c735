// SPDX-License-Identifier: MIT
// Package: covergen/param
//
// set.go — the immutable, indexed parameter model.

package param

import "strconv"

// Set is a validated list of k ≥ 2 parameters. Parameter p owns the ordered
// domain returned by Domain(p); a value is addressed either directly or by its
// position inside that domain (see ValueAt / IndexOf).
//
// Repeated values collapse onto their first occurrence, so every domain in a
// Set is duplicate-free and a position identifies exactly one value.
//
// Set deep-copies its input, so later mutation of the caller's slices has no
// effect. All methods are read-only.
type Set[V comparable] struct {
	domains [][]V
	names   []string
	index   []map[V]int
}

// New validates domains and returns the indexed Set.
//
// Errors: ErrInvalidParameterCount, ErrEmptyDomain, ErrInvalidInputType.
// Complexity: O(Σ|domain|).
func New[V comparable](domains [][]V) (*Set[V], error) {
	if err := validateDomains(domains); err != nil {
		return nil, err
	}

	return newSet(domains, defaultNames(len(domains))), nil
}

// NewNamed is New with explicit parameter names. Names must be unique and
// non-empty, one per domain; otherwise ErrInvalidInputType.
func NewNamed[V comparable](names []string, domains [][]V) (*Set[V], error) {
	if err := validateDomains(domains); err != nil {
		return nil, err
	}
	if err := validateNames(names, len(domains)); err != nil {
		return nil, err
	}

	return newSet(domains, append([]string(nil), names...)), nil
}

// newSet copies already validated input, dropping repeated values.
func newSet[V comparable](domains [][]V, names []string) *Set[V] {
	s := &Set[V]{
		domains: make([][]V, len(domains)),
		names:   names,
		index:   make([]map[V]int, len(domains)),
	}
	for p, d := range domains {
		vals := make([]V, 0, len(d))
		idx := make(map[V]int, len(d))
		for _, v := range d {
			if _, ok := idx[v]; ok {
				continue
			}
			idx[v] = len(vals)
			vals = append(vals, v)
		}
		s.domains[p], s.index[p] = vals, idx
	}

	return s
}

// defaultNames renders "p0", "p1", ...
func defaultNames(k int) []string {
	names := make([]string, k)
	for p := range names {
		names[p] = "p" + strconv.Itoa(p)
	}

	return names
}

// Len returns the number of parameters k.
func (s *Set[V]) Len() int { return len(s.domains) }

// Size returns the domain size of parameter p.
func (s *Set[V]) Size(p int) int { return len(s.domains[p]) }

// Sizes returns every domain size, indexed by parameter.
func (s *Set[V]) Sizes() []int {
	sizes := make([]int, len(s.domains))
	for p, d := range s.domains {
		sizes[p] = len(d)
	}

	return sizes
}

// Domain returns a copy of parameter p's distinct values in declaration order.
func (s *Set[V]) Domain(p int) []V { return append([]V(nil), s.domains[p]...) }

// Domains returns a deep copy of all domains.
func (s *Set[V]) Domains() [][]V {
	out := make([][]V, len(s.domains))
	for p := range s.domains {
		out[p] = s.Domain(p)
	}

	return out
}

// ValueAt returns the i-th value of parameter p.
func (s *Set[V]) ValueAt(p, i int) V { return s.domains[p][i] }

// IndexOf returns the position of v inside parameter p's domain. Values that
// cannot be map keys are never found.
func (s *Set[V]) IndexOf(p int, v V) (int, bool) {
	if !hashable(any(v)) {
		return 0, false
	}
	i, ok := s.index[p][v]

	return i, ok
}

// Name returns the name of parameter p ("p<index>" unless named).
func (s *Set[V]) Name(p int) string { return s.names[p] }

// Names returns a copy of all parameter names.
func (s *Set[V]) Names() []string { return append([]string(nil), s.names...) }

// ValidateStrength reports ErrStrengthOutOfRange unless 1 ≤ n ≤ Len().
func (s *Set[V]) ValidateStrength(n int) error {
	return validateStrength(len(s.domains), n)
}
