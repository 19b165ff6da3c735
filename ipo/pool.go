package ipo

import "github.com/katalvlaran/covergen/combo"

// pool is the vertical merge pool: partial rows in insertion order,
// addressed by index.
type pool struct {
	k    int
	rows []Row
}

func newPool(k int) *pool { return &pool{k: k} }

// len returns the number of resident partial rows.
func (p *pool) len() int { return len(p.rows) }

// add appends an evicted row as-is.
func (p *pool) add(r Row) { p.rows = append(p.rows, r) }

// merge places c into the first compatible partial row (first-fit), or into
// a new partial row holding only c. It reports whether an existing row was used.
func (p *pool) merge(c combo.Combination) bool {
	target := -1
	for idx, r := range p.rows {
		if r.Compatible(c) {
			target = idx
			break
		}
	}

	if target < 0 {
		r := NewRow(p.k)
		r.Merge(c)
		p.rows = append(p.rows, r)

		return false
	}
	p.rows[target].Merge(c)

	return true
}

// promote removes and returns, in pool order, every row whose slots 0..upto
// are all assigned.
func (p *pool) promote(upto int) []Row {
	var out []Row
	kept := p.rows[:0]
	for _, r := range p.rows {
		if r.Complete(upto) {
			out = append(out, r)
			continue
		}
		kept = append(kept, r)
	}
	clear(p.rows[len(kept):])
	p.rows = kept

	return out
}

// drain removes and returns every resident row.
func (p *pool) drain() []Row {
	out := p.rows
	p.rows = nil

	return out
}
