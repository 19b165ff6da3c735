package ipo

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/covergen/combo"
)

// Slot is one cell of a Row: either an Assignment or Unset. The zero Slot is Unset.
type Slot struct {
	a   combo.Assignment
	set bool
}

// Unset is the explicit "no value yet" marker.
var Unset = Slot{}

// Assigned wraps an assignment into a slot.
func Assigned(a combo.Assignment) Slot { return Slot{a: a, set: true} }

// Assignment returns the slot's assignment and whether it is set.
func (s Slot) Assignment() (combo.Assignment, bool) { return s.a, s.set }

// IsSet reports whether the slot holds an assignment.
func (s Slot) IsSet() bool { return s.set }

// Row holds one slot per parameter. Slot p, when set, holds an assignment
// with Param == p; Set maintains this and Validate checks it.
type Row []Slot

// NewRow returns k Unset slots.
func NewRow(k int) Row { return make(Row, k) }

// Set stores a in slot a.Param.
func (r Row) Set(a combo.Assignment) { r[a.Param] = Assigned(a) }

// Index returns the value position assigned to parameter p.
func (r Row) Index(p int) (int, bool) {
	s := r[p]

	return s.a.Index, s.set
}

// Complete reports whether slots 0..upto are all assigned.
func (r Row) Complete(upto int) bool {
	for p := 0; p <= upto; p++ {
		if !r[p].set {
			return false
		}
	}

	return true
}

// Compatible reports whether every assignment of c can be placed in r: the
// target slot is Unset or already holds the same assignment.
func (r Row) Compatible(c combo.Combination) bool {
	for _, a := range c {
		if s := r[a.Param]; s.set && s.a != a {
			return false
		}
	}

	return true
}

// Merge writes every assignment of c into r. Callers check Compatible first.
func (r Row) Merge(c combo.Combination) {
	for _, a := range c {
		r.Set(a)
	}
}

// Prefix appends the value positions of slots 0..n-1. Unset slots yield -1.
func (r Row) Prefix(dst []int, n int) []int {
	for p := 0; p < n; p++ {
		if r[p].set {
			dst = append(dst, r[p].a.Index)
		} else {
			dst = append(dst, -1)
		}
	}

	return dst
}

// Clone returns an independent copy.
func (r Row) Clone() Row { return append(Row(nil), r...) }

// Validate checks slot/assignment consistency.
func (r Row) Validate() error {
	for p, s := range r {
		if s.set && s.a.Param != p {
			return fmt.Errorf("%w: slot %d holds %v", ErrSlotMismatch, p, s.a)
		}
	}

	return nil
}

// String renders assigned value positions and "_" for Unset, e.g. "[0 2 _]".
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for p, s := range r {
		if p > 0 {
			sb.WriteByte(' ')
		}
		if s.set {
			fmt.Fprintf(&sb, "%d", s.a.Index)
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
