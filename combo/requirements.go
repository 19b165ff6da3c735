package combo

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Requirements is the shrinking set T_c of combinations still to be covered
// for one column. It starts full and only ever loses ids.
//
// Reads (Len, Gain) may run concurrently; mutation must be serialized
// by the caller.
type Requirements struct {
	codec *Codec
	bm    *roaring64.Bitmap
}

// NewRequirements returns the full requirement set of codec's column.
func NewRequirements(codec *Codec) *Requirements {
	bm := roaring64.New()
	if n := codec.Len(); n > 0 {
		bm.AddRange(0, n)
	}

	return &Requirements{codec: codec, bm: bm}
}

// Codec returns the id space the set is defined over.
func (r *Requirements) Codec() *Codec { return r.codec }

// Len returns the number of uncovered combinations.
func (r *Requirements) Len() uint64 { return r.bm.GetCardinality() }

// IsEmpty reports whether everything is covered.
func (r *Requirements) IsEmpty() bool { return r.bm.IsEmpty() }

// Gain appends the uncovered ids a row with the given anchors would cover by
// taking value position v on the column.
func (r *Requirements) Gain(dst []uint64, anchors []uint64, v int) []uint64 {
	var id uint64
	for _, a := range anchors {
		id = a + uint64(v)
		if r.bm.Contains(id) {
			dst = append(dst, id)
		}
	}

	return dst
}

// Remove marks ids as covered and returns how many were still uncovered.
func (r *Requirements) Remove(ids ...uint64) int {
	var n int
	for _, id := range ids {
		if r.bm.Contains(id) {
			r.bm.Remove(id)
			n++
		}
	}

	return n
}

// Cover marks every combination of a row (anchors) with value position v as
// covered and returns how many were still uncovered.
func (r *Requirements) Cover(anchors []uint64, v int) int {
	var n int
	var id uint64
	for _, a := range anchors {
		id = a + uint64(v)
		if r.bm.Contains(id) {
			r.bm.Remove(id)
			n++
		}
	}

	return n
}

// Drain calls fn for every uncovered combination in ascending id order and
// then empties the set.
func (r *Requirements) Drain(fn func(Combination)) {
	it := r.bm.Iterator()
	for it.HasNext() {
		c, _ := r.codec.Decode(it.Next())
		fn(c)
	}
	r.bm.Clear()
}
