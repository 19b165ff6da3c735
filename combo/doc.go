// Package combo models the atoms of coverage bookkeeping.
//
// An Assignment is the fact "parameter p takes the value at position i of its
// domain". It is a small immutable value: == compares both fields and it can
// key a map directly.
//
// A Combination is an n-tuple of Assignments over distinct, increasing
// parameters: one element of a coverage requirement.
//
// For a column c and strength n, a Codec maps every n-combination made of an
// (n-1)-subset of the earlier parameters [0, c) plus parameter c onto a dense
// id range [0, Len()). Requirements stores such ids in a 64-bit roaring
// bitmap, so the set of still-uncovered combinations (T_c) stays compact and
// iterates in ascending id order, which is the order combinations were
// generated in.
//
// Layout of the id space:
//
//	subset 0 ─┬─ block of Card(sizes of subset 0 ∪ {c}) ids
//	subset 1 ─┼─ block ...
//	   ...    │
//	subset m ─┴─ block ...
//
// Inside a block the value positions are laid out row-major with the column c
// varying fastest, so the ids of one row differ only by the value picked for c.
package combo
