package ipo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covergen/combo"
	"github.com/katalvlaran/covergen/ipo"
)

func TestSlot_ZeroIsUnset(t *testing.T) {
	var s ipo.Slot
	assert.False(t, s.IsSet())
	assert.Equal(t, ipo.Unset, s)

	a := combo.Assignment{Param: 2, Index: 1}
	got, ok := ipo.Assigned(a).Assignment()
	assert.True(t, ok)
	assert.Equal(t, a, got)
}

func TestRow_SetAndQuery(t *testing.T) {
	r := ipo.NewRow(3)
	assert.Equal(t, "[_ _ _]", r.String())

	r.Set(combo.Assignment{Param: 0, Index: 2})
	r.Set(combo.Assignment{Param: 1, Index: 0})

	i, ok := r.Index(0)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = r.Index(2)
	assert.False(t, ok)

	assert.True(t, r.Complete(1))
	assert.False(t, r.Complete(2))
	assert.Equal(t, []int{2, 0, -1}, r.Prefix(nil, 3))
	assert.Equal(t, "[2 0 _]", r.String())
	assert.NoError(t, r.Validate())
}

func TestRow_CompatibleMerge(t *testing.T) {
	r := ipo.NewRow(4)
	r.Set(combo.Assignment{Param: 1, Index: 1})

	fits := combo.Combination{{Param: 1, Index: 1}, {Param: 3, Index: 0}}
	clash := combo.Combination{{Param: 0, Index: 0}, {Param: 1, Index: 2}}

	require.True(t, r.Compatible(fits))
	require.False(t, r.Compatible(clash))

	r.Merge(fits)
	assert.True(t, r.Compatible(fits))
	assert.False(t, r.Compatible(combo.Combination{{Param: 3, Index: 1}}))
	assert.Equal(t, "[_ 1 _ 0]", r.String())
}

func TestRow_CloneIsIndependent(t *testing.T) {
	r := ipo.NewRow(2)
	r.Set(combo.Assignment{Param: 0, Index: 1})

	c := r.Clone()
	c.Set(combo.Assignment{Param: 0, Index: 0})

	i, _ := r.Index(0)
	assert.Equal(t, 1, i)
}

func TestRow_ValidateMismatch(t *testing.T) {
	r := ipo.NewRow(2)
	r[1] = ipo.Assigned(combo.Assignment{Param: 0, Index: 0})

	err := r.Validate()
	require.ErrorIs(t, err, ipo.ErrSlotMismatch)
	assert.Contains(t, err.Error(), "slot 1")
}
