package ipo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covergen/combo"
)

func pair(p, i, q, j int) combo.Combination {
	return combo.Combination{{Param: p, Index: i}, {Param: q, Index: j}}
}

func TestPool_MergeFirstFit(t *testing.T) {
	p := newPool(3)

	require.False(t, p.merge(pair(0, 0, 2, 1)))
	require.False(t, p.merge(pair(0, 1, 2, 1)))
	// Fits both rows; the first one wins.
	require.True(t, p.merge(pair(1, 0, 2, 1)))
	// Clashes with row 0 on parameter 1, fits row 1.
	require.True(t, p.merge(pair(1, 2, 2, 1)))

	require.Equal(t, 2, p.len())
	assert.Equal(t, "[0 0 1]", p.rows[0].String())
	assert.Equal(t, "[1 2 1]", p.rows[1].String())
}

func TestPool_PromoteKeepsOrder(t *testing.T) {
	p := newPool(3)
	p.merge(pair(0, 0, 1, 0))
	p.merge(pair(1, 1, 2, 0))
	p.merge(pair(0, 1, 2, 1))

	evicted := NewRow(3)
	evicted.Set(combo.Assignment{Param: 0, Index: 2})
	evicted.Set(combo.Assignment{Param: 1, Index: 2})
	p.add(evicted)

	out := p.promote(1)
	require.Len(t, out, 2)
	assert.Equal(t, "[0 0 _]", out[0].String())
	assert.Equal(t, "[2 2 _]", out[1].String())

	require.Equal(t, 2, p.len())
	assert.Equal(t, "[_ 1 0]", p.rows[0].String())
	assert.Equal(t, "[1 _ 1]", p.rows[1].String())

	rest := p.drain()
	assert.Len(t, rest, 2)
	assert.Zero(t, p.len())
}

func TestSeed_CartesianOrder(t *testing.T) {
	rows := seed([]int{2, 3, 4}, 2)
	require.Len(t, rows, 6)
	want := []string{"[0 0 _]", "[0 1 _]", "[0 2 _]", "[1 0 _]", "[1 1 _]", "[1 2 _]"}
	for j, r := range rows {
		assert.Equal(t, want[j], r.String())
	}
}

func TestConstruct_RowsAreConsistent(t *testing.T) {
	sizes := []int{3, 2, 4, 2, 3, 2}
	cfg := newConfig(WithEvictionThreshold(1))

	rows, st, err := construct(t.Context(), sizes, 2, cfg)
	require.NoError(t, err)
	require.Len(t, rows, st.Rows)
	require.Equal(t, st.Seeded-st.Evicted+st.Promoted+st.Flushed, st.Rows)
	require.Equal(t, st.Leftover, st.Merged+st.Created)
	require.Equal(t, st.Requirements, st.Horizontal+st.Leftover)
	for _, r := range rows {
		require.Len(t, r, len(sizes))
		require.NoError(t, r.Validate())
	}
}
