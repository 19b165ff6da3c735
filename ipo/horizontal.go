package ipo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/covergen/combo"
)

// extendHorizontal grows every main row by column i, removing what it covers
// from req. Evicted rows leave the main list for the pool.
//
// Steps:
//  1. Rows 0..min(|D_i|, rows)-1 take value positions 0, 1, ... in order.
//  2. Every other row takes the value with the largest gain in req; on equal
//     gain the later value wins.
//  3. With eviction enabled, a step-2 row whose best gain is ≤ the threshold
//     keeps column i Unset and moves to the pool.
//
// Main rows are assigned on 0..i-1 when this runs.
func (b *construction) extendHorizontal(ctx context.Context, i int, req *combo.Requirements, cs *ColumnStats) error {
	codec := req.Codec()
	l := b.sizes[i]
	num := min(l, len(b.rows))

	prefix := make([]int, 0, i)
	anchors := make([]uint64, 0, codec.Subsets())

	var j int
	for j = 0; j < num; j++ {
		prefix = b.rows[j].Prefix(prefix[:0], i)
		anchors = codec.Anchors(anchors[:0], prefix)
		b.rows[j].Set(combo.Assignment{Param: i, Index: j})
		cs.Horizontal += req.Cover(anchors, j)
	}

	kept := b.rows[:num]
	for j = num; j < len(b.rows); j++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		row := b.rows[j]
		prefix = row.Prefix(prefix[:0], i)
		anchors = codec.Anchors(anchors[:0], prefix)

		v, gain, err := b.selectValue(ctx, req, anchors, l)
		if err != nil {
			return err
		}

		if b.cfg.evictionEnabled() && len(gain) <= b.cfg.evict {
			b.pool.add(row)
			cs.Evicted++
			continue
		}

		row.Set(combo.Assignment{Param: i, Index: v})
		cs.Horizontal += req.Remove(gain...)
		kept = append(kept, row)
	}
	clear(b.rows[len(kept):])
	b.rows = kept

	return nil
}

// selectValue evaluates every candidate value position of a row against the
// current req and returns the winner with its gain ids. The returned slice
// aliases scratch space that is reused on the next call.
//
// With more than one worker the candidates are evaluated concurrently; req is
// only read during evaluation and the winner is picked sequentially, so the
// choice is the same for every worker count.
func (b *construction) selectValue(ctx context.Context, req *combo.Requirements, anchors []uint64, l int) (int, []uint64, error) {
	if cap(b.gains) < l {
		b.gains = make([][]uint64, l)
	}
	gains := b.gains[:l]

	if b.cfg.workers > 1 && l > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.cfg.workers)
		for v := 0; v < l; v++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				gains[v] = req.Gain(gains[v][:0], anchors, v)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, nil, err
		}
	} else {
		for v := 0; v < l; v++ {
			gains[v] = req.Gain(gains[v][:0], anchors, v)
		}
	}

	best := 0
	for v := 1; v < l; v++ {
		if len(gains[v]) >= len(gains[best]) {
			best = v
		}
	}

	return best, gains[best], nil
}
