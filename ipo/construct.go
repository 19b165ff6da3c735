package ipo

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/covergen/combo"
)

// construction is the transient state of one build. It is owned by a single
// goroutine; only candidate evaluation fans out (see selectValue).
type construction struct {
	sizes []int
	n     int
	cfg   config

	rows  []Row
	pool  *pool
	stats Stats
	gains [][]uint64
}

// construct runs the IPO strategy over domain sizes at strength n and returns
// the rows, still carrying Unset slots, with their statistics.
func construct(ctx context.Context, sizes []int, n int, cfg config) ([]Row, Stats, error) {
	start := time.Now()
	b := &construction{
		sizes: sizes,
		n:     n,
		cfg:   cfg,
		pool:  newPool(len(sizes)),
	}

	err := b.run(ctx)
	cfg.metrics.RecordBuild(b.stats, time.Since(start), err)
	if err != nil {
		cfg.logger.Debug("ipo: construction canceled", slog.Any("error", err))

		return nil, Stats{}, err
	}

	cfg.logger.Debug("ipo: covering array built",
		slog.Int("parameters", len(sizes)),
		slog.Int("strength", n),
		slog.Int("rows", b.stats.Rows),
		slog.Int("evicted", b.stats.Evicted),
		slog.Int("flushed", b.stats.Flushed),
		slog.Duration("elapsed", time.Since(start)),
	)

	return b.rows, b.stats, nil
}

func (b *construction) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.rows = seed(b.sizes, b.n)
	b.stats.Seeded = len(b.rows)

	for i := b.n; i < len(b.sizes); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.column(ctx, i); err != nil {
			return err
		}
	}

	flushed := b.pool.drain()
	b.rows = append(b.rows, flushed...)
	b.stats.Flushed = len(flushed)
	b.stats.Rows = len(b.rows)

	return nil
}

// column introduces parameter i: horizontal growth, vertical merge of the
// leftovers, then promotion of pool rows complete on 0..i.
func (b *construction) column(ctx context.Context, i int) error {
	start := time.Now()

	codec, err := combo.NewCodec(b.sizes, i, b.n)
	if err != nil {
		return err
	}
	req := combo.NewRequirements(codec)
	cs := ColumnStats{Column: codec.Column(), Requirements: int(codec.Len())}

	if err = b.extendHorizontal(ctx, i, req, &cs); err != nil {
		return err
	}

	cs.Leftover = int(req.Len())
	if !req.IsEmpty() {
		req.Drain(func(c combo.Combination) {
			if b.pool.merge(c) {
				cs.Merged++
			} else {
				cs.Created++
			}
		})
	}

	promoted := b.pool.promote(i)
	b.rows = append(b.rows, promoted...)
	cs.Promoted = len(promoted)
	cs.Pool = b.pool.len()

	b.stats.add(cs)
	b.cfg.metrics.RecordColumn(cs, time.Since(start))
	b.cfg.logger.Debug("ipo: column processed",
		slog.Int("column", cs.Column),
		slog.Int("requirements", cs.Requirements),
		slog.Int("horizontal", cs.Horizontal),
		slog.Int("leftover", cs.Leftover),
		slog.Int("evicted", cs.Evicted),
		slog.Int("merged", cs.Merged),
		slog.Int("created", cs.Created),
		slog.Int("promoted", cs.Promoted),
		slog.Int("pool", cs.Pool),
		slog.Int("rows", len(b.rows)),
	)

	return nil
}
