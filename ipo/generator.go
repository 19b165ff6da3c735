package ipo

import (
	"context"
	"fmt"

	"github.com/katalvlaran/covergen/param"
)

// Generator builds an n-wise covering array over a fixed parameter set.
//
// Construction validates everything up front; afterwards Result cannot fail.
// The covering structure is computed once, on first use, and every call to
// Result materializes it again with a fresh random fill of the unassigned
// slots. Coverage holds for every call.
type Generator[V comparable] struct {
	set *param.Set[V]
	n   int
	cfg config

	built bool
	rows  []Row
	stats Stats
}

// New validates domains and strength n and returns a Generator.
//
// Errors (fail fast, no Generator is returned):
//
//	ErrInvalidParameterCount — fewer than two domains.
//	ErrEmptyDomain           — a domain without values.
//	ErrInvalidInputType      — non-comparable values.
//	ErrStrengthOutOfRange    — n < 1 or n > len(domains).
func New[V comparable](domains [][]V, n int, opts ...Option) (*Generator[V], error) {
	set, err := param.New(domains)
	if err != nil {
		return nil, err
	}

	return NewFromSet(set, n, opts...)
}

// NewFromSet is New over an already validated parameter set, e.g. one built
// by param.DecodeYAML.
func NewFromSet[V comparable](set *param.Set[V], n int, opts ...Option) (*Generator[V], error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil parameter set", ErrInvalidInputType)
	}
	if err := set.ValidateStrength(n); err != nil {
		return nil, err
	}

	return &Generator[V]{
		set: set,
		n:   n,
		cfg: newConfig(opts...),
	}, nil
}

// Strength returns n.
func (g *Generator[V]) Strength() int { return g.n }

// Params returns the validated parameter set (read-only).
func (g *Generator[V]) Params() *param.Set[V] { return g.set }

// Result returns the covering array: one row per test case, one value per
// parameter in parameter order.
func (g *Generator[V]) Result() [][]V {
	// Background is never canceled, so ResultContext cannot fail here.
	out, _ := g.ResultContext(context.Background())

	return out
}

// ResultContext is Result with cancellation. A canceled build returns
// ctx.Err() and leaves the Generator unbuilt, so a later call starts over.
func (g *Generator[V]) ResultContext(ctx context.Context) ([][]V, error) {
	if err := g.build(ctx); err != nil {
		return nil, err
	}

	return materialize(g.rows, g.set, g.cfg.rng), nil
}

// Rows returns copies of the constructed rows before materialization; slots
// no requirement needed are Unset.
func (g *Generator[V]) Rows(ctx context.Context) ([]Row, error) {
	if err := g.build(ctx); err != nil {
		return nil, err
	}

	out := make([]Row, len(g.rows))
	for j, r := range g.rows {
		out[j] = r.Clone()
	}

	return out, nil
}

// Stats returns construction statistics; zero until the first successful build.
func (g *Generator[V]) Stats() Stats { return g.stats }

func (g *Generator[V]) build(ctx context.Context) error {
	if g.built {
		return nil
	}

	rows, stats, err := construct(ctx, g.set.Sizes(), g.n, g.cfg)
	if err != nil {
		return err
	}
	g.rows, g.stats, g.built = rows, stats, true

	return nil
}
