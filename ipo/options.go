// SPDX-License-Identifier: MIT
// Package: covergen/ipo
//
// options.go — functional options for Generator construction.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input
//     (programmer error). The algorithm itself never panics on user input.
//   • Options apply in order; later options override earlier ones.
//   • Randomness is explicit: WithSeed or WithRand, never a global source.

package ipo

import (
	"log/slog"
	"math/rand"
)

// Option customizes a Generator before construction.
type Option func(*config)

// WithEvictionThreshold enables the eviction knob: during horizontal growth a
// row whose best gain is ≤ opt is not extended but moved to the merge pool.
// opt = 0 evicts rows that would cover nothing new. Panics if opt < 0.
func WithEvictionThreshold(opt int) Option {
	if opt < 0 {
		panic("ipo: WithEvictionThreshold(opt<0)")
	}
	return func(c *config) {
		c.evict = opt
	}
}

// WithSeed seeds the RNG used to fill unassigned slots. Seed 0 selects the
// default seed, matching the behaviour without any RNG option.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides the RNG used to fill unassigned slots. Panics on nil.
// The Generator takes ownership: do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ipo: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWorkers bounds the goroutines evaluating candidate values of a row.
// 1 (the default) evaluates sequentially. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("ipo: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger routes construction logs (Debug level) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("ipo: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics installs a metrics collector. Panics on nil.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic("ipo: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = m
	}
}
