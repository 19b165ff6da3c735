// SPDX-License-Identifier: MIT
// Package: covergen/ipo
//
// config.go — resolved configuration and deterministic defaults.
//
// Defaults:
//   • evict   = noEviction (knob disabled)
//   • rng     = rngFromSeed(0) → defaultRNGSeed
//   • workers = 1 (sequential candidate evaluation)
//   • logger  = discards everything
//   • metrics = NoopMetricsCollector

package ipo

import (
	"io"
	"log/slog"
	"math/rand"
)

const (
	noEviction     = -1
	defaultWorkers = 1
)

// config aggregates every Generator knob.
type config struct {
	evict   int
	rng     *rand.Rand
	workers int
	logger  *slog.Logger
	metrics MetricsCollector
}

// newConfig applies opts over the defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		evict:   noEviction,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.metrics == nil {
		cfg.metrics = NoopMetricsCollector{}
	}

	return cfg
}

// evictionEnabled reports whether WithEvictionThreshold was given.
func (c config) evictionEnabled() bool { return c.evict != noEviction }
