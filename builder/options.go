// SPDX-License-Identifier: MIT
// Package: proteinresolver/builder
//
// options.go: functional options for Include.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors panic on meaningless inputs; Include never panics.

package builder

import (
	"log/slog"
)

// Option customizes Include by mutating a builderConfig before the pass.
type Option func(*builderConfig)

// builderConfig aggregates all knobs of a graph-building pass.
type builderConfig struct {
	logger      *slog.Logger
	batchInsert bool
}

// newBuilderConfig applies opts over deterministic defaults, later options
// overriding earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger:      slog.Default(),
		batchInsert: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the structured logger used for dropped hits and the run summary.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithBatchInsert makes Include insert all unknown sequences in one
// append-and-sort step instead of one sorted insertion per miss.
func WithBatchInsert() Option {
	return func(c *builderConfig) {
		c.batchInsert = true
	}
}
