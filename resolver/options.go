package resolver

import (
	"log/slog"
)

// Option configures a Resolver.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	topHitOnly  bool
	batchInsert bool
	parallel    int
}

func defaultOptions() options {
	return options{
		logger:     slog.Default(),
		topHitOnly: true,
		parallel:   1,
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("resolver: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithTopHitOnly keeps only the best-ranked hit of every identification.
// This is the default.
func WithTopHitOnly() Option {
	return func(o *options) {
		o.topHitOnly = true
	}
}

// WithAllHits turns every candidate hit of an identification into an
// observation, each credited with the identification's intensity.
func WithAllHits() Option {
	return func(o *options) {
		o.topHitOnly = false
	}
}

// WithBatchInsert inserts unknown peptide sequences in one sorted batch.
func WithBatchInsert() Option {
	return func(o *options) {
		o.batchInsert = true
	}
}

// WithParallel bounds the number of sources ResolveBatch runs at once.
// Values below 1 are treated as 1.
func WithParallel(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallel = n
	}
}
