package reader

import (
	"log/slog"
	"time"

	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/metrics"
	"github.com/uaflow/uaflow-go/pkg/nodeid"
)

// DefaultMaxAge is the staleness bound used when none is configured.
const DefaultMaxAge = 10 * time.Second

// Option configures a Reader.
type Option func(*Reader)

// WithMaxAge sets the maximum acceptable age of a cached server value.
// Zero requests a fresh device read. The value is passed through unchanged.
func WithMaxAge(maxAge time.Duration) Option {
	return func(r *Reader) {
		r.maxAge = maxAge
	}
}

// WithResolver replaces the default identifier parser.
func WithResolver(resolver nodeid.Resolver) Option {
	return func(r *Reader) {
		if resolver != nil {
			r.resolver = resolver
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithEventLogger sets the event capture logger.
func WithEventLogger(logger log.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.events = logger
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Reader) {
		r.metrics = m
	}
}

// WithEndpoint sets the endpoint URL recorded in captured events.
func WithEndpoint(endpoint string) Option {
	return func(r *Reader) {
		r.endpoint = endpoint
	}
}

// WithFailureRecords makes Read record one failure Result for every
// identifier whose resolve or read returned an error, instead of omitting it.
func WithFailureRecords() Option {
	return func(r *Reader) {
		r.failureRecords = true
	}
}
