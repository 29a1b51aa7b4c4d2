package subscription

import (
	"log/slog"
	"time"

	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/metrics"
	"github.com/uaflow/uaflow-go/pkg/nodeid"
)

// DefaultSamplingInterval is the sampling interval used when none is configured.
const DefaultSamplingInterval = time.Second

// DefaultDeleteTimeout bounds the best-effort subscription delete on close.
const DefaultDeleteTimeout = 5 * time.Second

// Option configures a Manager.
type Option func(*Manager)

// WithSamplingInterval sets the sampling interval requested for every item.
func WithSamplingInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.samplingInterval = interval
	}
}

// WithResolver replaces the default identifier parser.
func WithResolver(resolver nodeid.Resolver) Option {
	return func(m *Manager) {
		if resolver != nil {
			m.resolver = resolver
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithEventLogger sets the event capture logger.
func WithEventLogger(logger log.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.events = logger
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// WithEndpoint sets the endpoint URL recorded in captured events.
func WithEndpoint(endpoint string) Option {
	return func(m *Manager) {
		m.endpoint = endpoint
	}
}

// WithDeleteTimeout bounds the subscription delete performed on close.
func WithDeleteTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		if timeout > 0 {
			m.deleteTimeout = timeout
		}
	}
}
