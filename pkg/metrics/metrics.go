// Package metrics exposes Prometheus instrumentation for reads,
// monitored item synchronization and notification delivery.
//
// A nil *Metrics is valid and records nothing, so components can accept
// one unconditionally.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Read status labels.
const (
	StatusGood    = "good"
	StatusBad     = "bad"
	StatusTimeout = "timeout"
	StatusError   = "error"
)

// Monitored item outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Metrics holds the collectors.
type Metrics struct {
	reads               *prometheus.CounterVec
	monitoredItems      *prometheus.CounterVec
	notifications       prometheus.Counter
	subscriptionsActive prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
// If reg is nil the default registerer is used.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uaflow_reads_total",
			Help: "Node reads by result status",
		}, []string{"status"}),
		monitoredItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uaflow_monitored_items_total",
			Help: "Monitored item creation results",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "uaflow_notifications_total",
			Help: "Value changes delivered to callbacks",
		}),
		subscriptionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uaflow_subscriptions_active",
			Help: "Subscriptions currently blocked on their gate",
		}),
		gatherer: prometheus.DefaultGatherer,
	}
	reg.MustRegister(m.reads, m.monitoredItems, m.notifications, m.subscriptionsActive)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// Handler returns an HTTP handler serving the registered metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveRead counts one read result.
func (m *Metrics) ObserveRead(status string) {
	if m == nil {
		return
	}
	m.reads.WithLabelValues(status).Inc()
}

// ObserveSynchronization counts the accepted and rejected items of one batch.
func (m *Metrics) ObserveSynchronization(accepted, rejected int) {
	if m == nil {
		return
	}
	m.monitoredItems.WithLabelValues(OutcomeAccepted).Add(float64(accepted))
	m.monitoredItems.WithLabelValues(OutcomeRejected).Add(float64(rejected))
}

// ObserveNotification counts one delivered value change.
func (m *Metrics) ObserveNotification() {
	if m == nil {
		return
	}
	m.notifications.Inc()
}

// SubscriptionStarted increments the active subscription gauge.
func (m *Metrics) SubscriptionStarted() {
	if m == nil {
		return
	}
	m.subscriptionsActive.Inc()
}

// SubscriptionStopped decrements the active subscription gauge.
func (m *Metrics) SubscriptionStopped() {
	if m == nil {
		return
	}
	m.subscriptionsActive.Dec()
}
