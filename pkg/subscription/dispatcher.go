package subscription

import (
	"log/slog"
	"time"

	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/metrics"
	"github.com/uaflow/uaflow-go/pkg/session"
)

// Callback receives value changes for monitored items.
type Callback interface {
	OnSubscribe(item *session.MonitoredItem, value *ua.DataValue)
}

// CallbackFunc adapts a function to the Callback interface.
type CallbackFunc func(item *session.MonitoredItem, value *ua.DataValue)

// OnSubscribe calls f(item, value).
func (f CallbackFunc) OnSubscribe(item *session.MonitoredItem, value *ua.DataValue) {
	f(item, value)
}

// Dispatcher forwards notification batches to a Callback, one call per
// (item, value) pair, in batch order.
type Dispatcher struct {
	callback Callback

	logger   *slog.Logger
	events   log.Logger
	metrics  *metrics.Metrics
	runID    string
	endpoint string
}

// NewDispatcher creates a Dispatcher for callback.
// A nil callback discards every value.
func NewDispatcher(callback Callback) *Dispatcher {
	if callback == nil {
		callback = CallbackFunc(func(*session.MonitoredItem, *ua.DataValue) {})
	}
	return &Dispatcher{
		callback: callback,
		logger:   slog.Default(),
		events:   log.NoopLogger{},
	}
}

// OnDataReceived implements session.Listener.
func (d *Dispatcher) OnDataReceived(sub session.Subscription, items []*session.MonitoredItem, values []*ua.DataValue) {
	n := len(items)
	if len(values) != n {
		d.logger.Warn("notification batch length mismatch", "items", len(items), "values", len(values))
		n = min(n, len(values))
	}

	for i := 0; i < n; i++ {
		d.capture(sub, items[i], values[i])
		d.metrics.ObserveNotification()
		d.callback.OnSubscribe(items[i], values[i])
	}
}

func (d *Dispatcher) capture(sub session.Subscription, item *session.MonitoredItem, value *ua.DataValue) {
	if _, noop := d.events.(log.NoopLogger); noop {
		return
	}

	ev := &log.NotificationEvent{
		NodeID: item.NodeString(),
	}
	if item != nil {
		ev.Identifier = item.Identifier
		ev.ClientHandle = item.ClientHandle
	}
	if value != nil {
		ev.Status = uint32(value.Status)
		ev.Value = log.Value(session.ValueOf(value))
		ev.SourceTimestamp = value.SourceTimestamp
	}

	var subID uint32
	if sub != nil {
		subID = sub.ID()
	}

	d.events.Log(log.Event{
		Timestamp:      time.Now(),
		RunID:          d.runID,
		Direction:      log.DirectionIn,
		Category:       log.CategoryNotification,
		Endpoint:       d.endpoint,
		SubscriptionID: subID,
		Notification:   ev,
	})
}

// Compile-time interface satisfaction check.
var _ session.Listener = (*Dispatcher)(nil)
