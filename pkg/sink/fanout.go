package sink

import (
	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/session"
	"github.com/uaflow/uaflow-go/pkg/subscription"
)

// Fanout invokes several callbacks in order.
type Fanout []subscription.Callback

// NewFanout returns a Fanout over the non-nil callbacks.
func NewFanout(callbacks ...subscription.Callback) Fanout {
	f := make(Fanout, 0, len(callbacks))
	for _, cb := range callbacks {
		if cb != nil {
			f = append(f, cb)
		}
	}
	return f
}

// OnSubscribe implements subscription.Callback.
func (f Fanout) OnSubscribe(item *session.MonitoredItem, value *ua.DataValue) {
	for _, cb := range f {
		cb.OnSubscribe(item, value)
	}
}
