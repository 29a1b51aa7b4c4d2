package session

import (
	"context"
	"time"

	"github.com/gopcua/opcua/ua"
)

//go:generate mockery

// Session is an open, authenticated protocol connection.
type Session interface {
	// ReadValue reads the value attribute of nodeID. maxAge is the maximum
	// acceptable age of a cached value. A nil DataValue with a nil error
	// means the read completed without a status.
	ReadValue(ctx context.Context, maxAge time.Duration, ts ua.TimestampsToReturn, nodeID *ua.NodeID) (*ua.DataValue, error)

	// CreateSubscription registers a new subscription with the server.
	CreateSubscription(ctx context.Context) (Subscription, error)
}

// Subscription is a server-side group of monitored items.
type Subscription interface {
	// ID returns the server-assigned subscription ID.
	ID() uint32

	// SetListener registers the receiver of notification batches.
	SetListener(l Listener)

	// AddMonitoredItem adds item to the pending set.
	AddMonitoredItem(item *MonitoredItem)

	// MonitoredItems returns the items added so far, in insertion order.
	MonitoredItems() []*MonitoredItem

	// SynchronizeMonitoredItems submits pending items in one batch.
	// Partial rejection is reported as a *SynchronizationError.
	SynchronizeMonitoredItems(ctx context.Context) error

	// Delete removes the subscription from the server and stops delivery.
	Delete(ctx context.Context) error
}

// Listener receives notification batches for one subscription.
// items and values are parallel slices.
type Listener interface {
	OnDataReceived(sub Subscription, items []*MonitoredItem, values []*ua.DataValue)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(sub Subscription, items []*MonitoredItem, values []*ua.DataValue)

// OnDataReceived calls f.
func (f ListenerFunc) OnDataReceived(sub Subscription, items []*MonitoredItem, values []*ua.DataValue) {
	f(sub, items, values)
}
