package session

import (
	"fmt"
	"time"

	"github.com/gopcua/opcua/ua"
)

// DefaultQueueSize is the notification queue depth requested for every item.
const DefaultQueueSize uint32 = 10

// MonitoredItem watches one node for value changes.
type MonitoredItem struct {
	// Identifier is the textual identifier the item was built from.
	Identifier string

	// NodeID is the resolved node address.
	NodeID *ua.NodeID

	// SamplingInterval is the requested sampling interval.
	SamplingInterval time.Duration

	// QueueSize is the requested server-side queue depth.
	QueueSize uint32

	// ClientHandle is assigned by the subscription when the item is added.
	ClientHandle uint32

	// MonitoredItemID is assigned by the server after synchronization.
	// Zero means the item is not live.
	MonitoredItemID uint32
}

// NewDataItem creates a value-monitoring item with the default queue size.
func NewDataItem(identifier string, nodeID *ua.NodeID) *MonitoredItem {
	return &MonitoredItem{
		Identifier: identifier,
		NodeID:     nodeID,
		QueueSize:  DefaultQueueSize,
	}
}

// NodeString returns the node ID in OPC UA notation, or "<nil>".
func (m *MonitoredItem) NodeString() string {
	if m == nil || m.NodeID == nil {
		return "<nil>"
	}
	return m.NodeID.String()
}

func (m *MonitoredItem) String() string {
	return fmt.Sprintf("%s (handle=%d)", m.NodeString(), m.ClientHandle)
}
