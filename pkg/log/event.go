package log

import "time"

// Event represents one captured event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID correlates the events of one reader or subscription manager (UUID).
	RunID string `cbor:"2,keyasint"`

	// Direction indicates data flow relative to the client.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Endpoint is the server endpoint URL, when known.
	Endpoint string `cbor:"5,keyasint,omitempty"`

	// SubscriptionID is the server subscription ID for subscription events.
	SubscriptionID uint32 `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Read         *ReadEvent         `cbor:"10,keyasint,omitempty"`
	Sync         *SyncEvent         `cbor:"11,keyasint,omitempty"`
	Notification *NotificationEvent `cbor:"12,keyasint,omitempty"`
	StateChange  *StateChangeEvent  `cbor:"13,keyasint,omitempty"`
	Error        *ErrorEventData    `cbor:"14,keyasint,omitempty"`
}

// Identifier returns the node identifier an event refers to, if any.
func (e Event) Identifier() string {
	switch {
	case e.Read != nil:
		return e.Read.Identifier
	case e.Notification != nil:
		return e.Notification.Identifier
	case e.Error != nil:
		return e.Error.Identifier
	default:
		return ""
	}
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the server.
	DirectionIn Direction = 0
	// DirectionOut indicates a request sent to the server.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRead indicates a read result.
	CategoryRead Category = 0
	// CategorySync indicates a monitored item synchronization.
	CategorySync Category = 1
	// CategoryNotification indicates a dispatched value change.
	CategoryNotification Category = 2
	// CategoryState indicates a state change.
	CategoryState Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRead:
		return "READ"
	case CategorySync:
		return "SYNC"
	case CategoryNotification:
		return "NOTIFICATION"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ReadEvent captures one read result.
type ReadEvent struct {
	// Identifier is the textual node identifier as requested.
	Identifier string `cbor:"1,keyasint"`

	// NodeID is the resolved node ID in OPC UA notation.
	NodeID string `cbor:"2,keyasint,omitempty"`

	// Status is the OPC UA status code; nil when the read completed without one.
	Status *uint32 `cbor:"3,keyasint,omitempty"`

	// Value is a CBOR-compatible representation of the value.
	Value any `cbor:"4,keyasint,omitempty"`

	// MaxAge is the requested staleness bound.
	MaxAge time.Duration `cbor:"5,keyasint"`

	// SourceTimestamp as reported by the server.
	SourceTimestamp time.Time `cbor:"6,keyasint"`

	// ServerTimestamp as reported by the server.
	ServerTimestamp time.Time `cbor:"7,keyasint"`
}

// SyncEvent captures one monitored item synchronization.
type SyncEvent struct {
	// Submitted is the number of items sent in the batch.
	Submitted int `cbor:"1,keyasint"`

	// Accepted is the number of items the server created.
	Accepted int `cbor:"2,keyasint"`

	// Rejected lists the refused items in submission order.
	Rejected []ItemOutcome `cbor:"3,keyasint,omitempty"`

	// SamplingInterval is the requested sampling interval.
	SamplingInterval time.Duration `cbor:"4,keyasint"`
}

// ItemOutcome describes one monitored item creation result.
type ItemOutcome struct {
	Identifier   string `cbor:"1,keyasint"`
	NodeID       string `cbor:"2,keyasint"`
	Status       uint32 `cbor:"3,keyasint"`
	ClientHandle uint32 `cbor:"4,keyasint,omitempty"`
}

// NotificationEvent captures one value change delivered to the callback.
type NotificationEvent struct {
	Identifier      string    `cbor:"1,keyasint"`
	NodeID          string    `cbor:"2,keyasint"`
	ClientHandle    uint32    `cbor:"3,keyasint,omitempty"`
	Status          uint32    `cbor:"4,keyasint"`
	Value           any       `cbor:"5,keyasint,omitempty"`
	SourceTimestamp time.Time `cbor:"6,keyasint"`
}

// StateChangeEvent captures lifecycle transitions.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntitySubscription indicates a subscription state change.
	StateEntitySubscription StateEntity = 0
	// StateEntitySession indicates a session state change.
	StateEntitySession StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntitySubscription:
		return "SUBSCRIPTION"
	case StateEntitySession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any stage.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`

	// Identifier is the node identifier involved, if any.
	Identifier string `cbor:"3,keyasint,omitempty"`

	// Code is the OPC UA status code (if applicable).
	Code *uint32 `cbor:"4,keyasint,omitempty"`
}
