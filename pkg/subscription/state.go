package subscription

// State is the lifecycle state of a Manager.
type State uint8

const (
	// StateIdle means Run has not been called.
	StateIdle State = iota
	// StateCreated means the subscription exists on the server.
	StateCreated
	// StateListening means the dispatcher is attached.
	StateListening
	// StateMonitoredItemsBuilt means items are queued for synchronization.
	StateMonitoredItemsBuilt
	// StateSynchronized means the batch creation call has completed.
	StateSynchronized
	// StateBlocked means Run is parked on the gate.
	StateBlocked
	// StateFailed means setup was abandoned.
	StateFailed
	// StateClosed means the gate was released and the subscription deleted.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateCreated:
		return "CREATED"
	case StateListening:
		return "LISTENING"
	case StateMonitoredItemsBuilt:
		return "MONITORED_ITEMS_BUILT"
	case StateSynchronized:
		return "SYNCHRONIZED"
	case StateBlocked:
		return "BLOCKED"
	case StateFailed:
		return "FAILED"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateFailed || s == StateClosed
}
