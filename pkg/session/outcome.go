package session

import (
	"fmt"

	"github.com/gopcua/opcua/ua"
)

// SynchronizationOutcome is the creation result of one monitored item.
type SynchronizationOutcome struct {
	Item   *MonitoredItem
	Status ua.StatusCode
}

// Accepted reports whether the server created the item.
func (o SynchronizationOutcome) Accepted() bool {
	return !IsBad(o.Status)
}

// Rejected reports whether the server refused the item.
func (o SynchronizationOutcome) Rejected() bool {
	return IsBad(o.Status)
}

// SynchronizationError reports that at least one monitored item was rejected.
// Outcomes holds one entry per submitted item, in submission order.
type SynchronizationError struct {
	Outcomes []SynchronizationOutcome
}

func (e *SynchronizationError) Error() string {
	return fmt.Sprintf("monitored item synchronization failed: %d of %d items rejected",
		len(e.RejectedOutcomes()), len(e.Outcomes))
}

// RejectedOutcomes returns the rejected outcomes in submission order.
func (e *SynchronizationError) RejectedOutcomes() []SynchronizationOutcome {
	var rejected []SynchronizationOutcome
	for _, o := range e.Outcomes {
		if o.Rejected() {
			rejected = append(rejected, o)
		}
	}
	return rejected
}
