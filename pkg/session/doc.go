// Package session defines the contracts between the orchestration layer and
// an open OPC UA session.
//
// The Session interface is the only thing the reader and subscription
// packages depend on. pkg/uaclient provides the implementation backed by
// github.com/gopcua/opcua; tests use the generated mocks in session/mocks.
//
// # Reads
//
// ReadValue reads the Value attribute of one node with a staleness bound.
// A nil DataValue together with a nil error reports a read that completed
// without any status, typically a request timeout.
//
// # Subscriptions
//
// A Subscription groups monitored items that share one notification channel.
// Items are added locally with AddMonitoredItem and submitted to the server
// in one batch by SynchronizeMonitoredItems. When the server rejects some of
// them the call returns a *SynchronizationError listing one outcome per
// submitted item; accepted items stay live.
//
// Notification batches are delivered to the registered Listener as parallel
// item/value slices on a goroutine owned by the implementation.
package session
