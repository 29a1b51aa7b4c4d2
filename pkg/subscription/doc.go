// Package subscription keeps a set of nodes under server-side monitoring
// and forwards every value change to an application callback.
//
// # Lifecycle
//
// Manager.Run walks a fixed sequence of states:
//
//	Created -> Listening -> MonitoredItemsBuilt -> Synchronized -> Blocked -> Closed
//
// Created: the subscription is registered with the session.
// Listening: a Dispatcher is attached as the subscription's listener.
// MonitoredItemsBuilt: one monitored item per resolvable identifier is
// queued with the configured sampling interval and a queue size of 10.
// Synchronized: all queued items are submitted in one batch. Items the
// server rejects are logged one by one; the accepted items stay live.
// Blocked: the caller is parked on a one-shot Gate until its context is
// cancelled or Shutdown is called. The subscription is then deleted and
// the manager is Closed.
//
// Any other setup error moves the manager to Failed and Run returns.
// Run never returns an error; State and Outcomes expose what happened.
//
// # Delivery
//
// Value changes are delivered on the session's delivery goroutine, not on
// the goroutine blocked in Run. The Dispatcher invokes the callback once
// per (item, value) pair in the order the session delivered them and does
// not recover from callback panics.
package subscription
