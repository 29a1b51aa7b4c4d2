// Package uaclient implements the session contracts on top of gopcua.
//
// Dial opens one session to an OPC UA server, retrying the initial connect
// with exponential backoff. There is no reconnection once the session is
// up; a lost session surfaces as read errors and stops notification
// delivery.
//
// Every subscription owns a single delivery goroutine that drains the
// publish channel and invokes the registered listener, so notification
// batches of one subscription are delivered one at a time and in order.
package uaclient
