// Package reader reads the current values of a batch of nodes.
//
// Each identifier is resolved and read independently against a shared
// session. A failure on one node never prevents reading the others, and
// nothing is returned as an error to the caller: outcomes are reported
// through the result list, the operational logger and the event log.
//
// Results follow request order. By default an identifier whose resolve
// or read returned an error produces no result at all; WithFailureRecords
// records an explicit failure entry instead so that every identifier
// yields exactly one Result.
//
// A read that completes without any status (typically a request timeout)
// is recorded with a nil Value, a nil Status and an empty DataValue.
package reader
