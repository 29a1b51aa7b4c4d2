// Package log provides structured event capture for reads and subscriptions.
//
// This package defines the Logger interface and Event types for recording
// what the orchestration layer did against a server: every read result,
// every monitored item synchronization, every dispatched notification and
// every subscription state change. It is separate from operational logging
// (slog): the event log is a complete machine-readable trace for debugging
// and analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	events := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	events, _ := log.NewFileLogger("/var/log/uaflow/plant.ualog")
//
//	// Both: use MultiLogger
//	events := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Read: one per read result (ReadEvent)
//   - Sync: one per monitored item synchronization (SyncEvent)
//   - Notification: one per dispatched value change (NotificationEvent)
//   - State: subscription lifecycle transitions (StateChangeEvent)
//   - Error: failures at any stage (ErrorEventData)
//
// Events of one reader or subscription manager share a RunID.
//
// # File Format
//
// Log files use CBOR encoding with .ualog extension. The uaflow-log CLI tool
// provides viewing, filtering, and export capabilities.
package log
