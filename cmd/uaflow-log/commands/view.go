// Package commands implements the uaflow-log CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uaflow/uaflow-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Direction  *log.Direction
	Category   *log.Category
	Identifier string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Direction:  f.Direction,
		Category:   f.Category,
		Identifier: f.Identifier,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] DIRECTION CATEGORY [sub:id]
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [run:%s] %-3s %s", ts, shortenID(event.RunID), event.Direction.String(), event.Category.String())
	if event.SubscriptionID != 0 {
		fmt.Fprintf(w, " [sub:%d]", event.SubscriptionID)
	}
	fmt.Fprintln(w)

	switch {
	case event.Read != nil:
		formatReadDetails(w, event.Read)
	case event.Sync != nil:
		formatSyncDetails(w, event.Sync)
	case event.Notification != nil:
		formatNotificationDetails(w, event.Notification)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a run ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatStatus renders a status code, or "none" when absent.
func formatStatus(code *uint32) string {
	if code == nil {
		return "none"
	}
	return fmt.Sprintf("0x%08X", *code)
}

func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func formatReadDetails(w io.Writer, r *log.ReadEvent) {
	fmt.Fprintf(w, "  Node: %s", r.Identifier)
	if r.NodeID != "" && r.NodeID != r.Identifier {
		fmt.Fprintf(w, " (%s)", r.NodeID)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Status: %s  MaxAge: %s\n", formatStatus(r.Status), formatDuration(r.MaxAge))
	if r.Status != nil {
		fmt.Fprintf(w, "  Value: %s\n", formatValue(r.Value))
	}
	if !r.SourceTimestamp.IsZero() {
		fmt.Fprintf(w, "  Source: %s\n", r.SourceTimestamp.UTC().Format(timeLayout))
	}
}

func formatSyncDetails(w io.Writer, s *log.SyncEvent) {
	fmt.Fprintf(w, "  Submitted: %d  Accepted: %d  Rejected: %d  Sampling: %s\n",
		s.Submitted, s.Accepted, len(s.Rejected), formatDuration(s.SamplingInterval))
	for _, item := range s.Rejected {
		fmt.Fprintf(w, "    %s (%s) 0x%08X\n", item.Identifier, item.NodeID, item.Status)
	}
}

func formatNotificationDetails(w io.Writer, n *log.NotificationEvent) {
	fmt.Fprintf(w, "  Node: %s  Handle: %d\n", n.Identifier, n.ClientHandle)
	fmt.Fprintf(w, "  Status: 0x%08X  Value: %s\n", n.Status, formatValue(n.Value))
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: 0x%08X\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
	if err.Identifier != "" {
		fmt.Fprintf(w, "  Node: %s\n", err.Identifier)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "read":
		return log.CategoryRead, nil
	case "sync":
		return log.CategorySync, nil
	case "notification":
		return log.CategoryNotification, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be read, sync, notification, state, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
