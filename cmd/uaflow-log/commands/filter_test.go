package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uaflow/uaflow-go/pkg/log"
)

func readEvents(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer reader.Close()

	var events []log.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		events = append(events, event)
	}
}

func TestFilterByRunID(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.ualog")

	var buf bytes.Buffer
	err := RunFilter(path, FilterOptions{Output: out, RunID: "run-bbbb-2222"}, &buf)
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Filtered 2 events") {
		t.Errorf("unexpected summary: %s", buf.String())
	}

	events := readEvents(t, out)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, e := range events {
		if e.RunID != "run-bbbb-2222" {
			t.Errorf("unexpected run ID %q", e.RunID)
		}
	}
}

func TestFilterByCategoryAndTime(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.ualog")

	err := RunFilter(path, FilterOptions{
		Output:    out,
		Category:  "error",
		TimeStart: "2026-01-28T10:15:33Z",
	}, io.Discard)
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readEvents(t, out)
	if len(events) != 1 || events[0].Error == nil {
		t.Fatalf("expected one error event, got %+v", events)
	}
}

func TestFilterByIdentifier(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.ualog")

	if err := RunFilter(path, FilterOptions{Output: out, Identifier: "ns=2;s=Counter"}, io.Discard); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readEvents(t, out)
	if len(events) != 1 || events[0].Notification == nil {
		t.Fatalf("expected one notification event, got %+v", events)
	}
}

func TestFilterInvalidOptions(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.ualog")

	tests := []FilterOptions{
		{Output: out, TimeStart: "yesterday"},
		{Output: out, TimeEnd: "tomorrow"},
		{Output: out, Direction: "up"},
		{Output: out, Category: "frames"},
	}
	for _, opts := range tests {
		if err := RunFilter(path, opts, io.Discard); err == nil {
			t.Errorf("expected error for %+v", opts)
		}
	}
}
