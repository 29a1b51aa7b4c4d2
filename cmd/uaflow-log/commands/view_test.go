package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/uaflow/uaflow-go/pkg/log"
)

func TestFormatReadEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.123456Z",
		"[run:run-aaaa]",
		"IN ",
		"READ",
		"Node: ns=2;s=Temperature",
		"Status: 0x00000000",
		"MaxAge: 10.000s",
		"Value: 21.5",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestFormatReadTimeout(t *testing.T) {
	event := log.Event{
		Category: log.CategoryRead,
		Read:     &log.ReadEvent{Identifier: "i=2258", MaxAge: 0},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Status: none") {
		t.Errorf("expected absent status, got: %s", output)
	}
	if strings.Contains(output, "Value:") {
		t.Errorf("timeout should not print a value, got: %s", output)
	}
}

func TestFormatSyncEvent(t *testing.T) {
	event := log.Event{
		Category:       log.CategorySync,
		Direction:      log.DirectionOut,
		SubscriptionID: 3,
		Sync: &log.SyncEvent{
			Submitted:        3,
			Accepted:         2,
			SamplingInterval: time.Second,
			Rejected: []log.ItemOutcome{
				{Identifier: "ns=2;s=Missing", NodeID: "ns=2;s=Missing", Status: 0x80340000},
			},
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "[sub:3]") {
		t.Errorf("expected subscription ID, got: %s", output)
	}
	if !strings.Contains(output, "Submitted: 3  Accepted: 2  Rejected: 1") {
		t.Errorf("expected counts, got: %s", output)
	}
	if !strings.Contains(output, "ns=2;s=Missing (ns=2;s=Missing) 0x80340000") {
		t.Errorf("expected rejected item, got: %s", output)
	}
}

func TestFormatStateChangeEvent(t *testing.T) {
	event := log.Event{
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySubscription,
			OldState: "SYNCHRONIZED",
			NewState: "BLOCKED",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "SUBSCRIPTION") || !strings.Contains(output, "SYNCHRONIZED -> BLOCKED") {
		t.Errorf("unexpected state output: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[2])
	output := buf.String()

	for _, want := range []string{"ERROR", "Message: BadNodeIdUnknown", "Code: 0x80340000", "Context: synchronize monitored items", "Node: ns=2;s=Missing"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestParseFlags(t *testing.T) {
	if d, err := ParseDirectionFlag("OUT"); err != nil || d != log.DirectionOut {
		t.Errorf("ParseDirectionFlag(OUT) = %v, %v", d, err)
	}
	if _, err := ParseDirectionFlag("sideways"); err == nil {
		t.Error("expected error for invalid direction")
	}

	tests := map[string]log.Category{
		"read":         log.CategoryRead,
		"SYNC":         log.CategorySync,
		"notification": log.CategoryNotification,
		"state":        log.CategoryState,
		"error":        log.CategoryError,
	}
	for in, want := range tests {
		got, err := ParseCategoryFlag(in)
		if err != nil || got != want {
			t.Errorf("ParseCategoryFlag(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCategoryFlag("message"); err == nil {
		t.Error("expected error for invalid category")
	}
}

func TestRunViewWithFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	cat := log.CategoryNotification
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "ns=2;s=Counter") {
		t.Errorf("expected notification event, got: %s", output)
	}
	if strings.Contains(output, "Temperature") {
		t.Errorf("read event should be filtered out, got: %s", output)
	}

	buf.Reset()
	if err := RunView(path, ViewFilter{Identifier: "ns=2;s=Temperature"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if strings.Count(buf.String(), "[run:") != 1 {
		t.Errorf("expected exactly one event, got: %s", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500.000us"},
		{250 * time.Millisecond, "250.000ms"},
		{10 * time.Second, "10.000s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
