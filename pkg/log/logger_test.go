package log

import (
	"sync"
	"testing"
	"time"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingLogger) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestNoopLoggerAcceptsAllPayloads(t *testing.T) {
	var logger Logger = NoopLogger{}
	logger.Log(Event{Timestamp: time.Now(), Category: CategoryRead, Read: &ReadEvent{}})
	logger.Log(Event{Timestamp: time.Now(), Category: CategorySync, Sync: &SyncEvent{}})
	logger.Log(Event{Timestamp: time.Now(), Category: CategoryNotification, Notification: &NotificationEvent{}})
	logger.Log(Event{Timestamp: time.Now(), Category: CategoryState, StateChange: &StateChangeEvent{}})
	logger.Log(Event{Timestamp: time.Now(), Category: CategoryError, Error: &ErrorEventData{}})
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	multi := NewMultiLogger(a, nil, b)

	multi.Log(Event{RunID: "run-1"})
	multi.Log(Event{RunID: "run-2"})

	if a.count() != 2 {
		t.Errorf("logger a: got %d events, want 2", a.count())
	}
	if b.count() != 2 {
		t.Errorf("logger b: got %d events, want 2", b.count())
	}
	if b.events[1].RunID != "run-2" {
		t.Errorf("logger b order: got %q, want %q", b.events[1].RunID, "run-2")
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{RunID: "run-1"})
}
