package log

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func decodeAll(t *testing.T, path string) []Event {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	decoder := NewDecoder(bytes.NewReader(data))
	var events []Event
	for {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			break
		}
		events = append(events, event)
	}
	return events
}

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test"+FileExtension)

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{
		Timestamp: time.Now(),
		RunID:     "run-1",
		Direction: DirectionIn,
		Category:  CategoryRead,
		Read:      &ReadEvent{Identifier: "ns=2;s=Temperature"},
	})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events := decodeAll(t, path)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Read == nil || events[0].Read.Identifier != "ns=2;s=Temperature" {
		t.Errorf("unexpected read payload: %+v", events[0].Read)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test"+FileExtension)

	logger1, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger1.Log(Event{Timestamp: time.Now(), RunID: "run-1", Category: CategoryState})
	logger1.Close()

	info1, _ := os.Stat(path)
	size1 := info1.Size()

	logger2, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger second open failed: %v", err)
	}
	logger2.Log(Event{Timestamp: time.Now(), RunID: "run-2", Category: CategoryState})
	logger2.Close()

	info2, _ := os.Stat(path)
	if info2.Size() <= size1 {
		t.Errorf("file did not grow: size before=%d, size after=%d", size1, info2.Size())
	}

	events := decodeAll(t, path)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].RunID != "run-1" {
		t.Errorf("first event RunID: got %q, want %q", events[0].RunID, "run-1")
	}
	if events[1].RunID != "run-2" {
		t.Errorf("second event RunID: got %q, want %q", events[1].RunID, "run-2")
	}
}

func TestFileLoggerThreadSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test"+FileExtension)

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const numGoroutines = 10
	const eventsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				logger.Log(Event{
					Timestamp: time.Now(),
					RunID:     "run-" + string(rune('A'+id)),
					Category:  CategoryNotification,
				})
			}
		}(i)
	}
	wg.Wait()
	logger.Close()

	if got, want := len(decodeAll(t, path)), numGoroutines*eventsPerGoroutine; got != want {
		t.Errorf("event count: got %d, want %d", got, want)
	}
}

func TestFileLoggerClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test"+FileExtension)

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now(), RunID: "run-1"})

	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close is ignored.
	logger.Log(Event{Timestamp: time.Now(), RunID: "run-2"})

	if got := len(decodeAll(t, path)); got != 1 {
		t.Errorf("event count after close: got %d, want 1", got)
	}
}

func TestFileLoggerInvalidPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "test"+FileExtension))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
