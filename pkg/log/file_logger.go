package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

var _ Logger = (*FileLogger)(nil)

// FileLogger appends CBOR encoded events to a capture file. Log and Close
// may be called from any goroutine.
type FileLogger struct {
	mu      sync.Mutex
	f       *os.File
	enc     *cbor.Encoder
	stopped bool
}

// NewFileLogger opens path for appending, creating it when missing.
// Existing captures are extended rather than truncated.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{f: f, enc: NewEncoder(f)}, nil
}

func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	// Encoding errors are dropped; capture must not disrupt reads or delivery.
	_ = l.enc.Encode(event)
}

// Close releases the file. Later calls to Log or Close are no-ops.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return nil
	}
	l.stopped = true
	return l.f.Close()
}
