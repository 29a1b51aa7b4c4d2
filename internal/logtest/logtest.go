// Package logtest provides an slog handler that records log records for
// assertions in tests.
package logtest

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a captured log record with its attributes flattened.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// Handler records every log record it receives.
type Handler struct {
	mu      sync.Mutex
	records []Record
	attrs   []slog.Attr
	parent  *Handler
}

// New returns a Handler and a logger writing to it.
func New() (*Handler, *slog.Logger) {
	h := &Handler{}
	return h, slog.New(h)
}

// Enabled accepts every level.
func (h *Handler) Enabled(context.Context, slog.Level) bool { return true }

// Handle records r.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	rec := Record{Level: r.Level, Message: r.Message, Attrs: make(map[string]any)}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.Any()
		return true
	})

	root := h.root()
	root.mu.Lock()
	root.records = append(root.records, rec)
	root.mu.Unlock()
	return nil
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &Handler{attrs: merged, parent: h.root()}
}

// WithGroup is not supported; groups are flattened.
func (h *Handler) WithGroup(string) slog.Handler { return h }

func (h *Handler) root() *Handler {
	if h.parent != nil {
		return h.parent
	}
	return h
}

// Records returns a copy of the captured records.
func (h *Handler) Records() []Record {
	root := h.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	return append([]Record(nil), root.records...)
}

// Messages returns the records with the given message.
func (h *Handler) Messages(msg string) []Record {
	var out []Record
	for _, r := range h.Records() {
		if r.Message == msg {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of records with the given message.
func (h *Handler) Count(msg string) int {
	return len(h.Messages(msg))
}
