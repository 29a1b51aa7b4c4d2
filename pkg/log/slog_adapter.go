package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful for development when you want to see events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Endpoint != "" {
		attrs = append(attrs, slog.String("endpoint", event.Endpoint))
	}
	if event.SubscriptionID != 0 {
		attrs = append(attrs, slog.Uint64("subscription_id", uint64(event.SubscriptionID)))
	}

	switch {
	case event.Read != nil:
		attrs = append(attrs,
			slog.String("identifier", event.Read.Identifier),
			slog.String("node_id", event.Read.NodeID),
			slog.Duration("max_age", event.Read.MaxAge),
		)
		if event.Read.Status != nil {
			attrs = append(attrs, slog.Uint64("status", uint64(*event.Read.Status)))
		}
		if event.Read.Value != nil {
			attrs = append(attrs, slog.Any("value", event.Read.Value))
		}
	case event.Sync != nil:
		attrs = append(attrs,
			slog.Int("submitted", event.Sync.Submitted),
			slog.Int("accepted", event.Sync.Accepted),
			slog.Int("rejected", len(event.Sync.Rejected)),
		)
	case event.Notification != nil:
		attrs = append(attrs,
			slog.String("identifier", event.Notification.Identifier),
			slog.String("node_id", event.Notification.NodeID),
			slog.Uint64("status", uint64(event.Notification.Status)),
			slog.Any("value", event.Notification.Value),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Identifier != "" {
			attrs = append(attrs, slog.String("identifier", event.Error.Identifier))
		}
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Uint64("error_code", uint64(*event.Error.Code)))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
