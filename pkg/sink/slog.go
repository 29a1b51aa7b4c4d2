package sink

import (
	"log/slog"

	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/session"
	"github.com/uaflow/uaflow-go/pkg/subscription"
)

// SlogSink logs every value change at info level.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a SlogSink. A nil logger uses slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// OnSubscribe implements subscription.Callback.
func (s *SlogSink) OnSubscribe(item *session.MonitoredItem, value *ua.DataValue) {
	sample := NewSample(item, value)
	s.logger.Info("value changed",
		"identifier", sample.Identifier,
		"node_id", sample.NodeID,
		"value", sample.Value,
		"status", sample.Status,
		"source_timestamp", sample.SourceTimestamp)
}

// Compile-time interface satisfaction check.
var _ subscription.Callback = (*SlogSink)(nil)
