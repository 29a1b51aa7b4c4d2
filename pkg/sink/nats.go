package sink

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/gopcua/opcua/ua"
	"github.com/nats-io/nats.go"

	"github.com/uaflow/uaflow-go/pkg/session"
	"github.com/uaflow/uaflow-go/pkg/subscription"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "uaflow.data"

// Publisher publishes raw messages. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes every value change as a JSON Sample to
// <prefix>.<identifier>.
type NATSSink struct {
	pub    Publisher
	prefix string
	logger *slog.Logger
}

// NewNATSSink creates a NATSSink publishing through pub.
func NewNATSSink(pub Publisher, prefix string, logger *slog.Logger) *NATSSink {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSSink{
		pub:    pub,
		prefix: strings.TrimSuffix(prefix, "."),
		logger: logger,
	}
}

// ConnectNATS opens a NATS connection for a NATSSink.
func ConnectNATS(url string, logger *slog.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return nats.Connect(url,
		nats.Name("uaflow"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
}

// Subject returns the subject a value change of identifier is published to.
func (s *NATSSink) Subject(identifier string) string {
	return s.prefix + "." + sanitizeToken(identifier)
}

// OnSubscribe implements subscription.Callback.
func (s *NATSSink) OnSubscribe(item *session.MonitoredItem, value *ua.DataValue) {
	sample := NewSample(item, value)
	data, err := json.Marshal(sample)
	if err != nil {
		s.logger.Error("marshal sample", "identifier", sample.Identifier, "error", err)
		return
	}

	key := sample.Identifier
	if key == "" {
		key = sample.NodeID
	}
	if err := s.pub.Publish(s.Subject(key), data); err != nil {
		s.logger.Warn("publish sample", "identifier", sample.Identifier, "error", err)
	}
}

// sanitizeToken makes identifier a single subject token.
func sanitizeToken(identifier string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\r', '\n':
			return '_'
		}
		return r
	}, identifier)
}

// Compile-time interface satisfaction check.
var _ subscription.Callback = (*NATSSink)(nil)
