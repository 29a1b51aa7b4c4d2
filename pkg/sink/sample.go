package sink

import (
	"fmt"
	"time"

	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/session"
)

// Sample is the JSON form of one value change.
type Sample struct {
	Identifier      string    `json:"identifier"`
	NodeID          string    `json:"node_id"`
	Value           any       `json:"value"`
	Status          string    `json:"status"`
	StatusCode      uint32    `json:"status_code"`
	Good            bool      `json:"good"`
	SourceTimestamp time.Time `json:"source_timestamp,omitzero"`
	ServerTimestamp time.Time `json:"server_timestamp,omitzero"`
}

// NewSample builds a Sample from a monitored item and its value.
func NewSample(item *session.MonitoredItem, value *ua.DataValue) Sample {
	s := Sample{NodeID: item.NodeString()}
	if item != nil {
		s.Identifier = item.Identifier
	}
	if value != nil {
		s.Value = session.ValueOf(value)
		s.StatusCode = uint32(value.Status)
		s.Good = session.IsGood(value.Status)
		s.SourceTimestamp = value.SourceTimestamp
		s.ServerTimestamp = value.ServerTimestamp
	}
	s.Status = statusText(s.StatusCode)
	return s
}

func statusText(code uint32) string {
	switch {
	case session.IsGood(ua.StatusCode(code)):
		return "good"
	case session.IsUncertain(ua.StatusCode(code)):
		return fmt.Sprintf("uncertain (0x%08X)", code)
	default:
		return fmt.Sprintf("bad (0x%08X)", code)
	}
}
