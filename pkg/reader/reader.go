package reader

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/metrics"
	"github.com/uaflow/uaflow-go/pkg/nodeid"
	"github.com/uaflow/uaflow-go/pkg/session"
)

// Result is the outcome of reading one identifier.
type Result struct {
	// Identifier is the textual identifier as requested.
	Identifier string

	// NodeID is the resolved node address. Nil when resolution failed.
	NodeID *ua.NodeID

	// Value is the decoded value, nil when the read completed without a status.
	Value any

	// DataValue is the raw envelope with status and timestamps.
	// Empty (never nil) for a read that completed without a status.
	DataValue *ua.DataValue

	// Status is the returned status code, nil when absent.
	Status *ua.StatusCode

	// StatusGood reports whether Status has Good severity.
	StatusGood bool

	// Err is set only for failure records (see WithFailureRecords).
	Err error
}

// TimedOut reports whether the read completed without a status.
func (r Result) TimedOut() bool {
	return r.Err == nil && r.Status == nil
}

// Reader reads a fixed list of identifiers.
// A Reader holds no per-read state and may be used concurrently.
type Reader struct {
	identifiers    []string
	maxAge         time.Duration
	resolver       nodeid.Resolver
	logger         *slog.Logger
	events         log.Logger
	metrics        *metrics.Metrics
	endpoint       string
	failureRecords bool
	runID          string
}

// New creates a Reader for identifiers. The slice is copied.
func New(identifiers []string, opts ...Option) *Reader {
	r := &Reader{
		identifiers: append([]string(nil), identifiers...),
		maxAge:      DefaultMaxAge,
		resolver:    nodeid.Parser{},
		logger:      slog.Default(),
		events:      log.NoopLogger{},
		runID:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Identifiers returns a copy of the configured identifiers.
func (r *Reader) Identifiers() []string {
	return append([]string(nil), r.identifiers...)
}

// RunID returns the identifier correlating this Reader's captured events.
func (r *Reader) RunID() string {
	return r.runID
}

// Read reads every identifier once and returns the results in request order.
func (r *Reader) Read(ctx context.Context, sess session.Session) []Result {
	results := make([]Result, 0, len(r.identifiers))

	for _, identifier := range r.identifiers {
		res, stage, err := r.readOne(ctx, sess, identifier)
		if err != nil {
			r.logger.Error("read failed", "identifier", identifier, "stage", stage, "error", err)
			r.logError(identifier, stage, err)
			r.metrics.ObserveRead(metrics.StatusError)
			if r.failureRecords {
				results = append(results, Result{Identifier: identifier, NodeID: res.NodeID, Err: err})
			}
			continue
		}
		results = append(results, res)
	}

	return results
}

func (r *Reader) readOne(ctx context.Context, sess session.Session, identifier string) (Result, string, error) {
	nodeID, err := r.resolver.Parse(identifier)
	if err != nil {
		return Result{}, "resolve", err
	}

	dv, err := sess.ReadValue(ctx, r.maxAge, ua.TimestampsToReturnBoth, nodeID)
	if err != nil {
		return Result{NodeID: nodeID}, "read", fmt.Errorf("read %s: %w", nodeID, err)
	}

	if dv == nil {
		r.logger.Info("read timed out", "identifier", identifier, "node_id", nodeID.String())
		r.metrics.ObserveRead(metrics.StatusTimeout)
		r.logRead(identifier, nodeID, nil)
		return Result{
			Identifier: identifier,
			NodeID:     nodeID,
			DataValue:  &ua.DataValue{},
		}, "", nil
	}

	status := dv.Status
	res := Result{
		Identifier: identifier,
		NodeID:     nodeID,
		Value:      session.ValueOf(dv),
		DataValue:  dv,
		Status:     &status,
		StatusGood: session.IsGood(status),
	}

	if res.StatusGood {
		r.logger.Info("read value", "identifier", identifier, "node_id", nodeID.String(), "value", res.Value)
		r.metrics.ObserveRead(metrics.StatusGood)
	} else {
		r.metrics.ObserveRead(metrics.StatusBad)
	}
	r.logRead(identifier, nodeID, dv)

	return res, "", nil
}

func (r *Reader) logRead(identifier string, nodeID *ua.NodeID, dv *ua.DataValue) {
	ev := &log.ReadEvent{
		Identifier: identifier,
		NodeID:     nodeID.String(),
		MaxAge:     r.maxAge,
	}
	if dv != nil {
		code := uint32(dv.Status)
		ev.Status = &code
		ev.Value = log.Value(session.ValueOf(dv))
		ev.SourceTimestamp = dv.SourceTimestamp
		ev.ServerTimestamp = dv.ServerTimestamp
	}

	r.events.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     r.runID,
		Direction: log.DirectionIn,
		Category:  log.CategoryRead,
		Endpoint:  r.endpoint,
		Read:      ev,
	})
}

func (r *Reader) logError(identifier, stage string, err error) {
	r.events.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     r.runID,
		Direction: log.DirectionIn,
		Category:  log.CategoryError,
		Endpoint:  r.endpoint,
		Error: &log.ErrorEventData{
			Message:    err.Error(),
			Context:    stage,
			Identifier: identifier,
		},
	})
}
