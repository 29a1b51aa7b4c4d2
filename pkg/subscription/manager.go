package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/metrics"
	"github.com/uaflow/uaflow-go/pkg/nodeid"
	"github.com/uaflow/uaflow-go/pkg/session"
)

// ErrNoMonitoredItems is recorded when identifiers were given but none resolved.
var ErrNoMonitoredItems = errors.New("no monitored items could be built")

// Manager sets up one subscription for a fixed list of identifiers and
// keeps it alive until released.
type Manager struct {
	identifiers      []string
	samplingInterval time.Duration
	deleteTimeout    time.Duration
	resolver         nodeid.Resolver
	logger           *slog.Logger
	events           log.Logger
	metrics          *metrics.Metrics
	endpoint         string
	runID            string

	gate *Gate

	mu       sync.RWMutex
	started  bool
	state    State
	sub      session.Subscription
	outcomes []session.SynchronizationOutcome
	lastErr  error
}

// NewManager creates a Manager for identifiers. The slice is copied.
func NewManager(identifiers []string, opts ...Option) *Manager {
	m := &Manager{
		identifiers:      append([]string(nil), identifiers...),
		samplingInterval: DefaultSamplingInterval,
		deleteTimeout:    DefaultDeleteTimeout,
		resolver:         nodeid.Parser{},
		logger:           slog.Default(),
		events:           log.NoopLogger{},
		runID:            uuid.NewString(),
		gate:             NewGate(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunID returns the identifier correlating this Manager's captured events.
func (m *Manager) RunID() string {
	return m.runID
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Outcomes returns the per-item synchronization outcomes in submission order.
// It is empty until the manager reaches StateSynchronized.
func (m *Manager) Outcomes() []session.SynchronizationOutcome {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]session.SynchronizationOutcome(nil), m.outcomes...)
}

// Err returns the error that moved the manager to StateFailed, if any.
func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Subscription returns the subscription created by Run, or nil.
func (m *Manager) Subscription() session.Subscription {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sub
}

// Shutdown releases the gate Run is blocked on. Safe to call at any time
// and more than once.
func (m *Manager) Shutdown() {
	m.gate.Release()
}

// Done returns a channel closed once Shutdown has been called.
func (m *Manager) Done() <-chan struct{} {
	return m.gate.Done()
}

// Run creates the subscription, synchronizes the monitored items and blocks
// until ctx is done or Shutdown is called. Value changes are delivered to
// callback on the session's delivery goroutine while Run is blocked.
//
// Run returns nothing. Setup failures are logged and leave the manager in
// StateFailed. A Manager runs at most once.
func (m *Manager) Run(ctx context.Context, sess session.Session, callback Callback) {
	if !m.begin() {
		m.logger.Warn("subscription manager already started", "run_id", m.runID, "state", m.State().String())
		return
	}

	sub, err := sess.CreateSubscription(ctx)
	if err != nil {
		m.fail(nil, "create subscription", err)
		return
	}
	m.mu.Lock()
	m.sub = sub
	m.mu.Unlock()
	m.transition(StateCreated, "")

	sub.SetListener(m.newDispatcher(sub, callback))
	m.transition(StateListening, "")

	items := m.buildItems()
	if len(m.identifiers) > 0 && len(items) == 0 {
		m.fail(sub, "build monitored items", ErrNoMonitoredItems)
		return
	}
	for _, item := range items {
		sub.AddMonitoredItem(item)
	}
	m.transition(StateMonitoredItemsBuilt, fmt.Sprintf("%d items", len(items)))

	if len(items) > 0 {
		if err := m.synchronize(ctx, sub, items); err != nil {
			m.fail(sub, "synchronize monitored items", err)
			return
		}
	}
	m.transition(StateSynchronized, "")

	m.metrics.SubscriptionStarted()
	m.transition(StateBlocked, "")
	m.logger.Info("subscription active",
		"subscription_id", sub.ID(),
		"items", len(items),
		"sampling_interval", m.samplingInterval)

	reason := "shutdown"
	if err := m.gate.Wait(ctx); err != nil {
		reason = err.Error()
		m.gate.Release()
	}
	m.metrics.SubscriptionStopped()

	m.deleteSubscription(sub)
	m.transition(StateClosed, reason)
	m.logger.Info("subscription closed", "subscription_id", sub.ID(), "reason", reason)
}

func (m *Manager) begin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return false
	}
	m.started = true
	return true
}

func (m *Manager) newDispatcher(sub session.Subscription, callback Callback) *Dispatcher {
	d := NewDispatcher(callback)
	d.logger = m.logger
	d.events = m.events
	d.metrics = m.metrics
	d.runID = m.runID
	d.endpoint = m.endpoint
	return d
}

// buildItems resolves every identifier independently; failures are logged
// and skipped.
func (m *Manager) buildItems() []*session.MonitoredItem {
	items := make([]*session.MonitoredItem, 0, len(m.identifiers))
	for _, identifier := range m.identifiers {
		nodeID, err := m.resolver.Parse(identifier)
		if err != nil {
			m.logger.Error("resolve identifier failed", "identifier", identifier, "error", err)
			m.logError("resolve", identifier, err, nil)
			continue
		}
		item := session.NewDataItem(identifier, nodeID)
		item.SamplingInterval = m.samplingInterval
		items = append(items, item)
	}
	return items
}

// synchronize submits items in one batch. A partial rejection is logged as
// a summary plus one line per item and is not an error; anything else is
// returned.
func (m *Manager) synchronize(ctx context.Context, sub session.Subscription, items []*session.MonitoredItem) error {
	err := sub.SynchronizeMonitoredItems(ctx)

	var outcomes []session.SynchronizationOutcome
	var syncErr *session.SynchronizationError
	switch {
	case err == nil:
		outcomes = make([]session.SynchronizationOutcome, len(items))
		for i, item := range items {
			outcomes[i] = session.SynchronizationOutcome{Item: item, Status: ua.StatusOK}
		}
	case errors.As(err, &syncErr):
		outcomes = syncErr.Outcomes
		m.logger.Error(syncErr.Error(), "subscription_id", sub.ID())
		for _, o := range syncErr.RejectedOutcomes() {
			m.logger.Error("monitored item rejected",
				"identifier", o.Item.Identifier,
				"node_id", o.Item.NodeString(),
				"status", fmt.Sprintf("0x%08X", uint32(o.Status)))
		}
	default:
		return err
	}

	m.mu.Lock()
	m.outcomes = outcomes
	m.mu.Unlock()

	m.recordSync(sub, outcomes)
	return nil
}

func (m *Manager) recordSync(sub session.Subscription, outcomes []session.SynchronizationOutcome) {
	ev := &log.SyncEvent{
		Submitted:        len(outcomes),
		SamplingInterval: m.samplingInterval,
	}
	for _, o := range outcomes {
		if o.Accepted() {
			ev.Accepted++
			continue
		}
		ev.Rejected = append(ev.Rejected, log.ItemOutcome{
			Identifier:   o.Item.Identifier,
			NodeID:       o.Item.NodeString(),
			Status:       uint32(o.Status),
			ClientHandle: o.Item.ClientHandle,
		})
	}
	m.metrics.ObserveSynchronization(ev.Accepted, len(ev.Rejected))

	m.events.Log(log.Event{
		Timestamp:      time.Now(),
		RunID:          m.runID,
		Direction:      log.DirectionIn,
		Category:       log.CategorySync,
		Endpoint:       m.endpoint,
		SubscriptionID: sub.ID(),
		Sync:           ev,
	})
}

func (m *Manager) fail(sub session.Subscription, stage string, err error) {
	m.logger.Error("subscription setup failed", "stage", stage, "error", err)

	m.mu.Lock()
	m.lastErr = fmt.Errorf("%s: %w", stage, err)
	m.mu.Unlock()

	var code *uint32
	var sc ua.StatusCode
	if errors.As(err, &sc) {
		c := uint32(sc)
		code = &c
	}
	m.logError(stage, "", err, code)

	if sub != nil {
		m.deleteSubscription(sub)
	}
	m.transition(StateFailed, stage)
}

func (m *Manager) deleteSubscription(sub session.Subscription) {
	ctx, cancel := context.WithTimeout(context.Background(), m.deleteTimeout)
	defer cancel()
	if err := sub.Delete(ctx); err != nil {
		m.logger.Warn("delete subscription failed", "subscription_id", sub.ID(), "error", err)
	}
}

func (m *Manager) transition(to State, reason string) {
	m.mu.Lock()
	from := m.state
	m.state = to
	sub := m.sub
	m.mu.Unlock()

	var subID uint32
	if sub != nil {
		subID = sub.ID()
	}
	m.logger.Debug("subscription state", "from", from.String(), "to", to.String())

	m.events.Log(log.Event{
		Timestamp:      time.Now(),
		RunID:          m.runID,
		Direction:      log.DirectionOut,
		Category:       log.CategoryState,
		Endpoint:       m.endpoint,
		SubscriptionID: subID,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySubscription,
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

func (m *Manager) logError(stage, identifier string, err error, code *uint32) {
	m.events.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     m.runID,
		Direction: log.DirectionIn,
		Category:  log.CategoryError,
		Endpoint:  m.endpoint,
		Error: &log.ErrorEventData{
			Message:    err.Error(),
			Context:    stage,
			Identifier: identifier,
			Code:       code,
		},
	})
}
