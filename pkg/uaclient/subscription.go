package uaclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopcua/opcua"
	"github.com/gopcua/opcua/ua"

	"github.com/uaflow/uaflow-go/pkg/session"
)

// ErrSubscriptionDeleted is returned by calls on a deleted subscription.
var ErrSubscriptionDeleted = errors.New("subscription deleted")

type subscription struct {
	srv    serverSubscription
	ch     <-chan *opcua.PublishNotificationData
	logger *slog.Logger

	mu         sync.Mutex
	listener   session.Listener
	items      []*session.MonitoredItem
	byHandle   map[uint32]*session.MonitoredItem
	nextHandle uint32
	synced     int
	deleted    bool

	done     chan struct{}
	stopped  chan struct{}
	onDelete func(*subscription)
}

func newSubscription(srv serverSubscription, ch <-chan *opcua.PublishNotificationData, logger *slog.Logger) *subscription {
	s := &subscription{
		srv:      srv,
		ch:       ch,
		logger:   logger.With("subscription_id", srv.ID()),
		byHandle: make(map[uint32]*session.MonitoredItem),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *subscription) ID() uint32 {
	return s.srv.ID()
}

func (s *subscription) SetListener(l session.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// AddMonitoredItem assigns the next client handle and queues item.
func (s *subscription) AddMonitoredItem(item *session.MonitoredItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextHandle++
	item.ClientHandle = s.nextHandle
	s.items = append(s.items, item)
	s.byHandle[item.ClientHandle] = item
}

func (s *subscription) MonitoredItems() []*session.MonitoredItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*session.MonitoredItem(nil), s.items...)
}

// SynchronizeMonitoredItems submits the items added since the last call.
func (s *subscription) SynchronizeMonitoredItems(ctx context.Context) error {
	s.mu.Lock()
	if s.deleted {
		s.mu.Unlock()
		return ErrSubscriptionDeleted
	}
	pending := append([]*session.MonitoredItem(nil), s.items[s.synced:]...)
	s.synced = len(s.items)
	s.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	reqs := make([]*ua.MonitoredItemCreateRequest, len(pending))
	for i, item := range pending {
		reqs[i] = createRequest(item)
	}

	resp, err := s.srv.Monitor(ctx, ua.TimestampsToReturnBoth, reqs...)
	if err != nil {
		return fmt.Errorf("create monitored items: %w", err)
	}
	if resp == nil || len(resp.Results) != len(pending) {
		return fmt.Errorf("create monitored items: got %d results for %d items", resultCount(resp), len(pending))
	}

	outcomes := make([]session.SynchronizationOutcome, len(pending))
	rejected := false
	s.mu.Lock()
	for i, res := range resp.Results {
		status := ua.StatusBad
		if res != nil {
			status = res.StatusCode
		}
		outcomes[i] = session.SynchronizationOutcome{Item: pending[i], Status: status}
		if session.IsBad(status) {
			rejected = true
			continue
		}
		pending[i].MonitoredItemID = res.MonitoredItemID
	}
	s.mu.Unlock()

	if rejected {
		return &session.SynchronizationError{Outcomes: outcomes}
	}
	return nil
}

func createRequest(item *session.MonitoredItem) *ua.MonitoredItemCreateRequest {
	return &ua.MonitoredItemCreateRequest{
		ItemToMonitor: &ua.ReadValueID{
			NodeID:       item.NodeID,
			AttributeID:  ua.AttributeIDValue,
			DataEncoding: &ua.QualifiedName{},
		},
		MonitoringMode: ua.MonitoringModeReporting,
		RequestedParameters: &ua.MonitoringParameters{
			ClientHandle:     item.ClientHandle,
			SamplingInterval: float64(item.SamplingInterval) / float64(time.Millisecond),
			QueueSize:        item.QueueSize,
			DiscardOldest:    true,
		},
	}
}

func resultCount(resp *ua.CreateMonitoredItemsResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Results)
}

// Delete stops delivery and cancels the server subscription.
// Calls after the first return nil. Delete waits for the delivery
// goroutine until ctx is done; a listener still running at that point
// finishes in the background and receives nothing further.
func (s *subscription) Delete(ctx context.Context) error {
	s.mu.Lock()
	if s.deleted {
		s.mu.Unlock()
		return nil
	}
	s.deleted = true
	s.mu.Unlock()

	close(s.done)

	var waitErr error
	select {
	case <-s.stopped:
	case <-ctx.Done():
		waitErr = fmt.Errorf("wait for delivery of subscription %d: %w", s.srv.ID(), ctx.Err())
		s.logger.Warn("listener still running at delete", "error", ctx.Err())
	}

	if s.onDelete != nil {
		s.onDelete(s)
	}
	if err := s.srv.Cancel(ctx); err != nil {
		return errors.Join(waitErr, fmt.Errorf("cancel subscription %d: %w", s.srv.ID(), err))
	}
	return waitErr
}

// pump delivers notifications on a single goroutine until Delete.
func (s *subscription) pump() {
	defer close(s.stopped)
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.ch:
			if msg != nil {
				s.handle(msg)
			}
		}
	}
}

func (s *subscription) handle(msg *opcua.PublishNotificationData) {
	if msg.Error != nil {
		s.logger.Warn("publish error", "error", msg.Error)
		return
	}

	switch v := msg.Value.(type) {
	case *ua.DataChangeNotification:
		s.dispatch(v)
	case *ua.StatusChangeNotification:
		s.logger.Warn("subscription status changed", "status", fmt.Sprintf("0x%08X", uint32(v.Status)))
	default:
		s.logger.Debug("ignoring notification", "type", fmt.Sprintf("%T", msg.Value))
	}
}

func (s *subscription) dispatch(n *ua.DataChangeNotification) {
	items := make([]*session.MonitoredItem, 0, len(n.MonitoredItems))
	values := make([]*ua.DataValue, 0, len(n.MonitoredItems))

	s.mu.Lock()
	listener := s.listener
	for _, mi := range n.MonitoredItems {
		if mi == nil {
			continue
		}
		item, ok := s.byHandle[mi.ClientHandle]
		if !ok {
			s.logger.Debug("notification for unknown client handle", "client_handle", mi.ClientHandle)
			continue
		}
		items = append(items, item)
		values = append(values, mi.Value)
	}
	s.mu.Unlock()

	if listener == nil || len(items) == 0 {
		return
	}
	listener.OnDataReceived(s, items, values)
}

// Compile-time interface satisfaction check.
var _ session.Subscription = (*subscription)(nil)
