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

	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/session"
)

// ErrClosed is returned by calls on a closed Client.
var ErrClosed = errors.New("client closed")

// Client is an open session to one server.
type Client struct {
	cfg    Config
	conn   conn
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	subs   map[*subscription]struct{}
}

// Dial connects to cfg.Endpoint, retrying up to cfg.ConnectAttempts times.
func Dial(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	c := &Client{
		cfg:    cfg,
		logger: logger.With("endpoint", cfg.Endpoint),
		subs:   make(map[*subscription]struct{}),
	}

	backoff := NewBackoffWithConfig(cfg.Backoff)
	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectAttempts; attempt++ {
		c.stateChange("", "CONNECTING", fmt.Sprintf("attempt %d", attempt))

		cn, err := c.connect(ctx)
		if err == nil {
			c.conn = cn
			c.stateChange("CONNECTING", "CONNECTED", "")
			c.logger.Info("session established", "attempt", attempt)
			return c, nil
		}
		lastErr = err
		c.logger.Warn("connect failed", "attempt", attempt, "error", err)
		c.stateChange("CONNECTING", "DISCONNECTED", err.Error())

		if attempt == cfg.ConnectAttempts {
			break
		}

		delay := backoff.Next()
		c.logger.Debug("retrying connect", "retry", backoff.Attempts(), "delay", delay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("connect %s after %d attempts: %w", cfg.Endpoint, cfg.ConnectAttempts, lastErr)
}

func (c *Client) connect(ctx context.Context) (conn, error) {
	cn, err := newConn(c.cfg)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	if err := cn.Connect(connectCtx); err != nil {
		// Release the secure channel of a failed handshake.
		_ = cn.Close(context.Background())
		return nil, err
	}
	return cn, nil
}

// Endpoint returns the server URL.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint
}

// ReadValue implements session.Session.
func (c *Client) ReadValue(ctx context.Context, maxAge time.Duration, ts ua.TimestampsToReturn, nodeID *ua.NodeID) (*ua.DataValue, error) {
	if c.isClosed() {
		return nil, ErrClosed
	}

	req := &ua.ReadRequest{
		MaxAge:             float64(maxAge) / float64(time.Millisecond),
		TimestampsToReturn: ts,
		NodesToRead: []*ua.ReadValueID{
			{
				NodeID:       nodeID,
				AttributeID:  ua.AttributeIDValue,
				DataEncoding: &ua.QualifiedName{},
			},
		},
	}

	resp, err := c.conn.Read(ctx, req)
	if err != nil {
		if isTimeout(err) {
			return nil, nil
		}
		return nil, err
	}
	if resp == nil || len(resp.Results) == 0 || resp.Results[0] == nil {
		return nil, nil
	}

	dv := resp.Results[0]
	if dv.Status == ua.StatusBadTimeout {
		return nil, nil
	}
	return dv, nil
}

func isTimeout(err error) bool {
	return errors.Is(err, ua.StatusBadTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// CreateSubscription implements session.Session.
func (c *Client) CreateSubscription(ctx context.Context) (session.Subscription, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.mu.Unlock()

	ch := make(chan *opcua.PublishNotificationData, c.cfg.NotificationBuffer)
	srv, err := c.conn.Subscribe(ctx, c.cfg.PublishInterval, ch)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	sub := newSubscription(srv, ch, c.logger)
	sub.onDelete = c.forget

	c.mu.Lock()
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	c.logger.Debug("subscription created", "subscription_id", srv.ID(), "publish_interval", c.cfg.PublishInterval)
	return sub, nil
}

func (c *Client) forget(sub *subscription) {
	c.mu.Lock()
	delete(c.subs, sub)
	c.mu.Unlock()
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close deletes the remaining subscriptions and closes the session.
// It is safe to call Close multiple times.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	subs := make([]*subscription, 0, len(c.subs))
	for s := range c.subs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		delCtx, cancel := context.WithTimeout(ctx, DefaultDeleteTimeout)
		err := s.Delete(delCtx)
		cancel()
		if err != nil {
			c.logger.Warn("delete subscription on close", "subscription_id", s.ID(), "error", err)
		}
	}

	err := c.conn.Close(ctx)
	c.stateChange("CONNECTED", "CLOSED", "")
	return err
}

func (c *Client) stateChange(from, to, reason string) {
	c.cfg.EventLogger.Log(log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionOut,
		Category:  log.CategoryState,
		Endpoint:  c.cfg.Endpoint,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySession,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

// Compile-time interface satisfaction check.
var _ session.Session = (*Client)(nil)
