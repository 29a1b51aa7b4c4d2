package uaclient

import (
	"context"
	"time"

	"github.com/gopcua/opcua"
	"github.com/gopcua/opcua/ua"
)

// conn is the subset of *opcua.Client used by Client.
type conn interface {
	Connect(ctx context.Context) error
	Read(ctx context.Context, req *ua.ReadRequest) (*ua.ReadResponse, error)
	Subscribe(ctx context.Context, interval time.Duration, ch chan<- *opcua.PublishNotificationData) (serverSubscription, error)
	Close(ctx context.Context) error
}

// serverSubscription is the subset of *opcua.Subscription used by subscription.
type serverSubscription interface {
	ID() uint32
	Monitor(ctx context.Context, ts ua.TimestampsToReturn, items ...*ua.MonitoredItemCreateRequest) (*ua.CreateMonitoredItemsResponse, error)
	Cancel(ctx context.Context) error
}

// newConn builds the gopcua client. Replaced in tests.
var newConn = func(cfg Config) (conn, error) {
	c, err := opcua.NewClient(cfg.Endpoint, clientOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	return &gopcuaConn{c: c}, nil
}

func clientOptions(cfg Config) []opcua.Option {
	opts := []opcua.Option{
		opcua.RequestTimeout(cfg.RequestTimeout),
		opcua.AutoReconnect(false),
	}

	if cfg.securityEnabled() {
		opts = append(opts, opcua.SecurityPolicy(cfg.SecurityPolicy))
		opts = append(opts, opcua.SecurityModeString(cfg.SecurityMode))
	}

	if cfg.Username != "" {
		opts = append(opts, opcua.AuthUsername(cfg.Username, cfg.Password))
	} else {
		opts = append(opts, opcua.AuthAnonymous())
	}

	if cfg.CertificateFile != "" && cfg.PrivateKeyFile != "" {
		opts = append(opts, opcua.CertificateFile(cfg.CertificateFile))
		opts = append(opts, opcua.PrivateKeyFile(cfg.PrivateKeyFile))
	}

	return opts
}

type gopcuaConn struct {
	c *opcua.Client
}

func (g *gopcuaConn) Connect(ctx context.Context) error {
	return g.c.Connect(ctx)
}

func (g *gopcuaConn) Read(ctx context.Context, req *ua.ReadRequest) (*ua.ReadResponse, error) {
	return g.c.Read(ctx, req)
}

func (g *gopcuaConn) Subscribe(ctx context.Context, interval time.Duration, ch chan<- *opcua.PublishNotificationData) (serverSubscription, error) {
	sub, err := g.c.Subscribe(ctx, &opcua.SubscriptionParameters{Interval: interval}, ch)
	if err != nil {
		return nil, err
	}
	return &gopcuaSubscription{s: sub}, nil
}

func (g *gopcuaConn) Close(ctx context.Context) error {
	return g.c.Close(ctx)
}

type gopcuaSubscription struct {
	s *opcua.Subscription
}

func (g *gopcuaSubscription) ID() uint32 {
	return g.s.SubscriptionID
}

func (g *gopcuaSubscription) Monitor(ctx context.Context, ts ua.TimestampsToReturn, items ...*ua.MonitoredItemCreateRequest) (*ua.CreateMonitoredItemsResponse, error) {
	return g.s.Monitor(ctx, ts, items...)
}

func (g *gopcuaSubscription) Cancel(ctx context.Context) error {
	return g.s.Cancel(ctx)
}
