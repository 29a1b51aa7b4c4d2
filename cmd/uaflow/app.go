package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/uaflow/uaflow-go/cmd/uaflow/interactive"
	"github.com/uaflow/uaflow-go/pkg/config"
	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/metrics"
	"github.com/uaflow/uaflow-go/pkg/reader"
	"github.com/uaflow/uaflow-go/pkg/session"
	"github.com/uaflow/uaflow-go/pkg/sink"
	"github.com/uaflow/uaflow-go/pkg/subscription"
	"github.com/uaflow/uaflow-go/pkg/uaclient"
)

const closeTimeout = 5 * time.Second

// client is the part of *uaclient.Client the commands use.
type client interface {
	session.Session
	Endpoint() string
	Close(ctx context.Context) error
}

var dial = func(ctx context.Context, cfg uaclient.Config, logger *slog.Logger) (client, error) {
	c, err := uaclient.Dial(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// app holds the ambient services shared by all commands.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	events  log.Logger
	metrics *metrics.Metrics
	stdout  io.Writer

	closers []func() error
}

func newApp(cfg config.Config, stdout, stderr io.Writer) (*app, error) {
	a := &app{
		cfg:     cfg,
		logger:  cfg.Log.Logger(stderr),
		events:  log.NoopLogger{},
		metrics: metrics.New(prometheus.NewRegistry()),
		stdout:  stdout,
	}

	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, fmt.Errorf("open event log: %w", err)
		}
		a.closers = append(a.closers, fl.Close)
		a.events = log.NewMultiLogger(fl, log.NewSlogAdapter(a.logger))
		a.logger.Info("event log enabled", "path", cfg.EventLog)
	}
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

func run(ctx context.Context, cmd string, cfg config.Config, stdout, stderr io.Writer) error {
	a, err := newApp(cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.close()

	g, gctx := errgroup.WithContext(ctx)
	workCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			return a.serveMetrics(workCtx)
		})
	}

	g.Go(func() error {
		defer cancel()

		clientCfg := cfg.ClientConfig()
		clientCfg.EventLogger = a.events
		c, err := dial(workCtx, clientCfg, a.logger)
		if err != nil {
			return fmt.Errorf("connect %s: %w", cfg.Endpoint, err)
		}
		defer func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), closeTimeout)
			defer closeCancel()
			if err := c.Close(closeCtx); err != nil {
				a.logger.Warn("close session failed", "error", err)
			}
		}()

		switch cmd {
		case "read":
			return a.read(workCtx, c)
		case "subscribe":
			return a.subscribe(workCtx, c)
		case "shell":
			return a.shell(workCtx, cancel, c)
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}
	})

	return g.Wait()
}

func (a *app) serveMetrics(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(a.cfg.Metrics.Path, a.metrics.Handler())
	srv := &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("serving metrics", "addr", srv.Addr, "path", a.cfg.Metrics.Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	return nil
}

func (a *app) readerOptions(endpoint string) []reader.Option {
	return []reader.Option{
		reader.WithMaxAge(a.cfg.Read.MaxAge),
		reader.WithLogger(a.logger),
		reader.WithEventLogger(a.events),
		reader.WithMetrics(a.metrics),
		reader.WithEndpoint(endpoint),
	}
}

func (a *app) read(ctx context.Context, c client) error {
	if len(a.cfg.Read.Nodes) == 0 {
		return errors.New("no nodes to read")
	}

	r := reader.New(a.cfg.Read.Nodes, a.readerOptions(c.Endpoint())...)
	results := r.Read(ctx, c)
	interactive.PrintResults(a.stdout, results)

	if missing := len(a.cfg.Read.Nodes) - len(results); missing > 0 {
		fmt.Fprintf(a.stdout, "%d of %d nodes failed (see log)\n", missing, len(a.cfg.Read.Nodes))
	}
	return nil
}

func (a *app) subscribe(ctx context.Context, c client) error {
	callbacks := []subscription.Callback{
		sink.NewSlogSink(a.cfg.Log.Logger(a.stdout)),
	}

	if a.cfg.NATS.URL != "" {
		nc, err := sink.ConnectNATS(a.cfg.NATS.URL, a.logger)
		if err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}
		defer func() {
			if err := nc.Drain(); err != nil {
				a.logger.Warn("nats drain failed", "error", err)
			}
		}()
		callbacks = append(callbacks, sink.NewNATSSink(nc, a.cfg.NATS.SubjectPrefix, a.logger))
		a.logger.Info("publishing to nats", "url", a.cfg.NATS.URL, "prefix", a.cfg.NATS.SubjectPrefix)
	}

	m := subscription.NewManager(a.cfg.Subscribe.Nodes,
		subscription.WithSamplingInterval(a.cfg.Subscribe.SamplingInterval),
		subscription.WithLogger(a.logger),
		subscription.WithEventLogger(a.events),
		subscription.WithMetrics(a.metrics),
		subscription.WithEndpoint(c.Endpoint()),
	)
	m.Run(ctx, c, sink.NewFanout(callbacks...))

	if m.State() == subscription.StateFailed {
		return m.Err()
	}
	return nil
}

func (a *app) shell(ctx context.Context, cancel context.CancelFunc, c client) error {
	sh, err := interactive.New(c, a.cfg.Read.MaxAge, a.readerOptions(c.Endpoint())...)
	if err != nil {
		return err
	}
	sh.Run(ctx, cancel)
	return nil
}
