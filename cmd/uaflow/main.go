// Command uaflow reads and subscribes to OPC UA server values.
//
// Usage:
//
//	uaflow <command> [flags] [node...]
//
// Commands:
//
//	read       Read every node once with bounded staleness
//	subscribe  Subscribe to every node and stream value changes until interrupted
//	shell      Interactive read shell
//
// Examples:
//
//	# Read two nodes accepting cached values up to 2s old
//	uaflow read -endpoint opc.tcp://localhost:4840 -max-age 2s "ns=2;s=Temperature" "ns=2;i=1001"
//
//	# Subscribe with a config file and publish changes to NATS
//	uaflow subscribe -config uaflow.yaml -nats-url nats://localhost:4222
//
//	# Record an event log for later analysis with uaflow-log
//	uaflow subscribe -config uaflow.yaml -event-log run.ualog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/uaflow/uaflow-go/pkg/config"
)

const usage = `uaflow - OPC UA read and subscription client

Usage:
  uaflow <command> [flags] [node...]

Commands:
  read       Read every node once with bounded staleness
  subscribe  Subscribe to every node and stream value changes
  shell      Interactive read shell

Use "uaflow <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "read", "subscribe", "shell":
		var cfg config.Config
		cfg, err = loadConfig(cmd, args, os.Stderr)
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if err == nil {
			err = run(ctx, cmd, cfg, os.Stdout, os.Stderr)
		}
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagValues holds the command-line overrides. Only flags that were set
// on the command line replace config file values.
type flagValues struct {
	configPath       string
	endpoint         string
	securityPolicy   string
	securityMode     string
	username         string
	password         string
	logLevel         string
	logFormat        string
	eventLog         string
	nodes            string
	maxAge           time.Duration
	samplingInterval time.Duration
	metricsAddr      string
	natsURL          string
	natsPrefix       string
}

func newFlagSet(cmd string, out io.Writer) (*flag.FlagSet, *flagValues) {
	v := &flagValues{}
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "uaflow %s\n\nUsage:\n  uaflow %s [flags] [node...]\n\nFlags:\n", cmd, cmd)
		fs.PrintDefaults()
	}

	fs.StringVar(&v.configPath, "config", "", "Configuration file path (default: search uaflow.yaml)")
	fs.StringVar(&v.endpoint, "endpoint", "", "Server endpoint URL (opc.tcp://host:port)")
	fs.StringVar(&v.securityPolicy, "security-policy", "", "Security policy: None, Basic256Sha256, ...")
	fs.StringVar(&v.securityMode, "security-mode", "", "Security mode: None, Sign, SignAndEncrypt")
	fs.StringVar(&v.username, "username", "", "Username (anonymous when empty)")
	fs.StringVar(&v.password, "password", "", "Password")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&v.logFormat, "log-format", "", "Log format: text, json")
	fs.StringVar(&v.eventLog, "event-log", "", "Write a CBOR event log to this file")
	fs.StringVar(&v.nodes, "nodes", "", "Comma-separated node identifiers")
	fs.DurationVar(&v.maxAge, "max-age", 0, "Maximum age of cached values for reads (0 reads from the device)")
	fs.DurationVar(&v.samplingInterval, "sampling-interval", 0, "Sampling interval of monitored items")
	fs.StringVar(&v.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	fs.StringVar(&v.natsURL, "nats-url", "", "Publish value changes to this NATS server")
	fs.StringVar(&v.natsPrefix, "nats-prefix", "", "NATS subject prefix")
	return fs, v
}

// loadConfig parses args, loads the config file and applies overrides.
// A missing default config file is not an error.
func loadConfig(cmd string, args []string, out io.Writer) (config.Config, error) {
	fs, v := newFlagSet(cmd, out)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(v.configPath)
	if err != nil {
		if v.configPath != "" || !errors.Is(err, config.ErrNotFound) {
			return config.Config{}, err
		}
		cfg = config.Default()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoint":
			cfg.Endpoint = v.endpoint
		case "security-policy":
			cfg.Security.Policy = v.securityPolicy
		case "security-mode":
			cfg.Security.Mode = v.securityMode
		case "username":
			cfg.Auth.Username = v.username
		case "password":
			cfg.Auth.Password = v.password
		case "log-level":
			cfg.Log.Level = v.logLevel
		case "log-format":
			cfg.Log.Format = v.logFormat
		case "event-log":
			cfg.EventLog = v.eventLog
		case "max-age":
			cfg.Read.MaxAge = v.maxAge
		case "sampling-interval":
			cfg.Subscribe.SamplingInterval = v.samplingInterval
		case "metrics-addr":
			cfg.Metrics.Addr = v.metricsAddr
		case "nats-url":
			cfg.NATS.URL = v.natsURL
		case "nats-prefix":
			cfg.NATS.SubjectPrefix = v.natsPrefix
		}
	})

	nodes := splitNodes(v.nodes)
	nodes = append(nodes, fs.Args()...)
	if len(nodes) > 0 {
		switch cmd {
		case "subscribe":
			cfg.Subscribe.Nodes = nodes
		default:
			cfg.Read.Nodes = nodes
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitNodes splits a comma-separated list. Node identifiers may contain
// semicolons but not commas.
func splitNodes(s string) []string {
	var nodes []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
