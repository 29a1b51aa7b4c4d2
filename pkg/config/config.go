// Package config loads the YAML configuration of the uaflow host.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/uaflow/uaflow-go/pkg/reader"
	"github.com/uaflow/uaflow-go/pkg/sink"
	"github.com/uaflow/uaflow-go/pkg/subscription"
	"github.com/uaflow/uaflow-go/pkg/uaclient"
)

// DefaultPaths are searched in order when no path is given.
var DefaultPaths = []string{"./uaflow.yaml", "conf/uaflow.yaml", "config/uaflow.yaml"}

// ErrNotFound is returned when no config file exists in the searched paths.
var ErrNotFound = errors.New("config file not found")

// Config is the root configuration.
type Config struct {
	Endpoint        string          `yaml:"endpoint"`
	Security        SecurityConfig  `yaml:"security"`
	Auth            AuthConfig      `yaml:"auth"`
	RequestTimeout  time.Duration   `yaml:"request_timeout"`
	ConnectAttempts int             `yaml:"connect_attempts"`
	Read            ReadConfig      `yaml:"read"`
	Subscribe       SubscribeConfig `yaml:"subscribe"`
	Log             LogConfig       `yaml:"log"`
	EventLog        string          `yaml:"event_log"`
	Metrics         MetricsConfig   `yaml:"metrics"`
	NATS            NATSConfig      `yaml:"nats"`
}

// SecurityConfig selects the secure channel policy.
type SecurityConfig struct {
	Policy          string `yaml:"policy"`
	Mode            string `yaml:"mode"`
	CertificateFile string `yaml:"certificate_file"`
	PrivateKeyFile  string `yaml:"private_key_file"`
}

// AuthConfig selects the user identity. Empty username means anonymous.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ReadConfig configures one-shot batch reads.
type ReadConfig struct {
	Nodes  []string      `yaml:"nodes"`
	MaxAge time.Duration `yaml:"max_age"`
}

// SubscribeConfig configures the subscription.
type SubscribeConfig struct {
	Nodes            []string      `yaml:"nodes"`
	SamplingInterval time.Duration `yaml:"sampling_interval"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the metrics endpoint. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
	Path string `yaml:"path"`
}

// NATSConfig configures the NATS sink. Empty URL disables it.
type NATSConfig struct {
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

// Default returns a Config with every default applied.
func Default() Config {
	c := Config{Read: ReadConfig{MaxAge: reader.DefaultMaxAge}}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields. Read.MaxAge is left alone since zero
// is a valid bound; Default and Parse seed it instead.
func (c *Config) ApplyDefaults() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = uaclient.DefaultRequestTimeout
	}
	if c.ConnectAttempts <= 0 {
		c.ConnectAttempts = uaclient.DefaultConnectAttempts
	}
	if c.Subscribe.SamplingInterval <= 0 {
		c.Subscribe.SamplingInterval = subscription.DefaultSamplingInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.NATS.SubjectPrefix == "" {
		c.NATS.SubjectPrefix = sink.DefaultSubjectPrefix
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	if !strings.HasPrefix(c.Endpoint, "opc.tcp://") {
		return fmt.Errorf("endpoint %q: only opc.tcp:// is supported", c.Endpoint)
	}
	if c.Read.MaxAge < 0 {
		return fmt.Errorf("read.max_age must not be negative, got %s", c.Read.MaxAge)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: must be text or json", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Security.Mode {
	case "", "None", "Sign", "SignAndEncrypt":
	default:
		return fmt.Errorf("security.mode %q: must be None, Sign or SignAndEncrypt", c.Security.Mode)
	}
	if (c.Security.CertificateFile == "") != (c.Security.PrivateKeyFile == "") {
		return errors.New("security.certificate_file and security.private_key_file must be set together")
	}
	return nil
}

// Load reads the config at path, or the first existing DefaultPaths entry
// when path is empty, then applies defaults. It does not validate.
func Load(path string) (Config, error) {
	paths := DefaultPaths
	if path != "" {
		paths = []string{path}
	}

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		cfg, err := Parse(f)
		f.Close()
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", p, err)
		}
		return cfg, nil
	}

	return Config{}, fmt.Errorf("%w in: %v", ErrNotFound, paths)
}

// Parse decodes YAML from r over Default().
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ClientConfig converts c into the session dial parameters.
func (c *Config) ClientConfig() uaclient.Config {
	return uaclient.Config{
		Endpoint:        c.Endpoint,
		SecurityPolicy:  c.Security.Policy,
		SecurityMode:    c.Security.Mode,
		Username:        c.Auth.Username,
		Password:        c.Auth.Password,
		CertificateFile: c.Security.CertificateFile,
		PrivateKeyFile:  c.Security.PrivateKeyFile,
		RequestTimeout:  c.RequestTimeout,
		ConnectAttempts: c.ConnectAttempts,
	}
}

// Logger builds the operational logger described by l, writing to w.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.slogLevel()}

	var handler slog.Handler
	switch strings.ToLower(l.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func (l LogConfig) slogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
