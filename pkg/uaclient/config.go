package uaclient

import (
	"errors"
	"strings"
	"time"

	"github.com/uaflow/uaflow-go/pkg/log"
)

// Defaults applied by Dial.
const (
	DefaultRequestTimeout     = 10 * time.Second
	DefaultConnectAttempts    = 3
	DefaultPublishInterval    = time.Second
	DefaultNotificationBuffer = 64

	// DefaultDeleteTimeout bounds each subscription delete done by Close.
	DefaultDeleteTimeout = 5 * time.Second
)

// ErrNoEndpoint is returned when Config.Endpoint is empty.
var ErrNoEndpoint = errors.New("no endpoint configured")

// Config holds the connection parameters for Dial.
type Config struct {
	// Endpoint is the server URL, e.g. opc.tcp://localhost:4840.
	Endpoint string

	// SecurityPolicy is a policy name (None, Basic256Sha256, ...) or URI.
	// Empty means None.
	SecurityPolicy string

	// SecurityMode is None, Sign or SignAndEncrypt.
	SecurityMode string

	// Username and Password select username authentication.
	// Anonymous authentication is used when Username is empty.
	Username string
	Password string

	// CertificateFile and PrivateKeyFile hold the client certificate (PEM or DER).
	CertificateFile string
	PrivateKeyFile  string

	// RequestTimeout bounds every service call.
	RequestTimeout time.Duration

	// ConnectAttempts is the number of initial connect attempts.
	ConnectAttempts int

	// Backoff configures the delay between connect attempts.
	Backoff BackoffConfig

	// PublishInterval is the requested publishing interval of new subscriptions.
	PublishInterval time.Duration

	// NotificationBuffer is the capacity of each subscription's publish channel.
	NotificationBuffer int

	// EventLogger receives session state changes. Optional.
	EventLogger log.Logger
}

func (c Config) withDefaults() Config {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.ConnectAttempts <= 0 {
		c.ConnectAttempts = DefaultConnectAttempts
	}
	if c.PublishInterval <= 0 {
		c.PublishInterval = DefaultPublishInterval
	}
	if c.NotificationBuffer <= 0 {
		c.NotificationBuffer = DefaultNotificationBuffer
	}
	if c.EventLogger == nil {
		c.EventLogger = log.NoopLogger{}
	}
	return c
}

// securityEnabled reports whether a policy other than None is configured.
func (c Config) securityEnabled() bool {
	p := strings.TrimSpace(c.SecurityPolicy)
	return p != "" && !strings.EqualFold(p, "None") && !strings.HasSuffix(p, "#None")
}
