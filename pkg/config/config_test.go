package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
endpoint: opc.tcp://plc.local:4840
security:
  policy: Basic256Sha256
  mode: SignAndEncrypt
  certificate_file: cert.pem
  private_key_file: key.pem
auth:
  username: operator
  password: secret
request_timeout: 5s
connect_attempts: 5
read:
  nodes:
    - ns=2;s=Temperature
    - ns=2;i=1001
  max_age: 0s
subscribe:
  nodes: [ns=2;s=Counter]
  sampling_interval: 250ms
log:
  level: debug
  format: json
event_log: /tmp/run.ualog
metrics:
  addr: ":9090"
nats:
  url: nats://localhost:4222
  subject_prefix: plant.opcua
`

func TestParseFullConfig(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "opc.tcp://plc.local:4840", cfg.Endpoint)
	assert.Equal(t, "SignAndEncrypt", cfg.Security.Mode)
	assert.Equal(t, "operator", cfg.Auth.Username)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.ConnectAttempts)
	assert.Equal(t, []string{"ns=2;s=Temperature", "ns=2;i=1001"}, cfg.Read.Nodes)
	assert.Equal(t, time.Duration(0), cfg.Read.MaxAge)
	assert.Equal(t, []string{"ns=2;s=Counter"}, cfg.Subscribe.Nodes)
	assert.Equal(t, 250*time.Millisecond, cfg.Subscribe.SamplingInterval)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/run.ualog", cfg.EventLog)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "plant.opcua", cfg.NATS.SubjectPrefix)
	assert.NoError(t, cfg.Validate())

	cc := cfg.ClientConfig()
	assert.Equal(t, "Basic256Sha256", cc.SecurityPolicy)
	assert.Equal(t, "secret", cc.Password)
	assert.Equal(t, "key.pem", cc.PrivateKeyFile)
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("endpoint: opc.tcp://localhost:4840\n"))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Read.MaxAge)
	assert.Equal(t, time.Second, cfg.Subscribe.SamplingInterval)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.ConnectAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "uaflow.data", cfg.NATS.SubjectPrefix)
	assert.NoError(t, cfg.Validate())
}

func TestParseEmptyInput(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("endpoint: opc.tcp://x:4840\nendpiont: typo\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"missing endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint is required"},
		{"wrong scheme", func(c *Config) { c.Endpoint = "http://x" }, "only opc.tcp://"},
		{"negative max age", func(c *Config) { c.Read.MaxAge = -time.Second }, "read.max_age"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad mode", func(c *Config) { c.Security.Mode = "Encrypt" }, "security.mode"},
		{"cert without key", func(c *Config) { c.Security.CertificateFile = "c.pem" }, "must be set together"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Endpoint = "opc.tcp://localhost:4840"
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uaflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "opc.tcp://plc.local:4840", cfg.Endpoint)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.Logger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "node", "ns=2;i=1")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"node":"ns=2;i=1"`)

	buf.Reset()
	LogConfig{Level: "debug"}.Logger(&buf).Debug("text handler")
	assert.Contains(t, buf.String(), "msg=\"text handler\"")
}
