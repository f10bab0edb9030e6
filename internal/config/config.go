package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type StreamMode string

const (
	StreamModeGRPC      StreamMode = "grpc"
	StreamModeWebSocket StreamMode = "websocket"
)

type Config struct {
	NodeID                string
	Hostname              string
	ProcPath              string
	ProbeListenAddr       string
	PollInterval          time.Duration
	HealthInterval        time.Duration
	ShutdownTimeout       time.Duration
	StreamMode            StreamMode
	BackendGRPCAddr       string
	BackendWSURL          string
	BackendToken          string
	TLSEnabled            bool
	TLSSkipVerify         bool
	TLSCAPath             string
	TLSCertPath           string
	TLSKeyPath            string
	LogJSON               bool
	LogLevel              string
	GRPCSnapshotMethod    string
	WebSocketWriteTimeout time.Duration
	WebSocketPingInterval time.Duration
	CollectorErrorBackoff time.Duration
}

func Load() (Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	cfg := Config{
		NodeID:                env("PROCSIGHT_NODE_ID", hostname),
		Hostname:              hostname,
		ProcPath:              env("PROCSIGHT_PROC_PATH", "/proc"),
		ProbeListenAddr:       env("PROCSIGHT_PROBE_ADDR", "0.0.0.0:7443"),
		PollInterval:          envDuration("PROCSIGHT_POLL_INTERVAL", 2*time.Second),
		HealthInterval:        envDuration("PROCSIGHT_HEALTH_INTERVAL", 10*time.Second),
		ShutdownTimeout:       envDuration("PROCSIGHT_SHUTDOWN_TIMEOUT", 20*time.Second),
		StreamMode:            StreamMode(strings.ToLower(env("PROCSIGHT_STREAM_MODE", string(StreamModeGRPC)))),
		BackendGRPCAddr:       env("PROCSIGHT_BACKEND_GRPC_ADDR", "127.0.0.1:3001"),
		BackendWSURL:          env("PROCSIGHT_BACKEND_WS_URL", "ws://127.0.0.1:3001/ws/metrics"),
		BackendToken:          env("PROCSIGHT_BACKEND_TOKEN", ""),
		TLSEnabled:            envBool("PROCSIGHT_TLS_ENABLED", false),
		TLSSkipVerify:         envBool("PROCSIGHT_TLS_SKIP_VERIFY", false),
		TLSCAPath:             env("PROCSIGHT_TLS_CA_PATH", ""),
		TLSCertPath:           env("PROCSIGHT_TLS_CERT_PATH", ""),
		TLSKeyPath:            env("PROCSIGHT_TLS_KEY_PATH", ""),
		LogJSON:               envBool("PROCSIGHT_LOG_JSON", true),
		LogLevel:              strings.ToLower(env("PROCSIGHT_LOG_LEVEL", "info")),
		GRPCSnapshotMethod:    env("PROCSIGHT_GRPC_SNAPSHOT_METHOD", "/procsight.metrics.v1.MetricsService/StreamSnapshots"),
		WebSocketWriteTimeout: envDuration("PROCSIGHT_WS_WRITE_TIMEOUT", 5*time.Second),
		WebSocketPingInterval: envDuration("PROCSIGHT_WS_PING_INTERVAL", 10*time.Second),
		CollectorErrorBackoff: envDuration("PROCSIGHT_COLLECTOR_ERROR_BACKOFF", 1500*time.Millisecond),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.NodeID == "" {
		return errors.New("PROCSIGHT_NODE_ID is required")
	}
	if strings.TrimSpace(c.ProcPath) == "" {
		return errors.New("PROCSIGHT_PROC_PATH is required")
	}
	if strings.TrimSpace(c.ProbeListenAddr) == "" {
		return errors.New("PROCSIGHT_PROBE_ADDR is required")
	}
	if c.PollInterval <= 0 {
		return errors.New("PROCSIGHT_POLL_INTERVAL must be > 0")
	}
	if c.HealthInterval <= 0 {
		return errors.New("PROCSIGHT_HEALTH_INTERVAL must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("PROCSIGHT_SHUTDOWN_TIMEOUT must be > 0")
	}
	switch c.StreamMode {
	case StreamModeGRPC, StreamModeWebSocket:
	default:
		return fmt.Errorf("unsupported stream mode %q", c.StreamMode)
	}
	if c.StreamMode == StreamModeGRPC {
		if c.BackendGRPCAddr == "" {
			return errors.New("PROCSIGHT_BACKEND_GRPC_ADDR is required for grpc mode")
		}
		if strings.TrimSpace(c.GRPCSnapshotMethod) == "" {
			return errors.New("PROCSIGHT_GRPC_SNAPSHOT_METHOD is required for grpc mode")
		}
	}
	if c.StreamMode == StreamModeWebSocket && c.BackendWSURL == "" {
		return errors.New("PROCSIGHT_BACKEND_WS_URL is required for websocket mode")
	}
	return nil
}

func (c Config) TLSConfig() (*tls.Config, error) {
	if !c.TLSEnabled {
		return nil, nil
	}
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12, InsecureSkipVerify: c.TLSSkipVerify}
	if c.TLSCAPath != "" {
		caBytes, err := os.ReadFile(c.TLSCAPath)
		if err != nil {
			return nil, fmt.Errorf("read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caBytes) {
			return nil, errors.New("append CA cert failed")
		}
		tlsCfg.RootCAs = pool
	}
	if c.TLSCertPath != "" || c.TLSKeyPath != "" {
		if c.TLSCertPath == "" || c.TLSKeyPath == "" {
			return nil, errors.New("both TLS cert and key are required")
		}
		crt, err := tls.LoadX509KeyPair(c.TLSCertPath, c.TLSKeyPath)
		if err != nil {
			return nil, fmt.Errorf("load mTLS cert/key: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{crt}
	}
	return tlsCfg, nil
}

func env(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
