// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Backend selectors. The backend is chosen once at startup; there is no
// runtime switching or fallback between the two.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config holds runtime settings for the wellfinder CLI.
//
// Fields:
//   - Backend: "local" for the self-contained in-process backend, "remote"
//     for the HTTP API client.
//   - ServerEndpointAddr: base URL of the backend HTTP endpoint (remote only).
//   - RequestTimeout: per-request timeout for remote calls.
//   - LocalDSN: SQLite DSN for the local backend's store.
//   - SimulatedLatency: artificial delay added to local backend calls, for a
//     network-like feel in development. Zero disables it.
type Config struct {
	Backend            string
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	LocalDSN           string
	SimulatedLatency   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendLocal
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.LocalDSN = "wellfinder.db"
	c.SimulatedLatency = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
