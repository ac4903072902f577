// Package config holds runtime settings for the back-office CLI client.
package config

import "time"

// Config holds runtime settings for the CLI client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request timeout for ordinary API calls.
//   - RefreshTimeout: upper bound for a silent token refresh; a refresh that
//     exceeds it fails all requests waiting on it.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	RefreshTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.RefreshTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
