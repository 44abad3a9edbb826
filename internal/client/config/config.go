// Package config holds runtime settings for the roamer CLI.
package config

import "time"

// Config carries everything the client needs at startup.
//
// Fields:
//   - ServerBaseURL: base URL of the travel-booking REST backend.
//   - RequestTimeout: end-to-end bound for every HTTP request.
//   - DatabasePath: path of the local SQLite file (tokens, user snapshot,
//     preference flags).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "roamer.db"
}

// Load constructs a Config by applying defaults, then overlaying values from
// JSON (if a config file is named), environment variables (including a .env
// file when present), and finally command-line flags. Later sources win.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
