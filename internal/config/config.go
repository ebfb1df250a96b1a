// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package config defines Sentigraph's configuration model and its layered
// loader (defaults, then optional YAML file, then environment variables).
package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/tomtom215/sentigraph/internal/ingest"
)

// Config is the root configuration object, constructed once at startup and
// read-only afterward.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Graph    GraphConfig    `koanf:"graph"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig configures the DuckDB instance holding the enriched table.
// The default path is in-memory: nothing in this system outlives the
// process, so persistence is opt-in.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// EffectiveThreads resolves the configured thread count, 0 meaning all CPUs.
func (c DatabaseConfig) EffectiveThreads() int {
	if c.Threads <= 0 {
		return runtime.NumCPU()
	}
	return c.Threads
}

// DatasetConfig configures the input CSV and its load policy.
type DatasetConfig struct {
	// Path is the tweet CSV. Required.
	Path string `koanf:"path"`

	// OnParseError is "abort" (default, fail the load on the first
	// malformed row) or "drop" (skip and count malformed rows).
	OnParseError string `koanf:"on_parse_error"`
}

// GraphConfig configures the optional interaction network variant.
type GraphConfig struct {
	// Enabled turns the network view on when the dataset carries
	// source/target columns. Off by default.
	Enabled bool `koanf:"enabled"`

	// LayoutIterations is the number of force-directed refinement passes.
	LayoutIterations int `koanf:"layout_iterations"`
}

// APIConfig configures the HTTP API surface.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// loaded first, then overridden by config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3860,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "1GB",
			Threads:   0, // 0 = use runtime.NumCPU()
		},
		Dataset: DatasetConfig{
			Path:         "",
			OnParseError: ingest.PolicyAbort,
		},
		Graph: GraphConfig{
			Enabled:          false,
			LayoutIterations: 200,
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 300,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values the process cannot start
// with. Called by LoadWithKoanf after all layers are merged.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if c.Dataset.OnParseError != ingest.PolicyAbort && c.Dataset.OnParseError != ingest.PolicyDrop {
		return fmt.Errorf("dataset.on_parse_error must be %q or %q, got %q",
			ingest.PolicyAbort, ingest.PolicyDrop, c.Dataset.OnParseError)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Graph.LayoutIterations < 1 {
		return fmt.Errorf("graph.layout_iterations must be positive, got %d", c.Graph.LayoutIterations)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests < 1 {
			return fmt.Errorf("api.rate_limit_requests must be positive, got %d", c.API.RateLimitRequests)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow)
		}
	}
	return nil
}
