// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/tomtom215/sentigraph/internal/ingest"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestLoadWithKoanfDefaults(t *testing.T) {
	t.Setenv("DATASET_PATH", "tweets.csv")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 3860 {
		t.Errorf("Port = %d, want 3860", cfg.Server.Port)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Dataset.OnParseError != ingest.PolicyAbort {
		t.Errorf("OnParseError = %q, want %q", cfg.Dataset.OnParseError, ingest.PolicyAbort)
	}
	if cfg.Graph.Enabled {
		t.Error("graph should be disabled by default")
	}
	if cfg.API.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %s, want 1m", cfg.API.RateLimitWindow)
	}
}

func TestLoadWithKoanfEnvOverrides(t *testing.T) {
	t.Setenv("DATASET_PATH", "data/tweets.csv")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DATASET_ON_PARSE_ERROR", ingest.PolicyDrop)
	t.Setenv("GRAPH_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "data/tweets.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Dataset.OnParseError != ingest.PolicyDrop {
		t.Errorf("OnParseError = %q, want %q", cfg.Dataset.OnParseError, ingest.PolicyDrop)
	}
	if !cfg.Graph.Enabled {
		t.Error("GRAPH_ENABLED=true not applied")
	}
	if cfg.API.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %s, want 30s", cfg.API.RateLimitWindow)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.API.CORSOrigins) != 2 || cfg.API.CORSOrigins[0] != want[0] || cfg.API.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.API.CORSOrigins, want)
	}
}

func TestLoadWithKoanfMissingDataset(t *testing.T) {
	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected error without DATASET_PATH")
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "dataset:\n  path: from-file.csv\nserver:\n  port: 9090\n"
	if err := writeFile(path, yaml); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Dataset.Path != "from-file.csv" {
		t.Errorf("Dataset.Path = %q, want from-file.csv", cfg.Dataset.Path)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}

	// Environment beats the file.
	t.Setenv("HTTP_PORT", "9191")
	cfg, err = LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf (env override): %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Port = %d, want env override 9191", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig()
		cfg.Dataset.Path = "tweets.csv"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing dataset", func(c *Config) { c.Dataset.Path = "" }, true},
		{"bad policy", func(c *Config) { c.Dataset.OnParseError = "ignore" }, true},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero iterations", func(c *Config) { c.Graph.LayoutIterations = 0 }, true},
		{"bad rate limit", func(c *Config) { c.API.RateLimitRequests = 0 }, true},
		{"rate limit ignored when disabled", func(c *Config) {
			c.API.RateLimitDisabled = true
			c.API.RateLimitRequests = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	if got := envTransformFunc("DATASET_PATH"); got != "dataset.path" {
		t.Errorf("DATASET_PATH -> %q, want dataset.path", got)
	}
	if got := envTransformFunc("HOME"); got != "" {
		t.Errorf("unmapped variable mapped to %q, want empty", got)
	}
}

func TestServerAddr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 3860}
	if cfg.Addr() != "127.0.0.1:3860" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestEffectiveThreads(t *testing.T) {
	if got := (DatabaseConfig{Threads: 4}).EffectiveThreads(); got != 4 {
		t.Errorf("EffectiveThreads = %d, want 4", got)
	}
	if got := (DatabaseConfig{}).EffectiveThreads(); got != runtime.NumCPU() {
		t.Errorf("EffectiveThreads = %d, want NumCPU", got)
	}
}
