package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOptionsNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{
			name: "zero values take defaults",
			in:   Options{},
			want: DefaultOptions(),
		},
		{
			name: "explicit values kept",
			in:   Options{Bytes: 64, Backoff: 2, Count: 10, Interval: 25, Period: 2000, Retry: 1, Timeout: 250, Digits: 2, LossDigits: 3},
			want: Options{Bytes: 64, Backoff: 2, Count: 10, Interval: 25, Period: 2000, Retry: 1, Timeout: 250, Digits: 2, LossDigits: 3},
		},
		{
			name: "negative soft fields clamped to zero",
			in:   Options{Backoff: -1, Interval: -5, Period: -1, Retry: -2, Timeout: -100, Digits: -1},
			want: Options{Bytes: DefaultBytes, Backoff: 0, Count: DefaultCount, Interval: 0, Period: 0, Retry: 0, Timeout: 0, Digits: 0, LossDigits: DefaultLossDigits},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsNormalizedDoesNotMutate(t *testing.T) {
	in := Options{Backoff: -1}
	in.Normalized()
	if in.Backoff != -1 {
		t.Errorf("Normalized mutated the receiver: %+v", in)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"defaults valid", DefaultOptions(), ""},
		{"bytes below minimum", Options{Bytes: 39}.Normalized(), "Bytes must be at least 40 bytes"},
		{"count below minimum", Options{Count: -3}.Normalized(), "Count must be >= 1"},
		{"lossDigits below minimum", Options{LossDigits: 1}.Normalized(), "lossDigits must be at least 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var optErr *InvalidOptionError
			if !errors.As(err, &optErr) {
				t.Fatalf("expected InvalidOptionError, got %T: %v", err, err)
			}
			if optErr.Reason != tt.wantErr {
				t.Errorf("reason = %q, want %q", optErr.Reason, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Targets) == 0 {
		t.Error("expected default targets")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batchping.yaml")
	data := `
targets:
  - 10.0.0.1
  - 10.0.0.2
interval: 10s
db: test.db
probe:
  count: 4
  timeout: 250
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Targets) != 2 || cfg.Targets[0] != "10.0.0.1" {
		t.Errorf("unexpected targets: %v", cfg.Targets)
	}
	if cfg.Interval != Duration(10*time.Second) {
		t.Errorf("interval = %v, want 10s", cfg.Interval)
	}
	if cfg.DatabasePath != "test.db" {
		t.Errorf("db = %q, want test.db", cfg.DatabasePath)
	}
	if cfg.Probe.Count != 4 || cfg.Probe.Timeout != 250 {
		t.Errorf("probe options not applied: %+v", cfg.Probe)
	}
	// Fields absent from the file keep their defaults
	if cfg.Port != DefaultConfig().Port {
		t.Errorf("port = %d, want default %d", cfg.Port, DefaultConfig().Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no targets", func(c *Config) { c.Targets = nil }},
		{"non-positive interval", func(c *Config) { c.Interval = 0 }},
		{"empty database path", func(c *Config) { c.DatabasePath = "" }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"bad probe options", func(c *Config) { c.Probe.Bytes = 39 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
