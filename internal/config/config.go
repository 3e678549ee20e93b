package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config holds all configuration for the monitor daemon
type Config struct {
	Targets      []string `yaml:"targets"`
	Interval     Duration `yaml:"interval"` // time between probe batches
	DatabasePath string   `yaml:"db"`
	Port         int      `yaml:"port"`
	ReportDir    string   `yaml:"report_dir"`
	Probe        Options  `yaml:"probe"`
}

// DefaultConfig returns the default daemon configuration.
func DefaultConfig() *Config {
	return &Config{
		Targets:      []string{"8.8.8.8", "1.1.1.1", "208.67.222.222"},
		Interval:     Duration(30 * time.Second),
		DatabasePath: "batchping.db",
		Port:         8080,
		ReportDir:    "reports",
		Probe:        Options{Count: 5},
	}
}

// Load reads configuration from a YAML file, overlaying the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be specified")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return c.Probe.Normalized().Validate()
}
