package loadtest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is consulted when no --config flag is given.
const DefaultConfigFile = "loadtest.yaml"

// Config describes a load test run. Values come from a yaml file and may be
// overridden by CLI flags before the runner starts.
type Config struct {
	// Host is the base URL of the todo service under test.
	Host string `yaml:"host"`
	// Users is the number of concurrent virtual users.
	Users int `yaml:"users"`
	// SpawnIntervalMs is the delay between starting consecutive users.
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
	// MinWaitSec / MaxWaitSec bound the random pause between user actions.
	MinWaitSec int `yaml:"min_wait_sec"`
	MaxWaitSec int `yaml:"max_wait_sec"`
	// DurationSec is the run length. Zero means run until interrupted.
	DurationSec int `yaml:"duration_sec"`
	// RequestTimeoutSec is the per-request client timeout.
	RequestTimeoutSec int `yaml:"request_timeout_sec"`
	// OutputDir is where the metrics CSV is written.
	OutputDir string `yaml:"output_dir"`
	// HistoryDB is the path of the sqlite run history. Empty disables it.
	HistoryDB string `yaml:"history_db"`
}

// DefaultConfig returns the configuration used when no file and no flags are given.
func DefaultConfig() *Config {
	return &Config{
		Host:              "http://localhost:8080",
		Users:             10,
		SpawnIntervalMs:   100,
		MinWaitSec:        1,
		MaxWaitSec:        3,
		DurationSec:       60,
		RequestTimeoutSec: 10,
		OutputDir:         "performance_results",
	}
}

// LoadConfig reads the yaml config at path. A missing default file is not an
// error; defaults are returned instead. An explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration bounds before a run starts.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Users <= 0 {
		return fmt.Errorf("users must be greater than 0")
	}
	if c.Users > 1000 {
		return fmt.Errorf("users cannot exceed 1000")
	}
	if c.MinWaitSec < 0 || c.MaxWaitSec < c.MinWaitSec {
		return fmt.Errorf("wait bounds must satisfy 0 <= min <= max")
	}
	if c.DurationSec < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir is required")
	}
	return nil
}

// MinWait returns the lower wait bound as a time.Duration.
func (c *Config) MinWait() time.Duration {
	return time.Duration(c.MinWaitSec) * time.Second
}

// MaxWait returns the upper wait bound as a time.Duration.
func (c *Config) MaxWait() time.Duration {
	return time.Duration(c.MaxWaitSec) * time.Second
}

// Duration returns the run length as a time.Duration. Zero means unlimited.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationSec) * time.Second
}

// RequestTimeout returns the per-request timeout, defaulting to 10 seconds.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSec == 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// SpawnInterval returns the delay between user starts.
func (c *Config) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}
