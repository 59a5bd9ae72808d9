package loadtest

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigDefaults checks that a missing default file yields the defaults.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("Expected defaults %+v, got %+v", want, cfg)
	}
}

// TestLoadConfigFile checks that yaml values override the defaults.
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadtest.yaml")
	data := []byte("host: http://localhost:9090\nusers: 50\nduration_sec: 120\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Error writing config file: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Host != "http://localhost:9090" || cfg.Users != 50 || cfg.DurationSec != 120 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.MinWaitSec != 1 || cfg.MaxWaitSec != 3 {
		t.Errorf("Expected untouched fields to keep their defaults, got %+v", cfg)
	}
}

// TestLoadConfigExplicitMissing checks that an explicitly named missing file is an error.
func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for an explicitly named missing file")
	}
}

// TestConfigValidate exercises the validation bounds.
func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"no host", func(c *Config) { c.Host = "" }, false},
		{"zero users", func(c *Config) { c.Users = 0 }, false},
		{"too many users", func(c *Config) { c.Users = 1001 }, false},
		{"inverted waits", func(c *Config) { c.MinWaitSec = 5; c.MaxWaitSec = 1 }, false},
		{"negative duration", func(c *Config) { c.DurationSec = -1 }, false},
		{"no output dir", func(c *Config) { c.OutputDir = "" }, false},
	} {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: expected valid config, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}
