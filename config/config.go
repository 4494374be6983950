package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	EnvPath     = "SHELLTREE_CONFIG"
	DefaultPath = "shelltree.yaml"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config holds shelltree settings. CLI flags override every field.
type Config struct {
	Input        string    `yaml:"input"`
	Threshold    int64     `yaml:"threshold"`
	DiskSize     int64     `yaml:"disk_size"`
	RequiredFree int64     `yaml:"required_free"`
	Log          LogConfig `yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Input:        "terminal-output.txt",
		Threshold:    100000,
		DiskSize:     70000000,
		RequiredFree: 30000000,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Path returns the config file location, respecting SHELLTREE_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads a YAML config. Missing fields are filled from defaults. When
// optional is true a missing file yields the defaults instead of an error.
func Load(path string, optional bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("cannot read config at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Threshold < 0:
		return fmt.Errorf("threshold must not be negative")
	case c.DiskSize < 0:
		return fmt.Errorf("disk_size must not be negative")
	case c.RequiredFree < 0:
		return fmt.Errorf("required_free must not be negative")
	}
	return nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
