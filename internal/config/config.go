// Package config loads the Aura Strength YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all Aura Strength configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Tip     TipConfig     `yaml:"tip"`
	Logging LoggingConfig `yaml:"logging"`
	Backup  BackupConfig  `yaml:"backup"`
}

type StoreConfig struct {
	// Path of the SQLite database; empty means storage.ResolveDBPath.
	Path string `yaml:"path"`
}

// TipConfig configures the exercise tip provider.
type TipConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"` // empty: no timeout beyond the transport's
}

type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // empty disables logging
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type BackupConfig struct {
	Dir string `yaml:"dir"`
}

// Dir returns ~/.aura, the home of the config file and logs.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aura"
	}
	return filepath.Join(home, ".aura")
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tip: TipConfig{
			Enabled: true,
			Model:   "gemini-3-flash-preview",
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       filepath.Join(Dir(), "aura.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Backup: BackupConfig{
			Dir: ".",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	// API_KEY is what the browser build read; GEMINI_API_KEY wins when both are set.
	if key := os.Getenv("API_KEY"); key != "" {
		c.Tip.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Tip.APIKey = key
	}
	if p := os.Getenv("AURA_DB"); p != "" {
		c.Store.Path = p
	}
	if d := os.Getenv("AURA_EXPORT_DIR"); d != "" {
		c.Backup.Dir = d
	}
}

// TipTimeout parses Tip.Timeout; zero means none.
func (c *Config) TipTimeout() time.Duration {
	if c.Tip.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Tip.Timeout)
	if err != nil {
		return 0
	}
	return d
}

func (c *Config) Validate() error {
	if c.Tip.Timeout != "" {
		if d, err := time.ParseDuration(c.Tip.Timeout); err != nil || d < 0 {
			return fmt.Errorf("invalid tip.timeout %q", c.Tip.Timeout)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 {
		return fmt.Errorf("logging sizes must not be negative")
	}
	return nil
}
