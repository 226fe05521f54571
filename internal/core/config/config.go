// Package config handles configuration loading and validation for fixdesk.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Shop     ShopConfig   `yaml:"shop"`
	TUI      TUIConfig    `yaml:"tui"`
	Database DBConfig     `yaml:"database"`
	Orders   OrdersConfig `yaml:"orders"`
	DataDir  string       `yaml:"-"` // set by caller, not from config file
}

// ShopConfig identifies the store and the operator stamped onto new records.
// This replaces the original application's ambient auth context: the operator
// is explicit configuration passed to whichever surface needs it, never a
// global.
type ShopConfig struct {
	Name     string `yaml:"name"`
	Operator string `yaml:"operator"`
}

// TUIConfig holds terminal UI options.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DBConfig holds SQLite connection pool options.
type DBConfig struct {
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"`
}

// OrdersConfig holds order-workflow options.
type OrdersConfig struct {
	// RequireChecklist gates order saves behind a complete inspection
	// checklist. Shops that skip inspections can turn it off.
	RequireChecklist *bool `yaml:"require_checklist"`
}

// RequireChecklistEnabled returns the effective checklist requirement
// (enabled unless explicitly disabled).
func (o OrdersConfig) RequireChecklistEnabled() bool {
	return o.RequireChecklist == nil || *o.RequireChecklist
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shop: ShopConfig{
			Name: "fixdesk",
		},
		TUI: TUIConfig{
			Theme: defaultTheme,
		},
		Database: DBConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			BusyTimeout:  5 * time.Second,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Shop.Name == "" {
		c.Shop.Name = defaults.Shop.Name
	}
}
