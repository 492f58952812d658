// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Window   WindowConfig   `toml:"window"`
	Ads      AdsConfig      `toml:"ads"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// ScheduleConfig holds slot and channel settings.
type ScheduleConfig struct {
	SlotMinutes     int    `toml:"slot_minutes"`     // reflow slot width, e.g. 60
	DefaultDuration int    `toml:"default_duration"` // minutes for a new program
	Channel         string `toml:"channel"`          // channel display name
	GeoZone         string `toml:"geo_zone"`         // default geo zone for new programs
}

// WindowConfig holds rolling-horizon settings.
type WindowConfig struct {
	InitialDays int `toml:"initial_days"` // days materialized on first load
	ChunkDays   int `toml:"chunk_days"`   // days appended per expansion
	MaxHorizon  int `toml:"max_horizon"`  // total materialized-day cap
}

// AdsConfig holds ad-marker defaults.
type AdsConfig struct {
	DefaultFrequency string `toml:"default_frequency"` // e.g. "00:30hr"
	DefaultDuration  string `toml:"default_duration"`  // marker duration label
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			SlotMinutes:     60,
			DefaultDuration: 60,
			Channel:         "default",
			GeoZone:         "global",
		},
		Window: WindowConfig{
			InitialDays: 3,
			ChunkDays:   2,
			MaxHorizon:  15,
		},
		Ads: AdsConfig{
			DefaultFrequency: "00:30hr",
			DefaultDuration:  "30 sec",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "slike-epg.db"
	}
	return filepath.Join(home, ".local", "share", "slike-epg", "slike-epg.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slike-epg", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLIKE_EPG_SLOT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.SlotMinutes = n
		}
	}
	if v := os.Getenv("SLIKE_EPG_CHANNEL"); v != "" {
		cfg.Schedule.Channel = v
	}
	if v := os.Getenv("SLIKE_EPG_GEO_ZONE"); v != "" {
		cfg.Schedule.GeoZone = v
	}
	if v := os.Getenv("SLIKE_EPG_INITIAL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window.InitialDays = n
		}
	}
	if v := os.Getenv("SLIKE_EPG_CHUNK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window.ChunkDays = n
		}
	}
	if v := os.Getenv("SLIKE_EPG_MAX_HORIZON"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window.MaxHorizon = n
		}
	}
	if v := os.Getenv("SLIKE_EPG_AD_FREQUENCY"); v != "" {
		cfg.Ads.DefaultFrequency = v
	}
	if v := os.Getenv("SLIKE_EPG_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SLIKE_EPG_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Schedule.SlotMinutes <= 0 {
		return errors.New("slot_minutes must be positive")
	}
	if c.Schedule.DefaultDuration <= 0 {
		return errors.New("default_duration must be positive")
	}
	if c.Window.InitialDays <= 0 {
		return errors.New("initial_days must be positive")
	}
	if c.Window.ChunkDays <= 0 {
		return errors.New("chunk_days must be positive")
	}
	if c.Window.MaxHorizon < c.Window.InitialDays {
		return errors.New("max_horizon must be at least initial_days")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
