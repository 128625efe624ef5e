// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/huddle/internal/report"
	"github.com/javiermolinar/huddle/internal/timeparse"
)

// Config holds the application configuration.
type Config struct {
	Report ReportConfig          `toml:"report"`
	Slots  map[string]SlotConfig `toml:"slots"`
	Log    LogConfig             `toml:"log"`
	UI     UIConfig              `toml:"ui"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	DurationUnit string `toml:"duration_unit"` // "mixed", "minutes", "hours"
	Banner       string `toml:"banner"`
}

// SlotConfig overrides or adds a named slot such as "lunch".
type SlotConfig struct {
	Start    string `toml:"start"`    // e.g., "12:00"
	Duration string `toml:"duration"` // e.g., "1h30m"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	Path  string `toml:"path"`  // empty means the caller's default sink
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Accent string `toml:"accent"` // hex colour, e.g. "#89b4fa"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			DurationUnit: string(report.UnitMixed),
			Banner:       report.DefaultBanner,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Accent: "#89b4fa",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "huddle", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Log.Path = expandPath(cfg.Log.Path)

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
	if v := os.Getenv("HUDDLE_DURATION_UNIT"); v != "" {
		cfg.Report.DurationUnit = v
	}
	if v := os.Getenv("HUDDLE_BANNER"); v != "" {
		cfg.Report.Banner = v
	}
	if v := os.Getenv("HUDDLE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HUDDLE_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("HUDDLE_UI_ACCENT"); v != "" {
		cfg.UI.Accent = v
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

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !report.Unit(c.Report.DurationUnit).Valid() {
		return fmt.Errorf("duration_unit must be mixed, minutes or hours, got %q", c.Report.DurationUnit)
	}
	if strings.TrimSpace(c.Report.Banner) == "" {
		return errors.New("banner must not be empty")
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if _, err := c.SlotTable(); err != nil {
		return err
	}
	return nil
}

// SlotTable returns the built-in named slots with configured overrides applied.
func (c *Config) SlotTable() (timeparse.SlotTable, error) {
	overrides := make(timeparse.SlotTable, len(c.Slots))
	for name, sc := range c.Slots {
		if strings.ContainsAny(name, " .,:+-") || name == "" {
			return nil, fmt.Errorf("invalid slot name %q", name)
		}
		slot, err := timeparse.NewSlot(sc.Start, sc.Duration)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", name, err)
		}
		overrides[name] = slot
	}
	return timeparse.DefaultSlots().Merge(overrides), nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
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
