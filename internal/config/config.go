// Package config handles planline configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/planline/planline/internal/models"
)

// Config is the root configuration structure for planline.
type Config struct {
	// Global settings
	Global GlobalConfig `yaml:"global" mapstructure:"global"`

	// Database settings
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Chart holds the defaults a fresh project starts with.
	Chart ChartConfig `yaml:"chart" mapstructure:"chart"`
}

// GlobalConfig contains global planline settings.
type GlobalConfig struct {
	// DataDir is where planline stores its data (default: ~/.local/share/planline).
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	// Path is the SQLite database file path. Empty means DataDir/planline.db.
	Path string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// ChartConfig contains default chart behavior.
type ChartConfig struct {
	// StartDate is the default visible range start (YYYY-MM-DD).
	StartDate string `yaml:"start_date" mapstructure:"start_date"`

	// EndDate is the default visible range end (YYYY-MM-DD).
	EndDate string `yaml:"end_date" mapstructure:"end_date"`

	// Zoom is the default zoom level (day, week, month, quarter).
	Zoom string `yaml:"zoom" mapstructure:"zoom"`

	// Locale selects the label language ("en", "sk").
	Locale string `yaml:"locale" mapstructure:"locale"`

	// Theme is "light" or "dark".
	Theme string `yaml:"theme" mapstructure:"theme"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".local", "share", "planline")
	defaults := models.DefaultSettings()

	return &Config{
		Global: GlobalConfig{
			DataDir: dataDir,
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:        "info",
			Format:       "console",
			EnableCaller: false,
		},
		Chart: ChartConfig{
			StartDate: defaults.StartDate,
			EndDate:   defaults.EndDate,
			Zoom:      string(models.ZoomDay),
			Locale:    "en",
			Theme:     "light",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Global.DataDir == "" {
		return fmt.Errorf("global.data_dir cannot be empty")
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console; got %q", c.Logging.Format)
	}

	if _, err := models.ParseZoomLevel(c.Chart.Zoom); err != nil {
		return fmt.Errorf("chart.zoom: %w", err)
	}

	switch c.Chart.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("chart.theme must be light or dark; got %q", c.Chart.Theme)
	}

	return nil
}

// DatabasePath returns the effective database file path.
func (c *Config) DatabasePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(c.Global.DataDir, "planline.db")
}

// EnsureDirectories creates the directories the configuration points at.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Global.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
