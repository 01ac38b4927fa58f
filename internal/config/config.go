// Package config loads workboard settings from YAML, .env and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig selects and locates the backing store
type DatabaseConfig struct {
	Driver      string `yaml:"driver"`
	Path        string `yaml:"path"`
	DSN         string `yaml:"dsn"`
	SlowQueryMS int    `yaml:"slow_query_ms"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:      DriverSQLite,
			Path:        filepath.Join(dataDir(), "workboard.db"),
			SlowQueryMS: 200,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   filepath.Join(dataDir(), "logs"),
		},
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return LoadFile("")
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, then applies .env and WORKBOARD_* overrides.
// An empty path or a missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	loadDotEnv()

	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDotEnv loads .env from the working directory. The file is optional,
// anything other than its absence is logged and skipped.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
}

// Validate checks the driver settings are usable
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}
	return nil
}

// Init writes the default configuration to the user's config directory and
// returns the file path. An existing file is kept unless force is set.
func Init(force bool) (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return configPath, fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
	}

	if err := Default().Save(); err != nil {
		return configPath, fmt.Errorf("failed to write config %s: %w", configPath, err)
	}
	return configPath, nil
}

// Path returns where Load looks for the config file
func Path() (string, error) {
	return getConfigPath()
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// applyEnv overrides file values with WORKBOARD_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("WORKBOARD_DB_DRIVER"); v != "" {
		c.Database.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("WORKBOARD_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("WORKBOARD_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("WORKBOARD_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Database.Driver == "" {
		c.Database.Driver = defaults.Database.Driver
	}
	if c.Database.Driver == DriverSQLite && c.Database.Path == "" {
		c.Database.Path = defaults.Database.Path
	}
	if c.Database.SlowQueryMS <= 0 {
		c.Database.SlowQueryMS = defaults.Database.SlowQueryMS
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "workboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "workboard", "config.yaml"), nil
}

// dataDir is where the database and logs live by default
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".workboard"
	}
	return filepath.Join(home, ".workboard")
}
