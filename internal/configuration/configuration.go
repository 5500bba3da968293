package configuration

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/malonaz/spendchat/internal/file"
)

const (
	// DefaultPath is where the configuration lives unless --config says otherwise.
	DefaultPath = "~/.config/spendchat/config.json"

	// EnvAPIBaseURL overrides the configured api base url.
	EnvAPIBaseURL = "SPENDCHAT_API_BASE_URL"

	dotEnvFilename = ".env"
)

func defaultConfig() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8000",
		LogFile:    "~/.config/spendchat/debug.log",
		LogLevel:   "info",
		Chat: &ChatConfig{
			WelcomeMessage: "Hi! Tell me about what you spent, in your own words. " +
				"For example: “I spent 70 dollars at Walmart and 20 on Apple subscriptions yesterday.”",
		},
		Dashboard: &DashboardConfig{
			ChartHeight: 8,
		},
	}
}

// Config holds configuration for the spendchat tool.
type Config struct {
	// Base url of the expense service, e.g. http://localhost:8000.
	APIBaseURL string `json:"api_base_url"`
	// Debug log destination. The terminal belongs to the UI so we never log to stdout.
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
	// If set, input history is persisted to this file. Empty keeps it in memory.
	HistoryFile string `json:"history_file"`

	Chat      *ChatConfig      `json:"chat"`
	Dashboard *DashboardConfig `json:"dashboard"`
}

// ChatConfig holds configuration for the chat pane.
type ChatConfig struct {
	// First message shown by the assistant.
	WelcomeMessage string `json:"welcome_message"`
}

// DashboardConfig holds configuration for the dashboard pane.
type DashboardConfig struct {
	// Re-fetch the summary every N seconds. 0 disables periodic refreshes.
	RefreshIntervalSeconds int `json:"refresh_interval_seconds"`
	// Height of the daily totals chart, in rows.
	ChartHeight int `json:"chart_height"`
}

// Parse a configuration file, creating it with defaults if it does not exist.
// Values from the environment (and a local .env file) take precedence over the file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}
	if err := mergo.Merge(config, defaultConfig()); err != nil {
		return nil, errors.Wrap(err, "merging default config")
	}

	if err := loadDotEnv(); err != nil {
		return nil, errors.Wrap(err, "loading .env")
	}
	if value := os.Getenv(EnvAPIBaseURL); value != "" {
		config.APIBaseURL = value
	}

	if config.LogFile, err = file.ExpandPath(config.LogFile); err != nil {
		return nil, errors.Wrap(err, "expanding log file path")
	}
	if config.HistoryFile, err = file.ExpandPath(config.HistoryFile); err != nil {
		return nil, errors.Wrap(err, "expanding history file path")
	}
	return config, nil
}

// Default returns the default configuration.
func Default() *Config {
	return defaultConfig()
}

// Validate the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return errors.Wrapf(err, "parsing api base url %q", c.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("api base url %q: scheme must be http or https", c.APIBaseURL)
	}
	if u.Host == "" {
		return errors.Errorf("api base url %q: missing host", c.APIBaseURL)
	}
	if d := c.Dashboard; d != nil {
		if d.RefreshIntervalSeconds < 0 {
			return errors.Errorf("dashboard refresh interval must not be negative, got %d", d.RefreshIntervalSeconds)
		}
		if d.ChartHeight < 0 {
			return errors.Errorf("dashboard chart height must not be negative, got %d", d.ChartHeight)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// RefreshInterval returns the periodic dashboard refresh interval, 0 when disabled.
func (c *Config) RefreshInterval() time.Duration {
	if c.Dashboard == nil {
		return 0
	}
	return time.Duration(c.Dashboard.RefreshIntervalSeconds) * time.Second
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Save a configuration file.
func (c *Config) Save(path string) error {
	path, err := file.ExpandPath(path)
	if err != nil {
		return errors.Wrap(err, "expanding path")
	}
	if err := file.EnsureDir(path); err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return errors.Wrap(err, "writing file")
	}
	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	exists, err := file.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := defaultConfig().Save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}

func loadDotEnv() error {
	exists, err := file.Exists(dotEnvFilename)
	if err != nil || !exists {
		return err
	}
	return godotenv.Load(dotEnvFilename)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, errors.Errorf("unknown log level %q", s)
	}
	return level, nil
}
