package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete storefront configuration
type Config struct {
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig controls how the product catalog is fetched
type APIConfig struct {
	// Endpoint is the URL of the products collection
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// Timeout bounds the single catalog request (default: 10s, 0 = no timeout)
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "dracula", "nord", or a custom theme name
	Theme string `mapstructure:"theme" yaml:"theme"`
	// CardWidth is the width of a product card in columns (default: 60, min: 30, max: 120)
	CardWidth int `mapstructure:"card_width" yaml:"card_width"`
}

// ServerConfig controls the HTML presenter started by `storefront serve`
type ServerConfig struct {
	// Addr is the listen address (default: "127.0.0.1:8080")
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether the TUI writes a log file (default: false).
	// The server always logs to stderr.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory for storefront.log. Empty uses StateDir().
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: "https://dummyjson.com/products",
			Timeout:  10 * time.Second,
		},
		TUI: TUIConfig{
			Theme:     "default",
			CardWidth: 60,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     "", // Empty means use StateDir()
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.endpoint", defaults.API.Endpoint)
	viper.SetDefault("api.timeout", defaults.API.Timeout)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.card_width", defaults.TUI.CardWidth)

	viper.SetDefault("server.addr", defaults.Server.Addr)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ResolveDir returns the directory the log file is written to.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return StateDir()
	}
	return expandHome(l.Dir)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "storefront")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".config", "storefront")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the default directory for log files
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "storefront")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".local", "state", "storefront")
}
