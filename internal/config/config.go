// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. WORKOUT_TUI_API_ENDPOINT.
const EnvPrefix = "WORKOUT_TUI"

// Config represents the application configuration.
type Config struct {
	API  APIConfig  `mapstructure:"api" yaml:"api"`
	UI   UIConfig   `mapstructure:"ui" yaml:"ui"`
	Host HostConfig `mapstructure:"host" yaml:"host"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`
}

// APIConfig holds workout backend settings.
type APIConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout  string `mapstructure:"timeout" yaml:"timeout"` // Go duration, e.g. "30s"
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	AltScreen    bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	Mouse        bool `mapstructure:"mouse" yaml:"mouse"`
	CellWidthPx  int  `mapstructure:"cell_width_px" yaml:"cell_width_px"` // pixels per terminal column for swipes
	NotifyErrors bool `mapstructure:"notify_errors" yaml:"notify_errors"`
}

// HostConfig describes the embedding host. When disabled the app runs in demo mode.
type HostConfig struct {
	Enabled     bool              `mapstructure:"enabled" yaml:"enabled"`
	ColorScheme string            `mapstructure:"color_scheme" yaml:"color_scheme"`
	ThemeParams map[string]string `mapstructure:"theme_params" yaml:"theme_params,omitempty"`
	User        UserConfig        `mapstructure:"user" yaml:"user"`
}

// UserConfig is the host-supplied identity.
type UserConfig struct {
	ID           int64  `mapstructure:"id" yaml:"id,omitempty"`
	FirstName    string `mapstructure:"first_name" yaml:"first_name,omitempty"`
	LastName     string `mapstructure:"last_name" yaml:"last_name,omitempty"`
	Username     string `mapstructure:"username" yaml:"username,omitempty"`
	LanguageCode string `mapstructure:"language_code" yaml:"language_code,omitempty"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"` // defaults to debug.log in the config dir
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: "https://workouts.example.com/api/workouts",
			Timeout:  "30s",
		},
		UI: UIConfig{
			AltScreen:   true,
			Mouse:       true,
			CellWidthPx: 8,
		},
		Host: HostConfig{
			Enabled:     false,
			ColorScheme: "dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// TimeoutDuration returns the API timeout, or zero if unset or malformed.
func (c APIConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.Timeout))
	if err != nil {
		return 0
	}
	return d
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "workout-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Store reads one config file through viper and can watch it for changes.
type Store struct {
	v    *viper.Viper
	path string
}

// NewStore creates a Store for path. An empty path uses ConfigPath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("api.endpoint", def.API.Endpoint)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("ui.cell_width_px", def.UI.CellWidthPx)
	v.SetDefault("ui.notify_errors", def.UI.NotifyErrors)
	v.SetDefault("host.enabled", def.Host.Enabled)
	v.SetDefault("host.color_scheme", def.Host.ColorScheme)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	return &Store{v: v, path: path}, nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration file. A missing file yields the defaults.
func (s *Store) Load() (*Config, error) {
	if err := s.v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return s.decode()
}

func (s *Store) decode() (*Config, error) {
	cfg := DefaultConfig()
	if err := s.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.UI.CellWidthPx <= 0 {
		cfg.UI.CellWidthPx = DefaultConfig().UI.CellWidthPx
	}
	return cfg, nil
}

// Watch calls fn with the re-read configuration each time the file changes.
// Decode failures are passed to onErr and the previous config stays in effect.
func (s *Store) Watch(fn func(*Config), onErr func(error)) {
	s.v.OnConfigChange(func(fsnotify.Event) {
		cfg, err := s.decode()
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		fn(cfg)
	})
	s.v.WatchConfig()
}

// Save writes the configuration to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Template renders the commented starter config written by `workout-tui init`.
func Template() ([]byte, error) {
	cfg := DefaultConfig()
	cfg.Host.ThemeParams = map[string]string{
		"button_color": "#5288c1",
	}
	cfg.Host.User = UserConfig{FirstName: "Alex", Username: "alex"}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}

	header := `# Workout TUI Configuration
# Location: ~/.config/workout-tui/config.yaml
#
# host: set enabled to true to take identity and theme colors from this file.
# Edits to host.theme_params while the app runs are pushed as theme changes.
# theme_params keys: bg_color, text_color, hint_color, link_color,
# button_color, button_text_color, secondary_bg_color.

`
	return append([]byte(header), body...), nil
}
