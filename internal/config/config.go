package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/chris-regnier/termcal/internal/history"
)

// ErrInvalid is returned for unknown keys or unacceptable values.
var ErrInvalid = errors.New("invalid config")

// ThemeConfig holds TUI theme configuration.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset" json:"preset"`
	Primary       string `mapstructure:"primary" json:"primary"`
	Secondary     string `mapstructure:"secondary" json:"secondary"`
	Accent        string `mapstructure:"accent" json:"accent"`
	Muted         string `mapstructure:"muted" json:"muted"`
	Danger        string `mapstructure:"danger" json:"danger"`
	Background    string `mapstructure:"background" json:"background"`
	MarkdownStyle string `mapstructure:"markdown_style" json:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Country      string      `mapstructure:"country" json:"country"`
	Subdivision  string      `mapstructure:"subdivision" json:"subdivision"`
	ShowHolidays bool        `mapstructure:"show_holidays" json:"show_holidays"`
	DataDir      string      `mapstructure:"data_dir" json:"data_dir"`
	LogLevel     string      `mapstructure:"log_level" json:"log_level"`
	HistoryURL   string      `mapstructure:"history_url" json:"history_url"`
	AgendaDays   int         `mapstructure:"agenda_days" json:"agenda_days"`
	Editor       string      `mapstructure:"editor" json:"editor"`
	Theme        ThemeConfig `mapstructure:"theme" json:"theme"`
}

// Validate checks value ranges. Error keys are the config key names.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Country, validation.Required, validation.Length(2, 3)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.AgendaDays, validation.Required, validation.Min(1), validation.Max(366)),
		validation.Field(&c.DataDir, validation.Required),
	)
}

// DefaultDataDir returns the default data directory (~/.cal/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cal")
	}
	return filepath.Join(home, ".cal")
}

// DefaultPath returns the config file used when none is given. An existing
// $XDG_CONFIG_HOME/termcal/config.json wins over ~/.cal/config.json.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		p := filepath.Join(xdg, "termcal", "config.json")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(DefaultDataDir(), "config.json")
}

func defaults() map[string]any {
	return map[string]any{
		"country":              "US",
		"subdivision":          "",
		"show_holidays":        true,
		"data_dir":             DefaultDataDir(),
		"log_level":            "info",
		"history_url":          history.DefaultBaseURL,
		"agenda_days":          30,
		"editor":               "",
		"theme.preset":         "default-dark",
		"theme.primary":        "",
		"theme.secondary":      "",
		"theme.accent":         "",
		"theme.muted":          "",
		"theme.danger":         "",
		"theme.background":     "",
		"theme.markdown_style": "",
	}
}

// Keys returns every settable key, sorted.
func Keys() []string {
	d := defaults()
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")
	return v
}

// Manager owns the config file: loading, persisting single keys and watching
// for external edits.
type Manager struct {
	path   string
	v      *viper.Viper
	logger *slog.Logger
}

// Load reads configuration from file, environment variables and defaults.
// A missing file is created with defaults. A corrupt file is replaced by
// defaults; invalid values fall back to their defaults. Neither is an error.
func Load(configPath string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if configPath == "" {
		configPath = DefaultPath()
	}
	m := &Manager{path: configPath, logger: logger}

	if err := m.readOrInit(); err != nil {
		return nil, err
	}

	m.v = newViper(configPath)
	// Environment variables: TERMCAL_COUNTRY, TERMCAL_DATA_DIR, etc.
	m.v.SetEnvPrefix("TERMCAL")
	m.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.v.AutomaticEnv()
	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := m.Config()
	if err != nil {
		return nil, err
	}
	var verrs validation.Errors
	if err := cfg.Validate(); errors.As(err, &verrs) {
		d := defaults()
		for key, ferr := range verrs {
			logger.Warn("invalid config value, using default", "key", key, "err", ferr)
			m.v.Set(key, d[key])
		}
	}
	return m, nil
}

// readOrInit makes sure a parsable file exists at m.path.
func (m *Manager) readOrInit() error {
	fv := newViper(m.path)
	err := fv.ReadInConfig()
	if err == nil {
		return nil
	}
	var parseErr viper.ConfigParseError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.logger.Info("config file not found, writing defaults", "path", m.path)
	case errors.As(err, &parseErr):
		m.logger.Warn("config file corrupted, using defaults", "path", m.path, "err", err)
	default:
		return fmt.Errorf("reading config: %w", err)
	}
	return writeFile(newViper(m.path), m.path)
}

func writeFile(v *viper.Viper, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (m *Manager) Path() string { return m.path }

// Get returns the effective value of one key.
func (m *Manager) Get(key string) any { return m.v.Get(key) }

// Config returns the effective configuration.
func (m *Manager) Config() (*Config, error) {
	cfg := &Config{}
	if err := m.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Set parses value for key, validates the result and persists it. Only the
// file contents and defaults are written, never environment overrides.
func (m *Manager) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	def, ok := defaults()[key]
	if !ok {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}

	var parsed any
	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", ErrInvalid, key)
		}
		parsed = b
	case int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", ErrInvalid, key)
		}
		parsed = n
	default:
		parsed = value
		if key == "country" || key == "subdivision" {
			parsed = strings.ToUpper(value)
		}
	}

	fv := newViper(m.path)
	if err := fv.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	fv.Set(key, parsed)

	candidate := &Config{}
	if err := fv.Unmarshal(candidate); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := writeFile(fv, m.path); err != nil {
		return err
	}
	if err := m.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Watch calls fn with the reloaded configuration whenever the file changes.
// fn runs on the watcher goroutine.
func (m *Manager) Watch(fn func(*Config)) {
	m.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := m.Config()
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			m.logger.Warn("config reload failed", "path", e.Name, "err", err)
			return
		}
		m.logger.Info("config reloaded", "path", e.Name, "op", e.Op.String())
		fn(cfg)
	})
	m.v.WatchConfig()
}
