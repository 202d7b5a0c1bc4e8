// Package config handles TOML-based configuration loading and validation.
// Custom providers are declared as data under [[providers]]; nothing in the
// file is executed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"embedplayer/internal/prefs"
	"embedplayer/internal/provider"
	"embedplayer/internal/sanitize"
)

// Config holds all application configuration.
type Config struct {
	Plugin    string                       `toml:"plugin"`
	Provider  string                       `toml:"provider"`
	PrefsDB   string                       `toml:"prefs_db"`
	Debug     bool                         `toml:"debug"`
	Color     string                       `toml:"color"`
	Prefs     map[string]map[string]string `toml:"prefs"`
	Providers []provider.Spec              `toml:"providers"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Plugin:   "embed_player",
		Provider: "youtube",
		Color:    "auto",
		Debug:    false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "embedplayer"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "embedplayer"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path and merges with defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if err := sanitize.ValidateName(c.Plugin); err != nil {
		return fmt.Errorf("plugin: %w", err)
	}

	validColors := map[string]bool{
		"auto": true, "always": true, "never": true,
	}
	if !validColors[strings.ToLower(c.Color)] {
		return fmt.Errorf("unsupported color mode %q (valid: auto, always, never)", c.Color)
	}

	reg, err := c.Registry()
	if err != nil {
		return err
	}
	if _, err := reg.Get(c.Provider); err != nil {
		return fmt.Errorf("default provider: %w", err)
	}
	for name := range c.Prefs {
		if _, err := reg.Get(name); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// Registry returns the built-in providers plus the configured ones.
func (c *Config) Registry() (*provider.Registry, error) {
	reg, err := provider.Load(provider.Builtin(), c.Providers)
	if err != nil {
		return nil, fmt.Errorf("custom providers: %w", err)
	}
	return reg, nil
}

// PrefsStore returns the [prefs.<provider>] tables as a preference store.
func (c *Config) PrefsStore() prefs.Memory {
	m := prefs.Memory{}
	for name, values := range c.Prefs {
		event := prefs.Event(c.Plugin, strings.ToLower(name))
		for key, val := range values {
			m.Set(event, strings.ToLower(key), val)
		}
	}
	return m
}

// PrefsPath returns the SQLite preference database path.
func (c *Config) PrefsPath() (string, error) {
	if c.PrefsDB != "" {
		return expandHome(c.PrefsDB)
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "embedplayer", "prefs.db"), nil
}

// expandHome resolves ~ in a path.
func expandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}
