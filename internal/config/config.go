// Package config handles global nova configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// DefaultEditor is launched when no editor is configured.
const DefaultEditor = "nvim"

// configRelPath is the config file location relative to the XDG config home.
var configRelPath = filepath.Join("nova", "config.toml")

// Config represents the global nova configuration.
// The notes root is not configurable; it is always ~/.nova.
type Config struct {
	// Editor is the command used to open daily notes.
	Editor string `toml:"editor"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for file paths in search output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the path Load reads from when the file exists.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, configRelPath)
}

// ResolveConfigPath resolves the effective config path from an optional override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// GetEditor returns the editor command, falling back to DefaultEditor.
func (c *Config) GetEditor() string {
	if editor := strings.TrimSpace(c.Editor); editor != "" {
		return editor
	}
	return DefaultEditor
}

// GetLogLevel returns the normalized log level name.
func (c *Config) GetLogLevel() string {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch level {
	case "debug", "info", "warn", "error":
		return level
	case "warning":
		return "warn"
	default:
		return "info"
	}
}
