// Package config loads the optional notetool configuration file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/notetool/internal/apperr"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// Config holds editor overrides. Every field is optional.
type Config struct {
	GUIEditor      string `yaml:"gui_editor" toml:"gui_editor"`
	TerminalEditor string `yaml:"terminal_editor" toml:"terminal_editor"`
	LogLevel       string `yaml:"log_level" toml:"log_level"` // "debug" | "info" | "warn" | "error"
}

// Default returns a Config with the built-in editors.
func Default() *Config {
	return &Config{
		GUIEditor:      "code",
		TerminalEditor: "nano",
	}
}

// Load reads the config file at path.
// If the file does not exist it returns Default() with no error. Files ending
// in .toml are decoded as TOML, anything else as YAML. Missing or empty keys
// retain their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- config path is chosen by the user
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, err, "read config %s", path)
	}

	var file Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, err, "parse config %s", path)
	}

	if v := strings.TrimSpace(file.GUIEditor); v != "" {
		cfg.GUIEditor = v
	}
	if v := strings.TrimSpace(file.TerminalEditor); v != "" {
		cfg.TerminalEditor = v
	}
	if v := strings.TrimSpace(file.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg, nil
}

// ---------------------------------------------------------------------------
// Path resolution
// ---------------------------------------------------------------------------

// DefaultPath returns ~/.config/notetool/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "notetool", "config.yaml"), nil
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}

// ResolvePath returns the config file to load and the source of the decision.
// Priority: flag → config.yaml → config.toml sibling → config.yaml (absent).
// source is one of "flag", "default" or "none".
func ResolvePath(flag string) (path, source string, err error) {
	if flag != "" {
		p, err := normalizePath(flag)
		if err != nil {
			return "", "", apperr.Wrap(apperr.KindConfig, err, "config path %s", flag)
		}
		return p, "flag", nil
	}

	yamlPath, err := DefaultPath()
	if err != nil {
		// Without a home directory there is no default config; the resolver
		// reports the missing home when it runs.
		return "", "none", nil
	}
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, "default", nil
	}
	tomlPath := strings.TrimSuffix(yamlPath, ".yaml") + ".toml"
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, "default", nil
	}
	return yamlPath, "none", nil
}

// LoadResolved resolves the config path from flag and loads it. An empty
// resolved path yields defaults.
func LoadResolved(flag string) (*Config, error) {
	path, _, err := ResolvePath(flag)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
