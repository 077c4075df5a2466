// Package config provides configuration file support for oserr.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"oserr/internal/osstatus"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = ".oserr.yaml"

// Color modes accepted by the "color" key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the oserr configuration file.
type Config struct {
	Color *string           `yaml:"color"`
	Codes map[string]string `yaml:"codes"`
}

// LoadResult contains the loaded config and any warnings encountered.
type LoadResult struct {
	Config   *Config
	Warnings []string
}

// Load reads .oserr.yaml from the current directory, falling back to the
// user's home directory. Returns an empty config (not an error) if neither
// file exists.
func Load() (*LoadResult, error) {
	if result, err := loadIfPresent(ConfigFileName); result != nil || err != nil {
		return result, err
	}
	home, err := os.UserHomeDir()
	if err == nil {
		if result, err := loadIfPresent(filepath.Join(home, ConfigFileName)); result != nil || err != nil {
			return result, err
		}
	}
	return &LoadResult{Config: &Config{}}, nil
}

// loadIfPresent returns (nil, nil) when path does not exist.
func loadIfPresent(path string) (*LoadResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a config file and returns warnings for unknown keys.
// Returns an error if the file is missing, is invalid YAML, or holds
// invalid values.
func LoadFromPath(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	warnings := checkUnknownKeys(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}

	return &LoadResult{Config: &cfg, Warnings: warnings}, nil
}

// Validate checks config values.
func (c *Config) Validate() error {
	if c.Color != nil {
		switch *c.Color {
		case ColorAuto, ColorAlways, ColorNever:
		default:
			return fmt.Errorf("invalid color mode %q (want auto, always, or never)", *c.Color)
		}
	}
	for key := range c.Codes {
		if _, err := osstatus.Parse(key); err != nil {
			return fmt.Errorf("invalid code key: %w", err)
		}
	}
	return nil
}

// Apply registers the configured code descriptions for lookup. Must be
// called after a successful Validate.
func (c *Config) Apply() {
	for key, desc := range c.Codes {
		code, err := osstatus.Parse(key)
		if err != nil {
			continue
		}
		osstatus.Register(code, desc)
	}
}

// ColorMode returns the configured color mode, defaulting to auto.
func (c *Config) ColorMode() string {
	if c.Color == nil {
		return ColorAuto
	}
	return *c.Color
}

// knownTopLevelKeys are the valid top-level keys in the config file.
var knownTopLevelKeys = []string{"color", "codes"}

// checkUnknownKeys checks for unknown keys in the YAML data and returns warnings.
func checkUnknownKeys(data []byte) []string {
	var warnings []string

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// If we can't parse, let the main parser handle the error
		return nil
	}

	for key := range raw {
		if !slices.Contains(knownTopLevelKeys, key) {
			warnings = append(warnings, fmt.Sprintf("unknown key %q in %s", key, ConfigFileName))
		}
	}

	return warnings
}
