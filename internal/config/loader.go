package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".invreport"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads report settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .invreport in the current directory
// 3. Look for .invreport in the user's home directory
// 4. Look for .invreport in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
