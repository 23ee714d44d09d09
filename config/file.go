package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/termcal"
	configFileName = "config.yaml"
)

// File is the optional YAML configuration
type File struct {
	// Theme maps style names to colors
	Theme map[string]string `yaml:"theme"`

	// Keys maps key names to action names; "none" unbinds
	Keys map[string]string `yaml:"keys"`
}

// UserConfigPath returns the default config location
func UserConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// Load reads the config file at path
// With an empty path the user config is read if present; a missing user config yields an empty File
// An explicit path must exist
func Load(path string) (File, error) {
	if path != "" {
		return loadFromFile(path)
	}

	userPath, err := UserConfigPath()
	if err != nil {
		// No home directory, nothing to layer
		return File{}, nil
	}

	cfg, err := loadFromFile(userPath)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, nil
	}
	return cfg, err
}

func loadFromFile(path string) (File, error) {
	var cfg File
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return cfg, nil
}
