// Package project loads the optional on-disk nesting defaults file: a
// YAML defaults layer consulted before a job's own "parameters" object.
package project

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/piwi3910/nestkit/internal/model"
)

// DefaultConfigDir returns the default directory for nesting defaults.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "nest")
}

// DefaultConfigPath returns the default path for the defaults file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "defaults.yaml")
}

// SaveAppConfig persists an AppConfig to the given path as YAML,
// creating any missing parent directories.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. If the file does
// not exist, it returns DefaultAppConfig with no error, so a job can
// always be normalised against a config even when the user has none.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	return config, nil
}
