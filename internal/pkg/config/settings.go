package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the layout of the optional YAML settings file
type Settings struct {
	Logger LoggerSettings `yaml:"logger"`
	Keygen KeygenSettings `yaml:"keygen"`
}

// LoadSettings reads the YAML settings file at path on top of the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{
		Logger: *DefaultLoggerSettings(),
		Keygen: *DefaultKeygenSettings(),
	}
	if path == "" {
		return settings, nil
	}

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(b, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return settings, nil
}
