package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Extensions selects and configures the built-in extensions.
type Extensions struct {
	Ping   PingConfig   `yaml:"ping"`
	Audit  AuditConfig  `yaml:"audit"`
	Status StatusConfig `yaml:"status"`
}

// PingConfig configures the ping extension.
type PingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Trigger string `yaml:"trigger"`
	Reply   string `yaml:"reply"`
}

// AuditConfig configures the message audit extension.
type AuditConfig struct {
	Enabled bool `yaml:"enabled"`
}

// StatusConfig configures the status extension and its HTTP listener.
// An empty Addr tracks status without serving it.
type StatusConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// DefaultExtensions is used when no extensions file exists.
func DefaultExtensions() Extensions {
	return Extensions{
		Ping:   PingConfig{Enabled: true, Trigger: "!extension", Reply: "Hey!"},
		Audit:  AuditConfig{Enabled: false},
		Status: StatusConfig{Enabled: true},
	}
}

// LoadExtensions reads the extensions YAML at path. A missing file yields
// DefaultExtensions; sections absent from the file keep their defaults.
func LoadExtensions(path string) (Extensions, error) {
	ext := DefaultExtensions()
	if path == "" {
		return ext, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ext, nil
	}
	if err != nil {
		return ext, fmt.Errorf("config: read extensions %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &ext); err != nil {
		return ext, fmt.Errorf("config: parse extensions %s: %w", path, err)
	}
	return ext, nil
}
