// Package config loads server configuration from an optional YAML file
// with environment variable overrides.
//
// Config file locations (priority order):
//  1. $TASKLIST_CONFIG
//  2. ./tasklist.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the server.
type Config struct {
	Port     string `yaml:"port"`
	DataPath string `yaml:"data_path"`
}

// Load finds and loads the config file, or returns defaults if none
// found. PORT and DATA_PATH environment variables override file values.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := findConfigPath(); path != "" {
		loaded, err := LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dataPath := os.Getenv("DATA_PATH"); dataPath != "" {
		cfg.DataPath = dataPath
	}

	return cfg, nil
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// DefaultConfig returns sensible defaults for a fresh installation.
func DefaultConfig() *Config {
	return &Config{
		Port:     "8080",
		DataPath: "./data/tasks.json",
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DataPath == "" {
		c.DataPath = "./data/tasks.json"
	}
}

func findConfigPath() string {
	if path := os.Getenv("TASKLIST_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("tasklist.yaml"); err == nil {
		return "tasklist.yaml"
	}
	return ""
}
