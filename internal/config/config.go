package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a patientload run.
type Config struct {
	DSN       string
	FilePath  string
	LogFormat string // "text" or "json"
	Force     bool
	// RequireLastName switches to the strict contract: rows without a
	// last name are rejected outright instead of loaded as incomplete.
	RequireLastName bool `yaml:"require_last_name"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	RequireLastName bool `yaml:"require_last_name"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.RequireLastName = yc.RequireLastName
	return nil
}

// Validate checks required fields and returns an error if the config is
// invalid. Note that source-file existence is deliberately not checked
// here: a missing file is a reported run outcome, not a usage error.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
