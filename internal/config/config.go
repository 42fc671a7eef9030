// Package config provides configuration management for gocalc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sivchari/gocalc/internal/calculator"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFile is the file written by `gocalc config init`.
const DefaultFile = ".gocalc.yaml"

// ErrInvalidFormat is returned when output.format is not a supported format.
var ErrInvalidFormat = errors.New("invalid output format")

// Config represents the configuration for gocalc.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose"`

	// Output settings
	Output OutputConfig `yaml:"output"`

	// User facing messages
	Messages MessagesConfig `yaml:"messages"`
}

// OutputConfig contains output-related configuration.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Color  bool   `yaml:"color"`
}

// MessagesConfig contains the messages printed for handled errors.
type MessagesConfig struct {
	DivisionByZero string `yaml:"divisionByZero,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
		},
		Messages: MessagesConfig{
			DivisionByZero: calculator.DefaultDivisionByZeroMessage,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{DefaultFile, ".gocalc.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

// Validate fills blank fields with defaults and rejects unsupported values.
func (c *Config) Validate() error {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidFormat, c.Output.Format, FormatText, FormatJSON)
	}

	if c.Messages.DivisionByZero == "" {
		c.Messages.DivisionByZero = calculator.DefaultDivisionByZeroMessage
	}

	return nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write YAML config file: %w", err)
	}

	return nil
}
