// Package config loads rpncalc settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/rpncalc/internal/logger"
)

// Config is the complete configuration for the rpncalc command.
type Config struct {
	// Prompt is printed before reading each expression.
	Prompt string `yaml:"prompt"`
	// Decimals is the number of fractional digits results are rounded to.
	Decimals int `yaml:"decimals"`
	// RightAssoc lists operator symbols that group right to left, e.g. "^".
	RightAssoc string `yaml:"right_assoc"`
	// Log configures diagnostics.
	Log logger.Config `yaml:"log"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:   "Expression: ",
		Decimals: 6,
		Log: logger.Config{
			Level:      "warn",
			Format:     "console",
			Output:     "stderr",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// ParseConfig parses YAML over the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file. A missing file yields
// the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return ParseConfig(data)
}

// Serialize serializes the configuration to YAML.
func (c *Config) Serialize() ([]byte, error) {
	return yaml.Marshal(c)
}
