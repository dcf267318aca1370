package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/quickwritereader/filovec/access"
	"gopkg.in/yaml.v3"
)

const (
	FormatHex     = "hex"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config drives the datainfo command line tool.
type Config struct {
	Builder Builder `yaml:"builder"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Builder sizes the access.Builder used for encoding
type Builder struct {
	InitialSize int `yaml:"initial_size"`
	MaxSize     int `yaml:"max_size"`
}

type Output struct {
	Format string `yaml:"format"`
}

// Logging contains logging configuration
type Logging struct {
	Verbosity int `yaml:"verbosity"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Builder: Builder{
			InitialSize: 64,
			MaxSize:     access.DefaultMaxSize,
		},
		Output: Output{
			Format: FormatHex,
		},
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatHex, FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Builder.InitialSize <= 0 || c.Builder.MaxSize <= 0 {
		return fmt.Errorf("%w: builder sizes must be positive", ErrInvalidConfig)
	}
	if c.Builder.InitialSize > c.Builder.MaxSize {
		return fmt.Errorf("%w: initial_size %d exceeds max_size %d",
			ErrInvalidConfig, c.Builder.InitialSize, c.Builder.MaxSize)
	}
	if c.Logging.Verbosity < 0 {
		return fmt.Errorf("%w: negative verbosity", ErrInvalidConfig)
	}
	return nil
}

// NewBuilder creates a builder sized by the configuration.
func (c *Config) NewBuilder() *access.Builder {
	return access.NewBuilder(c.Builder.InitialSize, access.WithMaxSize(c.Builder.MaxSize))
}
