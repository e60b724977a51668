// Package config loads hello settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file consulted when no path is given.
const DefaultPath = ".hello.yaml"

// ErrInvalidFormat is returned when the output format is not text or json.
var ErrInvalidFormat = errors.New("invalid output format")

// HelloConfig is the root configuration.
type HelloConfig struct {
	Greeting GreetingConfig `yaml:"greeting"`
	Output   OutputConfig   `yaml:"output"`
}

// GreetingConfig controls the greet command.
type GreetingConfig struct {
	// DefaultName replaces "programmer" when greet is run without a name.
	DefaultName string `yaml:"default_name"`
}

// OutputConfig controls how arithmetic results are rendered.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *HelloConfig {
	return &HelloConfig{
		Greeting: GreetingConfig{DefaultName: "programmer"},
		Output:   OutputConfig{Format: "text"},
	}
}

// Load reads path and overlays it on DefaultConfig. An empty path
// reads DefaultPath and tolerates its absence; a path given explicitly
// must exist, DefaultPath included.
func Load(path string) (*HelloConfig, error) {
	optional := path == ""
	if optional {
		path = DefaultPath
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && optional {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *HelloConfig) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w %q: must be 'text' or 'json'", ErrInvalidFormat, c.Output.Format)
	}
	if c.Greeting.DefaultName == "" {
		return errors.New("greeting.default_name must not be empty")
	}
	return nil
}
