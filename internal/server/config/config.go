package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daver64/rworld/pkg/world"
)

// Config holds the worldd server configuration.
type Config struct {
	Addr     string `yaml:"addr"`
	MaxBatch int    `yaml:"max_batch"` // max locations per batch request

	// Preset names a world preset file; when set it overrides World.
	Preset string `yaml:"preset"`

	World world.Config `yaml:"world"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:     ":8080",
		MaxBatch: 10000,
		World:    world.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the server fields and the embedded world config.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.MaxBatch <= 0 {
		return fmt.Errorf("max_batch must be positive, got %d", c.MaxBatch)
	}
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["addr"] {
		cfg.Addr = fromFile.Addr
	}
	if !explicitFlags["max-batch"] {
		cfg.MaxBatch = fromFile.MaxBatch
	}
	if !explicitFlags["preset"] {
		cfg.Preset = fromFile.Preset
	}
	if !explicitFlags["seed"] {
		cfg.World = fromFile.World
	} else {
		seed := cfg.World.Seed
		cfg.World = fromFile.World
		cfg.World.Seed = seed
	}
}
