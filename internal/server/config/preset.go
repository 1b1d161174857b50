package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daver64/rworld/pkg/world"
)

// Preset is a named world configuration document, the unit cmd/presets
// downloads and worldd/worldmap load with --preset.
type Preset struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	World       world.Config `yaml:"world"`
}

// LoadPreset reads a preset file. World fields absent from the file keep
// their default values; the result is validated before return.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset %s: %w", path, err)
	}

	p := Preset{World: world.DefaultConfig()}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if p.Name == "" {
		return Preset{}, fmt.Errorf("preset %s: name must not be empty", path)
	}
	if err := p.World.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return p, nil
}
