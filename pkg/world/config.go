package world

import "fmt"

// Config holds every tunable world-generation parameter. A Config is
// immutable for the lifetime of a generation: World.SetConfig rebuilds the
// entire noise field bank from the new values, carrying no state over.
//
// YAML tags allow configs to be stored as preset files (see cmd/presets).
type Config struct {
	Seed       int64   `yaml:"seed"`
	WorldScale float64 `yaml:"world_scale"`
	DayOfYear  int     `yaml:"day_of_year"` // 0–364

	// Temperature parameters (Celsius).
	EquatorTemperature   float64 `yaml:"equator_temperature"`
	PoleTemperature      float64 `yaml:"pole_temperature"`
	TemperatureLapseRate float64 `yaml:"temperature_lapse_rate"` // °C per 1000m altitude

	// Terrain parameters.
	SeaLevel         float64 `yaml:"sea_level"`
	MaxTerrainHeight float64 `yaml:"max_terrain_height"`

	// Terrain noise parameters.
	TerrainFrequency  float64 `yaml:"terrain_frequency"`
	TerrainOctaves    int     `yaml:"terrain_octaves"`
	TerrainLacunarity float64 `yaml:"terrain_lacunarity"`
	TerrainGain       float64 `yaml:"terrain_gain"`

	// Moisture noise parameters.
	MoistureFrequency float64 `yaml:"moisture_frequency"`
	MoistureOctaves   int     `yaml:"moisture_octaves"`
}

// DefaultConfig returns a Config with Earth-like defaults.
func DefaultConfig() Config {
	return Config{
		Seed:                 12345,
		WorldScale:           1.0,
		DayOfYear:            172, // near the June solstice
		EquatorTemperature:   30.0,
		PoleTemperature:      -40.0,
		TemperatureLapseRate: 6.5,
		SeaLevel:             0.0,
		MaxTerrainHeight:     8848.0,
		TerrainFrequency:     0.001,
		TerrainOctaves:       6,
		TerrainLacunarity:    2.0,
		TerrainGain:          0.5,
		MoistureFrequency:    0.002,
		MoistureOctaves:      4,
	}
}

// Validate reports the first invalid parameter, if any. SetConfig rejects
// invalid configs before touching the active generation.
func (c Config) Validate() error {
	if c.WorldScale <= 0 {
		return fmt.Errorf("world_scale must be positive, got %g", c.WorldScale)
	}
	if c.DayOfYear < 0 || c.DayOfYear > 364 {
		return fmt.Errorf("day_of_year must be in [0,364], got %d", c.DayOfYear)
	}
	if c.EquatorTemperature < c.PoleTemperature {
		return fmt.Errorf("equator_temperature (%g) must be >= pole_temperature (%g)",
			c.EquatorTemperature, c.PoleTemperature)
	}
	if c.TemperatureLapseRate < 0 {
		return fmt.Errorf("temperature_lapse_rate must be non-negative, got %g", c.TemperatureLapseRate)
	}
	if c.MaxTerrainHeight <= 0 {
		return fmt.Errorf("max_terrain_height must be positive, got %g", c.MaxTerrainHeight)
	}
	if c.SeaLevel < -4000 || c.SeaLevel > c.MaxTerrainHeight {
		return fmt.Errorf("sea_level must be in [-4000,%g], got %g", c.MaxTerrainHeight, c.SeaLevel)
	}
	if c.TerrainFrequency <= 0 {
		return fmt.Errorf("terrain_frequency must be positive, got %g", c.TerrainFrequency)
	}
	if c.TerrainOctaves < 1 {
		return fmt.Errorf("terrain_octaves must be >= 1, got %d", c.TerrainOctaves)
	}
	if c.TerrainLacunarity <= 0 {
		return fmt.Errorf("terrain_lacunarity must be positive, got %g", c.TerrainLacunarity)
	}
	if c.TerrainGain <= 0 || c.TerrainGain > 1 {
		return fmt.Errorf("terrain_gain must be in (0,1], got %g", c.TerrainGain)
	}
	if c.MoistureFrequency <= 0 {
		return fmt.Errorf("moisture_frequency must be positive, got %g", c.MoistureFrequency)
	}
	if c.MoistureOctaves < 1 {
		return fmt.Errorf("moisture_octaves must be >= 1, got %d", c.MoistureOctaves)
	}
	return nil
}
