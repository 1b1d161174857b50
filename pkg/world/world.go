// Package world implements a deterministic procedural planet model. Given a
// seed and a Config, it answers point queries for terrain elevation, climate,
// hydrology, geology, astronomy, soils, vegetation, and a derived biome, all
// as pure functions of geographic coordinates (and a time-of-day value for
// transient quantities).
//
// Coordinates:
//   - Longitude: -180 to 180 degrees, wrapping (West to East)
//   - Latitude: -90 to 90 degrees, clamped (South to North)
//   - Altitude: meters above sea level
//   - Time: hours, 0–24
package world

import (
	"sync/atomic"

	"github.com/daver64/rworld/pkg/world/noise"
)

// Noise profiles for the domains whose parameters are not part of Config.
// Frequencies are multiplied by Config.WorldScale at bank-build time.
const (
	tempVarFrequency = 0.003

	windFrequency = 0.005
	windOctaves   = 2

	riverFrequency = 0.004
	riverOctaves   = 4

	volcanoFrequency = 0.03

	coalFrequency = 0.006
	coalOctaves   = 3

	ironFrequency = 0.008
	ironOctaves   = 4

	oilFrequency = 0.004

	cloudFrequency = 0.008
	cloudOctaves   = 3

	weatherFrequency = 0.01
	weatherOctaves   = 2

	pressureFrequency = 0.002
	pressureOctaves   = 2
)

// generation is one immutable build of the model: a config plus the noise
// field bank derived from it. Queries resolve against a single generation,
// so an in-flight query never mixes fields from two configs.
type generation struct {
	cfg Config

	terrain  *noise.Fractal
	moisture *noise.Fractal
	tempVar  *noise.Fractal
	wind     *noise.Fractal
	river    *noise.Fractal
	volcano  *noise.Cellular
	coal     *noise.Fractal
	iron     *noise.Ridged
	oil      *noise.Cellular
	cloud    *noise.Fractal
	weather  *noise.Drift
	pressure *noise.Drift
}

func newGeneration(cfg Config) *generation {
	seed := cfg.Seed
	scale := cfg.WorldScale
	return &generation{
		cfg: cfg,

		terrain: noise.NewFractal(seed+noise.OffsetTerrain,
			cfg.TerrainFrequency*scale, cfg.TerrainOctaves, cfg.TerrainLacunarity, cfg.TerrainGain),
		moisture: noise.NewFractal(seed+noise.OffsetMoisture,
			cfg.MoistureFrequency*scale, cfg.MoistureOctaves, 2.0, 0.5),
		tempVar: noise.NewFractal(seed+noise.OffsetTempVar,
			tempVarFrequency*scale, 1, 2.0, 0.5),
		wind: noise.NewFractal(seed+noise.OffsetWind,
			windFrequency*scale, windOctaves, 2.0, 0.5),
		river: noise.NewFractal(seed+noise.OffsetRiver,
			riverFrequency*scale, riverOctaves, 2.0, 0.5),
		volcano: noise.NewCellular(seed+noise.OffsetVolcano, volcanoFrequency*scale),
		coal: noise.NewFractal(seed+noise.OffsetCoal,
			coalFrequency*scale, coalOctaves, 2.0, 0.5),
		iron: noise.NewRidged(seed+noise.OffsetIron,
			ironFrequency*scale, ironOctaves, 2.0, 0.5),
		oil:   noise.NewCellular(seed+noise.OffsetOil, oilFrequency*scale),
		cloud: noise.NewFractal(seed+noise.OffsetCloud, cloudFrequency*scale, cloudOctaves, 2.0, 0.5),
		weather: noise.NewDrift(seed+noise.OffsetWeather,
			weatherFrequency*scale, weatherOctaves),
		pressure: noise.NewDrift(seed+noise.OffsetPressure,
			pressureFrequency*scale, pressureOctaves),
	}
}

// World is the public query surface. All queries are pure functions of
// (config, arguments): no call has side effects and results do not depend on
// call order. Concurrent queries are safe; SetConfig swaps in a freshly
// built generation atomically, so readers never observe a half-rebuilt bank.
type World struct {
	gen atomic.Pointer[generation]
}

// New creates a World from a config, validating it first.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{}
	w.gen.Store(newGeneration(cfg))
	return w, nil
}

// NewDefault creates a World with DefaultConfig.
func NewDefault() *World {
	w, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return w
}

// SetConfig replaces the active configuration, rebuilding every noise field.
// On validation failure the previous configuration stays active.
func (w *World) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.gen.Store(newGeneration(cfg))
	return nil
}

// Config returns the active configuration.
func (w *World) Config() Config {
	return w.gen.Load().cfg
}

// current returns the active generation. Each public query loads it exactly
// once so composed lookups within the query agree on one field bank.
func (w *World) current() *generation {
	return w.gen.Load()
}
