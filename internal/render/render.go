// Package render draws ASCII maps from the world query surface. It consumes
// only public world APIs and keeps all presentation choices out of the model.
package render

import (
	"fmt"
	"strings"

	"github.com/daver64/rworld/pkg/world"
)

// Mode selects which quantity a map shows.
type Mode string

const (
	ModeBiome         Mode = "biome"
	ModeElevation     Mode = "elevation"
	ModeTemperature   Mode = "temperature"
	ModePrecipitation Mode = "precipitation"
)

// Modes lists the supported map modes.
func Modes() []Mode {
	return []Mode{ModeBiome, ModeElevation, ModeTemperature, ModePrecipitation}
}

// ParseMode resolves a mode name from the command line.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown map mode %q (have biome, elevation, temperature, precipitation)", s)
}

// ramp is a low-to-high character gradient for scalar maps.
const ramp = " .:-=+*#%@"

var biomeGlyphs = map[world.BiomeType]byte{
	world.BiomeDeepOcean:                ' ',
	world.BiomeOcean:                    '~',
	world.BiomeBeach:                    '.',
	world.BiomeDesert:                   'd',
	world.BiomeColdDesert:               'c',
	world.BiomeGrassland:                '"',
	world.BiomeSavanna:                  's',
	world.BiomeTundra:                   't',
	world.BiomeTaiga:                    'T',
	world.BiomeTemperateDeciduousForest: 'F',
	world.BiomeTemperateRainforest:      'R',
	world.BiomeTropicalSeasonalForest:   'f',
	world.BiomeTropicalRainforest:       'J',
	world.BiomeSnow:                     '*',
	world.BiomeIce:                      '#',
	world.BiomeMountainTundra:           'm',
	world.BiomeMountainForest:           'M',
	world.BiomeMountainPeak:             '^',
}

// Map renders a width×height equirectangular map, sampling each cell center.
// hour feeds time-dependent quantities; it has no effect on the current
// modes but keeps the signature stable for transient overlays.
func Map(w *world.World, mode Mode, width, height int, hour float64) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("map size must be positive, got %dx%d", width, height)
	}

	locs := make([]world.Location, 0, width*height)
	for row := 0; row < height; row++ {
		lat := 90 - (float64(row)+0.5)*180/float64(height)
		for col := 0; col < width; col++ {
			lon := -180 + (float64(col)+0.5)*360/float64(width)
			locs = append(locs, world.Location{Longitude: lon, Latitude: lat, CurrentTime: hour})
		}
	}

	var cells []byte
	cfg := w.Config()
	switch mode {
	case ModeBiome:
		r := w.BatchQuery(locs, []world.DataType{world.DataBiome})
		cells = make([]byte, len(r.Biomes))
		for i, b := range r.Biomes {
			g, ok := biomeGlyphs[b]
			if !ok {
				g = '?'
			}
			cells[i] = g
		}
	case ModeElevation:
		r := w.BatchQuery(locs, []world.DataType{world.DataTerrainHeight})
		cells = scalarCells(r.Heights, -4000, cfg.MaxTerrainHeight)
	case ModeTemperature:
		r := w.BatchQuery(locs, []world.DataType{world.DataTemperature})
		cells = scalarCells(r.Temperatures, cfg.PoleTemperature, cfg.EquatorTemperature)
	case ModePrecipitation:
		r := w.BatchQuery(locs, []world.DataType{world.DataPrecipitation})
		cells = scalarCells(r.Precipitations, 0, 4000)
	default:
		return "", fmt.Errorf("unknown map mode %q", mode)
	}

	var sb strings.Builder
	sb.Grow(height * (width + 1))
	for row := 0; row < height; row++ {
		sb.Write(cells[row*width : (row+1)*width])
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func scalarCells(values []float64, lo, hi float64) []byte {
	cells := make([]byte, len(values))
	for i, v := range values {
		t := (v - lo) / (hi - lo)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		idx := int(t * float64(len(ramp)-1))
		cells[i] = ramp[idx]
	}
	return cells
}
