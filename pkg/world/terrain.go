package world

import (
	"math"

	"github.com/daver64/rworld/pkg/world/noise"
)

const (
	oceanFloorDepth = 4000.0 // meters below sea level at shaped value -1

	// Volcano overlay tuning.
	volcanoCellThreshold = 0.2    // cellular value below this is inside a cone
	volcanoConeHeight    = 3000.0 // peak cone height before preference scaling
	craterRimFactor      = 0.85   // distance factor above which the crater dips
	craterMaxDip         = 0.4    // crater reduces cone height by up to 40%

	// Level-of-detail blending.
	detailMaxOctaves = 3
	detailAmplitude  = 0.3
)

// TerrainHeight returns the terrain elevation in meters at base detail.
// Negative values are below sea level.
func (w *World) TerrainHeight(lon, lat float64) float64 {
	return w.current().terrainHeight(lon, lat, 1.0)
}

// TerrainHeightDetail returns the terrain elevation with extra noise octaves
// blended in for close-up sampling. detail must be >= 1; higher values add up
// to three octaves of fine structure.
func (w *World) TerrainHeightDetail(lon, lat, detail float64) float64 {
	return w.current().terrainHeight(lon, lat, detail)
}

// IsVolcano reports whether the location sits inside a volcano cone on land.
func (w *World) IsVolcano(lon, lat float64) bool {
	return w.current().isVolcano(lon, lat)
}

func (g *generation) terrainHeight(lon, lat, detail float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	x, y, z := geoToWorld(lon, lat)

	n := g.terrain.Sample(x, y, z)

	// Extra detail octaves are blended into the raw noise before shaping so
	// zoomed-in terrain keeps the same coastlines.
	if detail > 1.0 {
		extraOctaves := int(math.Log2(detail))
		if extraOctaves > detailMaxOctaves {
			extraOctaves = detailMaxOctaves
		}
		if extraOctaves > 0 {
			amp := detailAmplitude
			freqMul := 2.0
			extra := 0.0
			for i := 0; i < extraOctaves; i++ {
				extra += g.terrain.SampleOctave(x, y, z, freqMul) * amp
				amp *= 0.5
				freqMul *= 2
			}
			weight := math.Min(1, (detail-1)/4)
			n += extra * weight
		}
	}

	base := shapeAndMapHeight(n, g.cfg.MaxTerrainHeight)
	if base > g.cfg.SeaLevel {
		base += g.volcanoCone(x, y, z, base)
	}
	return base
}

// shapeAndMapHeight applies the continent-shaping power curve and maps the
// shaped noise onto meters. Negative noise falls off steeply into ocean
// basins; positive noise rises gently with occasional peaks.
func shapeAndMapHeight(n, maxHeight float64) float64 {
	if n < 0 {
		s := n * n
		s = -(s * s)
		return s * oceanFloorDepth
	}
	return math.Pow(n, 0.7) * maxHeight
}

// volcanoCone returns the height contribution of the volcano overlay at a
// land point, zero outside cones.
func (g *generation) volcanoCone(x, y, z, baseHeight float64) float64 {
	cell := g.volcano.Sample(x, y, z)
	if cell >= volcanoCellThreshold {
		return 0
	}

	distanceFactor := 1 - cell/volcanoCellThreshold

	// Volcanoes prefer already-elevated terrain; lowland cones stay small.
	elevationPreference := clamp((baseHeight-300)/1500, 0.2, 1.0)
	cone := distanceFactor * distanceFactor * distanceFactor * volcanoConeHeight * elevationPreference

	// Crater dip near the center of the cone.
	if distanceFactor > craterRimFactor {
		craterDepth := (distanceFactor - craterRimFactor) / (1 - craterRimFactor)
		cone *= 1 - craterDepth*craterMaxDip
	}
	return cone
}

func (g *generation) isVolcano(lon, lat float64) bool {
	lon, lat = normalizeLonLat(lon, lat)
	x, y, z := geoToWorld(lon, lat)

	base := shapeAndMapHeight(g.terrain.Sample(x, y, z), g.cfg.MaxTerrainHeight)
	if base <= g.cfg.SeaLevel {
		return false
	}
	return g.volcano.Sample(x, y, z) < volcanoCellThreshold
}

// sample01 is a shorthand for sampling a fractal field remapped to [0,1].
func sample01(f *noise.Fractal, x, y, z float64) float64 {
	return noise.To01(f.Sample(x, y, z))
}
