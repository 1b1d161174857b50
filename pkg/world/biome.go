package world

// BiomeType identifies a biome produced by the classifier.
type BiomeType int

const (
	// Cold biomes.
	BiomeTundra BiomeType = iota
	BiomeTaiga

	// Temperate biomes.
	BiomeGrassland
	BiomeTemperateDeciduousForest
	BiomeTemperateRainforest

	// Warm/hot biomes.
	BiomeSavanna
	BiomeTropicalSeasonalForest
	BiomeTropicalRainforest

	// Dry biomes.
	BiomeColdDesert
	BiomeDesert

	// Special biomes.
	BiomeOcean
	BiomeDeepOcean
	BiomeBeach
	BiomeSnow
	BiomeIce

	// Mountain variants.
	BiomeMountainTundra
	BiomeMountainForest
	BiomeMountainPeak
)

// BiomeName returns the display name for a biome.
func BiomeName(b BiomeType) string {
	switch b {
	case BiomeTundra:
		return "Tundra"
	case BiomeTaiga:
		return "Taiga"
	case BiomeGrassland:
		return "Grassland"
	case BiomeTemperateDeciduousForest:
		return "Temperate Deciduous Forest"
	case BiomeTemperateRainforest:
		return "Temperate Rainforest"
	case BiomeSavanna:
		return "Savanna"
	case BiomeTropicalSeasonalForest:
		return "Tropical Seasonal Forest"
	case BiomeTropicalRainforest:
		return "Tropical Rainforest"
	case BiomeColdDesert:
		return "Cold Desert"
	case BiomeDesert:
		return "Desert"
	case BiomeOcean:
		return "Ocean"
	case BiomeDeepOcean:
		return "Deep Ocean"
	case BiomeBeach:
		return "Beach"
	case BiomeSnow:
		return "Snow"
	case BiomeIce:
		return "Ice"
	case BiomeMountainTundra:
		return "Mountain Tundra"
	case BiomeMountainForest:
		return "Mountain Forest"
	case BiomeMountainPeak:
		return "Mountain Peak"
	default:
		return "Unknown"
	}
}

// Biome classifies the location. Pass the terrain height as altitude when
// standing on the surface; higher altitudes shift into the mountain biomes.
func (w *World) Biome(lon, lat, alt float64) BiomeType {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.classifyBiome(lon, lat, alt)
}

func (g *generation) classifyBiome(lon, lat, alt float64) BiomeType {
	terrainHeight := g.terrainHeight(lon, lat, 1.0)

	// Ocean biomes.
	if terrainHeight < g.cfg.SeaLevel {
		if terrainHeight < -1000 {
			return BiomeDeepOcean
		}
		return BiomeOcean
	}

	// Beach transition band.
	if terrainHeight < 5 {
		return BiomeBeach
	}

	temp := g.temperature(lon, lat, alt)
	moisture := g.moistureAt(lon, lat)

	// Permanent snow and ice.
	if temp < -15 {
		if terrainHeight < 100 {
			return BiomeIce
		}
		return BiomeSnow
	}

	// High mountain biomes.
	if alt > 4000 {
		return BiomeMountainPeak
	}
	if alt > 2500 {
		if temp < 0 {
			return BiomeMountainTundra
		}
		return BiomeMountainForest
	}

	return whittaker(temp, moisture)
}

// whittaker maps temperature and moisture to a biome.
//
//	Temp\Moisture | Dry          | Medium              | Wet
//	< 0°C         | Cold Desert  | Tundra              | Tundra
//	0–10°C        | Cold Desert  | Grassland           | Taiga
//	10–20°C       | Grassland    | Deciduous Forest    | Temperate Rainforest
//	> 20°C        | Desert       | Savanna/Seasonal    | Tropical Rainforest
func whittaker(temp, moisture float64) BiomeType {
	switch {
	case temp < 0:
		if moisture < 0.3 {
			return BiomeColdDesert
		}
		return BiomeTundra
	case temp < 10:
		switch {
		case moisture < 0.3:
			return BiomeColdDesert
		case moisture < 0.6:
			return BiomeGrassland
		default:
			return BiomeTaiga
		}
	case temp < 20:
		switch {
		case moisture < 0.3:
			return BiomeGrassland
		case moisture < 0.6:
			return BiomeTemperateDeciduousForest
		default:
			return BiomeTemperateRainforest
		}
	default:
		switch {
		case moisture < 0.2:
			return BiomeDesert
		case moisture < 0.5:
			return BiomeSavanna
		case moisture < 0.7:
			return BiomeTropicalSeasonalForest
		default:
			return BiomeTropicalRainforest
		}
	}
}
