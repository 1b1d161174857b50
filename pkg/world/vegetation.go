package world

// vegetationBase is the per-biome baseline density before climate modulation.
var vegetationBase = map[BiomeType]float64{
	BiomeOcean:                    0,
	BiomeDeepOcean:                0,
	BiomeIce:                      0,
	BiomeMountainPeak:             0,
	BiomeSnow:                     0.05,
	BiomeDesert:                   0.05,
	BiomeBeach:                    0.1,
	BiomeColdDesert:               0.1,
	BiomeTundra:                   0.15,
	BiomeMountainTundra:           0.2,
	BiomeSavanna:                  0.5,
	BiomeGrassland:                0.6,
	BiomeMountainForest:           0.6,
	BiomeTaiga:                    0.7,
	BiomeTemperateDeciduousForest: 0.8,
	BiomeTropicalSeasonalForest:   0.85,
	BiomeTemperateRainforest:      0.9,
	BiomeTropicalRainforest:       1.0,
}

// VegetationDensity returns plant cover in [0,1], from the biome baseline
// modulated by precipitation, temperature, altitude, and local noise.
func (w *World) VegetationDensity(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.vegetationDensity(lon, lat, alt)
}

func (g *generation) vegetationDensity(lon, lat, alt float64) float64 {
	base := vegetationBase[g.classifyBiome(lon, lat, alt)]
	if base == 0 {
		return 0
	}

	precipFactor := clamp(g.precipitation(lon, lat, alt)/1500, 0.3, 1.2)

	temp := g.temperature(lon, lat, alt)
	tempFactor := 1.0
	if temp < 0 {
		tempFactor = clamp(1+temp/20, 0.1, 1)
	} else if temp > 35 {
		tempFactor = clamp(1-(temp-35)/20, 0.3, 1)
	}

	altFactor := 1.0
	if alt > 3000 {
		altFactor = 0.3
	} else if alt > 2000 {
		altFactor = 1 - (alt-2000)/1000*0.7
	}

	x, y, z := geoToWorld(lon, lat)
	jitter := 1 + g.tempVar.Sample(x+977, y+409, z)*0.15

	return clamp01(base * precipFactor * tempFactor * altFactor * jitter)
}
