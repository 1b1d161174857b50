package world

// SoilType identifies a soil classification.
type SoilType int

const (
	SoilNone SoilType = iota // underwater or bare rock faces
	SoilPermafrost
	SoilPeat
	SoilRocky
	SoilSand
	SoilLoam
	SoilClay
	SoilSilt
)

// SoilName returns the display name for a soil type.
func SoilName(s SoilType) string {
	switch s {
	case SoilNone:
		return "None"
	case SoilPermafrost:
		return "Permafrost"
	case SoilPeat:
		return "Peat"
	case SoilRocky:
		return "Rocky"
	case SoilSand:
		return "Sand"
	case SoilLoam:
		return "Loam"
	case SoilClay:
		return "Clay"
	case SoilSilt:
		return "Silt"
	default:
		return "Unknown"
	}
}

// soilProfile holds the base chemistry for a soil type before climate
// modulation.
type soilProfile struct {
	fertility float64 // [0,1]
	ph        float64 // [4,9]
	organic   float64 // [0,1]
}

var soilProfiles = map[SoilType]soilProfile{
	SoilNone:       {0, 7.0, 0},
	SoilPermafrost: {0.1, 5.5, 0.3},
	SoilPeat:       {0.5, 4.5, 0.9},
	SoilRocky:      {0.15, 6.5, 0.05},
	SoilSand:       {0.25, 6.8, 0.1},
	SoilLoam:       {0.9, 6.5, 0.5},
	SoilClay:       {0.6, 7.5, 0.3},
	SoilSilt:       {0.75, 7.0, 0.4},
}

// SoilType classifies the soil at a location.
func (w *World) SoilType(lon, lat, alt float64) SoilType {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.soilType(lon, lat, alt)
}

// SoilFertility returns soil fertility in [0,1].
func (w *World) SoilFertility(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	f, _, _ := g.soilProperties(lon, lat, alt)
	return f
}

// SoilPH returns soil pH in [4,9].
func (w *World) SoilPH(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	_, ph, _ := g.soilProperties(lon, lat, alt)
	return ph
}

// SoilOrganicMatter returns the soil organic fraction in [0,1].
func (w *World) SoilOrganicMatter(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	_, _, om := g.soilProperties(lon, lat, alt)
	return om
}

func (g *generation) soilType(lon, lat, alt float64) SoilType {
	if alt < 0 {
		return SoilNone
	}
	if alt > 5000 {
		return SoilRocky
	}

	biome := g.classifyBiome(lon, lat, alt)
	if biome == BiomeOcean || biome == BiomeDeepOcean {
		return SoilNone
	}
	temp := g.temperature(lon, lat, alt)
	precip := g.precipitation(lon, lat, alt)

	switch {
	case biome == BiomeIce || biome == BiomeSnow || biome == BiomeMountainPeak || temp < -5:
		return SoilPermafrost
	case precip > 2000 && alt < 100:
		return SoilPeat
	case alt > 3000 || biome == BiomeMountainTundra:
		return SoilRocky
	case biome == BiomeDesert || biome == BiomeColdDesert || biome == BiomeBeach:
		return SoilSand
	case (biome == BiomeGrassland || biome == BiomeSavanna) && precip > 500 && precip < 1500:
		return SoilLoam
	case precip > 1200 && temp > 5 && temp < 25:
		return SoilClay
	case precip > 600 && precip <= 1200:
		return SoilSilt
	default:
		return SoilSand
	}
}

// soilProperties derives fertility, pH, and organic matter from the soil's
// base profile plus vegetation, decomposition, leaching, and erosion.
func (g *generation) soilProperties(lon, lat, alt float64) (fertility, ph, organic float64) {
	soil := g.soilType(lon, lat, alt)
	profile := soilProfiles[soil]
	if soil == SoilNone {
		return profile.fertility, profile.ph, profile.organic
	}

	veg := g.vegetationDensity(lon, lat, alt)
	temp := g.temperature(lon, lat, alt)
	precip := g.precipitation(lon, lat, alt)

	// Warmth speeds decomposition: nutrients release faster but organic
	// matter burns off.
	decomposition := clamp((temp+10)/30, 0.3, 1.3)

	// Heavy rainfall leaches nutrients out of the topsoil.
	leaching := 1.0
	if precip > 1500 {
		leaching = clamp(1-(precip-1500)/3000, 0.6, 1)
	}

	erosion := clamp(1-alt/6000, 0.4, 1)

	fertility = clamp01(profile.fertility * (0.8 + 0.4*veg) * leaching * erosion)
	ph = clamp(profile.ph-precip/4000*1.5+(1-veg)*0.3, 4, 9)
	organic = clamp01(profile.organic * (0.6 + 0.8*veg) * clamp(1.4-0.4*decomposition, 0.5, 1.2) * erosion)
	return fertility, ph, organic
}
