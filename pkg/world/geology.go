package world

import "math"

// Deposit concentrations combine a suitability field with an elevation window
// and secondary factors, shaped by an exponent that controls rarity.

// CoalDeposit returns the coal concentration in [0,1]. Coal favors low to
// mid elevations, wet climates, and the former-forest latitudes.
func (w *World) CoalDeposit(lon, lat float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.coalDeposit(lon, lat)
}

// IronDeposit returns the iron concentration in [0,1]. Iron follows ridged
// vein structures with a bonus near volcanoes.
func (w *World) IronDeposit(lon, lat float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.ironDeposit(lon, lat)
}

// OilDeposit returns the oil concentration in [0,1]. Oil pools in cellular
// basin structures at low elevations, including shallow offshore shelves.
func (w *World) OilDeposit(lon, lat float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.oilDeposit(lon, lat)
}

func (g *generation) coalDeposit(lon, lat float64) float64 {
	h := g.terrainHeight(lon, lat, 1.0)
	if h < g.cfg.SeaLevel || h > 2000 {
		return 0
	}

	x, y, z := geoToWorld(lon, lat)
	suitability := sample01(g.coal, x, y, z)

	// Plateau up to 1000m, declining to zero by 2000m.
	elevFactor := 1.0
	if h > 1000 {
		elevFactor = 1 - (h-1000)/1000
	}

	surfaceAlt := math.Max(h, 0)
	precipFactor := clamp(g.precipitation(lon, lat, surfaceAlt)/2000, 0.2, 1)

	// Carboniferous-style swamp forests concentrated in the 20–60° belt.
	latAbs := math.Abs(lat)
	outside := math.Max(0, math.Max(20-latAbs, latAbs-60))
	latFactor := 0.4 + 0.6*clamp01(1-outside/20)

	coal := math.Pow(suitability, 0.7) * elevFactor * precipFactor * latFactor * 1.3
	return clamp01(coal)
}

func (g *generation) ironDeposit(lon, lat float64) float64 {
	h := g.terrainHeight(lon, lat, 1.0)
	if h < g.cfg.SeaLevel {
		return 0
	}

	x, y, z := geoToWorld(lon, lat)
	vein := g.iron.Sample(x, y, z)
	vein *= vein

	elevFactor := 1.0
	if h > 1000 {
		elevFactor = clamp(1-(h-1000)/3000, 0.3, 1)
	}

	iron := vein * elevFactor
	if g.volcano.Sample(x, y, z) < volcanoCellThreshold {
		iron += 0.25
	}
	return clamp01(iron * 0.8)
}

func (g *generation) oilDeposit(lon, lat float64) float64 {
	h := g.terrainHeight(lon, lat, 1.0)
	if h < -200 || h > 1500 {
		return 0
	}

	x, y, z := geoToWorld(lon, lat)
	basin := 1 - g.oil.Sample(x, y, z) // high inside basin blobs

	// Sedimentary window: shallow offshore shelves and coastal strips are
	// reduced, 100–800m is ideal, declining to zero by 1500m.
	var elevFactor float64
	switch {
	case h < 0:
		elevFactor = 0.8
	case h < 100:
		elevFactor = 0.6
	case h <= 800:
		elevFactor = 1.0
	default:
		elevFactor = 1 - (h-800)/700
	}

	oil := math.Pow(basin, 1.3) * elevFactor * 1.2
	return clamp01(oil)
}
