package world

import "math"

const (
	riverFlowThreshold = 0.4
	neighborStepDeg    = 0.1 // sampling offset for gradient estimation
	maxRiverWidth      = 500.0
)

// FlowAccumulation returns a normalized [0,1] proxy for upstream drainage at
// a point, derived from the local terrain gradient, precipitation, and a
// dedicated river channel field. Zero in the ocean.
func (w *World) FlowAccumulation(lon, lat float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.flowAccumulation(lon, lat)
}

// IsRiver reports whether a river channel runs through the location.
func (w *World) IsRiver(lon, lat float64) bool {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.flowAccumulation(lon, lat) > riverFlowThreshold
}

// RiverWidth returns the river width in meters, zero if no river is present.
func (w *World) RiverWidth(lon, lat float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.riverWidth(lon, lat)
}

func (g *generation) flowAccumulation(lon, lat float64) float64 {
	center := g.terrainHeight(lon, lat, 1.0)
	if center < g.cfg.SeaLevel {
		return 0
	}

	north := g.terrainHeight(lon, lat+neighborStepDeg, 1.0)
	south := g.terrainHeight(lon, lat-neighborStepDeg, 1.0)
	east := g.terrainHeight(lon+neighborStepDeg, lat, 1.0)
	west := g.terrainHeight(lon-neighborStepDeg, lat, 1.0)

	// Valleys sit below their surroundings and collect water.
	avgNeighbor := (north + south + east + west) / 4
	valley := clamp01((avgNeighbor - center) / 50)

	gradient := math.Hypot((east-west)/2, (north-south)/2)
	gradientFactor := clamp(gradient/500, 0.2, 1.5)

	surfaceAlt := math.Max(center, 0)
	precipFactor := clamp(g.precipitation(lon, lat, surfaceAlt)/1500, 0.1, 1.5)

	x, y, z := geoToWorld(lon, lat)
	channel := sample01(g.river, x, y, z)
	channel *= channel

	flow := (0.4*valley + 0.25*precipFactor + 0.35*channel) * gradientFactor

	// Rivers concentrate in lowlands and thin out on high plateaus.
	switch {
	case center < 100:
		flow *= 2.0
	case center < 500:
		flow *= 1.3
	case center > 3000:
		flow *= 0.4
	}
	return clamp01(flow)
}

func (g *generation) riverWidth(lon, lat float64) float64 {
	flow := g.flowAccumulation(lon, lat)
	if flow <= riverFlowThreshold {
		return 0
	}

	center := g.terrainHeight(lon, lat, 1.0)
	surfaceAlt := math.Max(center, 0)
	precipFactor := clamp(g.precipitation(lon, lat, surfaceAlt)/1500, 0.1, 1.5)

	// Rivers widen up to 5x as they approach sea level.
	elevationFactor := 1 + 4*clamp01((500-center)/500)

	strength := (flow - riverFlowThreshold) / (1 - riverFlowThreshold)
	width := 5 + strength*strength*40*elevationFactor*precipFactor
	return clamp(width, 0, maxRiverWidth)
}
