package world

import "math"

const (
	solarConstant  = 1361.0 // W/m² at the top of the atmosphere
	maxInsolation  = 1400.0
	axialTiltDeg   = 23.44
	atmosphereTurb = 0.7 // per-airmass transmission factor
)

// SolarAngle returns the sun's elevation above the horizon in degrees at the
// given time of day. Negative values mean the sun is below the horizon.
func (w *World) SolarAngle(lon, lat, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.solarElevation(lon, lat, hour) / degToRad
}

// IsDaylight reports whether the sun is above the horizon.
func (w *World) IsDaylight(lon, lat, hour float64) bool {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.solarElevation(lon, lat, hour) > 0
}

// Insolation returns incoming solar power in W/m², attenuated by airmass and
// cloud cover. Zero whenever the sun is below the horizon.
func (w *World) Insolation(lon, lat, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.insolation(lon, lat, hour)
}

// solarElevation returns the sun's elevation in radians.
func (g *generation) solarElevation(lon, lat, hour float64) float64 {
	localSolarTime := wrap24(hour + lon/15)
	hourAngle := (localSolarTime - 12) * 15 * degToRad

	decl := axialTiltDeg * math.Cos(2*math.Pi*float64(g.cfg.DayOfYear-172)/365) * degToRad

	latRad := lat * degToRad
	sinElev := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(hourAngle)
	return math.Asin(clamp(sinElev, -1, 1))
}

func (g *generation) insolation(lon, lat, hour float64) float64 {
	elev := g.solarElevation(lon, lat, hour)
	if elev <= 0 {
		return 0
	}

	sinElev := math.Sin(elev)
	// Airmass diverges near the horizon; clamp before use.
	airmass := clamp(1/sinElev, 1, 10)

	power := solarConstant * sinElev * math.Pow(atmosphereTurb, airmass)
	power *= 1 - g.cloudDensity(lon, lat, hour)*0.7
	return clamp(power, 0, maxInsolation)
}
