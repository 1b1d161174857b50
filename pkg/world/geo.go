package world

import "math"

// sphereRadius is the radius of the sampling sphere the globe is projected
// onto. Sampling noise on the sphere surface keeps every field seamless
// across the ±180° meridian and at the poles.
const sphereRadius = 1000.0

const degToRad = math.Pi / 180

// normalizeLonLat wraps longitude into [-180,180) and clamps latitude to
// [-90,90]. Out-of-domain angles never fail; they produce edge-clamped
// results.
func normalizeLonLat(lon, lat float64) (float64, float64) {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	lon -= 180
	if lat > 90 {
		lat = 90
	} else if lat < -90 {
		lat = -90
	}
	return lon, lat
}

// geoToWorld projects geographic coordinates onto the sampling sphere.
func geoToWorld(lon, lat float64) (x, y, z float64) {
	lonRad := lon * degToRad
	latRad := lat * degToRad
	x = sphereRadius * math.Cos(latRad) * math.Cos(lonRad)
	y = sphereRadius * math.Cos(latRad) * math.Sin(lonRad)
	z = sphereRadius * math.Sin(latRad)
	return x, y, z
}

// wrap24 wraps a time-of-day value into [0,24).
func wrap24(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// wrap360 wraps a compass bearing into [0,360).
func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// clamp limits v to [lo,hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 limits v to [0,1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
