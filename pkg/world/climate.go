package world

import (
	"math"

	"github.com/daver64/rworld/pkg/world/noise"
)

// PrecipitationType classifies falling precipitation by temperature.
type PrecipitationType int

const (
	PrecipNone PrecipitationType = iota
	PrecipRain
	PrecipSnow
	PrecipSleet
)

// PrecipitationName returns the display name for a precipitation type.
func PrecipitationName(p PrecipitationType) string {
	switch p {
	case PrecipNone:
		return "None"
	case PrecipRain:
		return "Rain"
	case PrecipSnow:
		return "Snow"
	case PrecipSleet:
		return "Sleet"
	default:
		return "Unknown"
	}
}

const (
	seaLevelPressure = 1013.25 // hPa
	scaleHeight      = 8500.0  // atmospheric scale height in meters

	stormGradientThreshold = 5.0 // hPa per degree

	tempVariationAmplitude = 5.0 // ±°C of local noise on the latitude model
)

// Temperature returns the air temperature in °C, combining the latitude
// model, the altitude lapse rate, and local noise variation.
func (w *World) Temperature(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.temperature(lon, lat, alt)
}

// TemperatureAtTime returns the air temperature in °C adjusted for solar
// heating during the day and radiative cooling at night. Cloud cover damps
// both, as does humidity.
func (w *World) TemperatureAtTime(lon, lat, alt, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.temperatureAtTime(lon, lat, alt, hour)
}

// Humidity returns relative humidity in [0,1].
func (w *World) Humidity(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.humidity(lon, lat, alt)
}

// Precipitation returns annual precipitation in mm/year, in [0,4000].
func (w *World) Precipitation(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.precipitation(lon, lat, alt)
}

// CurrentPrecipitation returns the instantaneous precipitation intensity in
// [0,1] at the given time of day; zero when it is not raining.
func (w *World) CurrentPrecipitation(lon, lat, alt, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.currentPrecipitation(lon, lat, alt, hour)
}

// PrecipitationType classifies precipitation at a location as rain, snow,
// sleet, or none.
func (w *World) PrecipitationType(lon, lat, alt float64) PrecipitationType {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.precipitationType(lon, lat, alt)
}

// AirPressure returns barometric pressure in hPa from the standard
// exponential altitude model. Longitude and latitude do not enter the
// altitude-only model; see PressureAtLocation for the weather-system term.
func (w *World) AirPressure(lon, lat, alt float64) float64 {
	_, _ = lon, lat
	return airPressure(alt)
}

// PressureAtLocation returns barometric pressure in hPa including the
// drifting weather-system term and the subtropical high-pressure belts.
func (w *World) PressureAtLocation(lon, lat, alt, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.pressureAtLocation(lon, lat, alt, hour)
}

// PressureGradient returns the magnitude of the horizontal pressure gradient
// in hPa per degree, from central differences at ±1°.
func (w *World) PressureGradient(lon, lat, alt, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.pressureGradient(lon, lat, alt, hour)
}

// IsStormFront reports whether the local pressure gradient exceeds the storm
// threshold.
func (w *World) IsStormFront(lon, lat, alt, hour float64) bool {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.pressureGradient(lon, lat, alt, hour) > stormGradientThreshold
}

// WindSpeed returns the prevailing wind speed in m/s from the latitude-band
// circulation model, modulated by noise and terrain roughness.
func (w *World) WindSpeed(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.windSpeed(lon, lat, alt)
}

// CurrentWindSpeed returns the wind speed in m/s including the transient
// weather factor at the given time of day.
func (w *World) CurrentWindSpeed(lon, lat, alt, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	x, y, z := geoToWorld(lon, lat)
	gust := 0.5 + g.weather.Sample01(x, y, z, hour)
	return g.windSpeed(lon, lat, alt) * gust
}

// WindDirection returns the prevailing wind bearing in degrees (0°=N, 90°=E;
// the direction the wind blows toward).
func (w *World) WindDirection(lon, lat, alt float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.windDirection(lon, lat, alt)
}

// CurrentWindDirection returns the wind bearing shifted by up to ±45° by the
// transient weather field.
func (w *World) CurrentWindDirection(lon, lat, alt, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	x, y, z := geoToWorld(lon, lat)
	shift := g.weather.Sample(x+517, y-293, z, hour) * 45
	return wrap360(g.windDirection(lon, lat, alt) + shift)
}

// CloudDensity returns cloud cover in [0,1] at the given time of day.
func (w *World) CloudDensity(lon, lat, hour float64) float64 {
	g := w.current()
	lon, lat = normalizeLonLat(lon, lat)
	return g.cloudDensity(lon, lat, hour)
}

func airPressure(alt float64) float64 {
	return seaLevelPressure * math.Exp(-alt/scaleHeight)
}

// baseTemperature is the latitude/altitude temperature model without noise.
func (g *generation) baseTemperature(lat, alt float64) float64 {
	latFactor := math.Abs(lat) / 90
	base := g.cfg.EquatorTemperature - (g.cfg.EquatorTemperature-g.cfg.PoleTemperature)*latFactor
	return base - alt/1000*g.cfg.TemperatureLapseRate
}

func (g *generation) temperature(lon, lat, alt float64) float64 {
	x, y, z := geoToWorld(lon, lat)
	variation := g.tempVar.Sample(x, y, z) * tempVariationAmplitude
	return g.baseTemperature(lat, alt) + variation
}

func (g *generation) temperatureAtTime(lon, lat, alt, hour float64) float64 {
	temp := g.temperature(lon, lat, alt)
	clouds := g.cloudDensity(lon, lat, hour)

	solar := g.insolation(lon, lat, hour) / 1000 * 10

	var night, cloudCooling float64
	if g.solarElevation(lon, lat, hour) <= 0 {
		// Clear nights radiate heat away faster than overcast ones.
		night = -5 - 10*(1-clouds)
	} else {
		cloudCooling = -clouds * 5
	}

	// Humid air damps the daily swing.
	damping := 0.5 + 0.5*g.humidity(lon, lat, alt)
	return temp + (solar+night+cloudCooling)*damping
}

// moisture is the raw moisture field in [0,1], wetter near the equator.
func (g *generation) moistureAt(lon, lat float64) float64 {
	x, y, z := geoToWorld(lon, lat)
	m := sample01(g.moisture, x, y, z)
	latFactor := 1 - math.Abs(lat)/90
	return clamp01(m*0.7 + latFactor*0.3)
}

func (g *generation) humidity(lon, lat, alt float64) float64 {
	m := g.moistureAt(lon, lat)
	temp := g.temperature(lon, lat, alt)

	// Cold air reads as more humid for the same absolute moisture.
	tempFactor := 1 - clamp((temp-10)/40, 0, 0.5)
	h := m * (0.5 + tempFactor)

	if alt > 3000 {
		h *= clamp(1-(alt-3000)/5000, 0.2, 1)
	}
	return clamp01(h)
}

func (g *generation) precipitation(lon, lat, alt float64) float64 {
	m := g.moistureAt(lon, lat)
	temp := g.temperature(lon, lat, alt)

	precip := m * 2000

	// Warmer air carries more moisture.
	precip *= clamp((temp+10)/40, 0.1, 1.5)

	// Orographic enhancement on mountain slopes; thin dry air high up.
	terrainHeight := g.terrainHeight(lon, lat, 1.0)
	if terrainHeight > 500 && terrainHeight < 3000 {
		precip *= 1.3
	} else if alt > 4000 {
		precip *= 0.5
	}

	return clamp(precip, 0, 4000)
}

func (g *generation) currentPrecipitation(lon, lat, alt, hour float64) float64 {
	x, y, z := geoToWorld(lon, lat)
	weather := g.weather.Sample01(x, y, z, hour)

	annual := g.precipitation(lon, lat, alt)
	rainProbability := clamp(annual/3000, 0, 0.8)

	if weather >= rainProbability+0.3 {
		return 0
	}
	return weather * weather
}

func (g *generation) precipitationType(lon, lat, alt float64) PrecipitationType {
	if g.precipitation(lon, lat, alt) < 100 {
		return PrecipNone
	}
	temp := g.temperature(lon, lat, alt)
	switch {
	case temp < -2:
		return PrecipSnow
	case temp < 2:
		return PrecipSleet
	default:
		return PrecipRain
	}
}

func (g *generation) pressureAtLocation(lon, lat, alt, hour float64) float64 {
	x, y, z := geoToWorld(lon, lat)
	weatherTerm := g.pressure.Sample(x, y, z, hour) * 25

	// cos(2·lat) peaks at the equator and ±90° and dips at ±45°, a crude
	// stand-in for the subtropical high-pressure belts.
	beltTerm := math.Cos(2*lat*degToRad) * 10

	return airPressure(alt) + weatherTerm + beltTerm
}

func (g *generation) pressureGradient(lon, lat, alt, hour float64) float64 {
	north := g.pressureAtLocation(lon, math.Min(lat+1, 90), alt, hour)
	south := g.pressureAtLocation(lon, math.Max(lat-1, -90), alt, hour)
	eastLon, _ := normalizeLonLat(lon+1, lat)
	westLon, _ := normalizeLonLat(lon-1, lat)
	east := g.pressureAtLocation(eastLon, lat, alt, hour)
	west := g.pressureAtLocation(westLon, lat, alt, hour)

	dLat := (north - south) / 2
	dLon := (east - west) / 2
	return math.Hypot(dLat, dLon)
}

// windBand returns the band base speed in m/s and base bearing in degrees
// for a latitude. Trade winds blow toward the southwest (northeast in the
// southern hemisphere mirrors to northwest-origin), westerlies toward the
// northeast, polar easterlies like the trades.
func windBand(lat float64) (speed, bearing float64) {
	latAbs := math.Abs(lat)
	northern := lat >= 0
	switch {
	case latAbs < 30: // trade winds
		speed = 5 + 3*latAbs/30
		if northern {
			bearing = 225
		} else {
			bearing = 315
		}
	case latAbs < 60: // westerlies
		speed = 7 + 5*(latAbs-30)/30
		if northern {
			bearing = 45
		} else {
			bearing = 135
		}
	default: // polar easterlies
		speed = 6 + 2*(latAbs-60)/30
		if northern {
			bearing = 225
		} else {
			bearing = 315
		}
	}
	return speed, bearing
}

func (g *generation) windSpeed(lon, lat, alt float64) float64 {
	base, _ := windBand(lat)

	x, y, z := geoToWorld(lon, lat)
	n := sample01(g.wind, x, y, z)

	// 60/40 blend: the noise term swings the band speed between 0.6x and 1.4x.
	speed := base*0.6 + base*0.8*n

	return speed * g.terrainRoughness(lon, lat, alt)
}

// terrainRoughness slows surface wind over hills and mountains; the drag
// fades out with altitude above the terrain.
func (g *generation) terrainRoughness(lon, lat, alt float64) float64 {
	h := g.terrainHeight(lon, lat, 1.0)
	rough := 1.0
	if h > 2000 {
		rough = 0.6
	} else if h > 500 {
		rough = 0.8
	}
	if relief := alt - h; relief > 0 {
		rough += (1 - rough) * clamp01(relief/2000)
	}
	return rough
}

func (g *generation) windDirection(lon, lat, alt float64) float64 {
	_, bearing := windBand(lat)

	x, y, z := geoToWorld(lon, lat)
	jitter := g.wind.Sample(x+131, y+171, z) * 60
	return wrap360(bearing + jitter)
}

func (g *generation) cloudDensity(lon, lat, hour float64) float64 {
	x, y, z := geoToWorld(lon, lat)

	// Advect the cloud texture with time like the weather field.
	n := noise.To01(g.cloud.Sample(x, y, z+hour*10))

	surfaceAlt := math.Max(g.terrainHeight(lon, lat, 1.0), 0)
	humidity := g.humidity(lon, lat, surfaceAlt)
	precip := g.precipitation(lon, lat, surfaceAlt)

	c := n*0.8 + humidity*0.2
	c = c*0.6 + clamp01(precip/2500)*0.4

	temp := g.temperature(lon, lat, surfaceAlt)
	switch {
	case temp < -10:
		c *= 0.5
	case temp > 25:
		c *= 1.2
	}
	return clamp01(c)
}
