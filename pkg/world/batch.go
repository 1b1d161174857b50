package world

import (
	"math"
	"runtime"
	"sync"
)

// Location is one query point for the batch engine. Altitude 0 means "derive
// from terrain" (clamped to sea level for ocean points). CurrentTime is the
// time of day in hours for transient quantities. DetailLevel below 1 is
// treated as 1.
type Location struct {
	Longitude   float64
	Latitude    float64
	Altitude    float64
	CurrentTime float64
	DetailLevel float64
}

// DataType selects which quantity a batch query evaluates per location.
type DataType int

const (
	DataTerrainHeight DataType = iota
	DataTemperature
	DataTemperatureAtTime
	DataPrecipitation
	DataCurrentPrecipitation
	DataPrecipitationType
	DataHumidity
	DataAirPressure
	DataPressureAtLocation
	DataPressureGradient
	DataIsStormFront
	DataWindSpeed
	DataCurrentWindSpeed
	DataWindDirection
	DataCurrentWindDirection
	DataCloudDensity
	DataBiome
	DataSoilType
	DataSoilFertility
	DataSoilPH
	DataSoilOrganicMatter
	DataVegetationDensity
	DataFlowAccumulation
	DataIsRiver
	DataRiverWidth
	DataIsVolcano
	DataCoalDeposit
	DataIronDeposit
	DataOilDeposit
	DataInsolation
	DataIsDaylight
	DataSolarAngle
)

// channelID identifies an output sequence in BatchResult. Several DataTypes
// share a channel (see BatchResult).
type channelID int

const (
	chHeight channelID = iota
	chTemperature
	chPrecipitation
	chPrecipType
	chHumidity
	chPressure
	chPressureGradient
	chStorm
	chWindSpeed
	chWindDirection
	chCloud
	chBiome
	chSoilType
	chFertility
	chPH
	chOrganic
	chVegetation
	chFlow
	chRiver
	chRiverWidth
	chVolcano
	chCoal
	chIron
	chOil
	chInsolation
	chDaylight
	chSolarAngle
	channelCount
)

// channel returns the output channel a DataType writes to.
func (d DataType) channel() channelID {
	switch d {
	case DataTerrainHeight:
		return chHeight
	case DataTemperature, DataTemperatureAtTime:
		return chTemperature
	case DataPrecipitation, DataCurrentPrecipitation:
		return chPrecipitation
	case DataPrecipitationType:
		return chPrecipType
	case DataHumidity:
		return chHumidity
	case DataAirPressure, DataPressureAtLocation:
		return chPressure
	case DataPressureGradient:
		return chPressureGradient
	case DataIsStormFront:
		return chStorm
	case DataWindSpeed, DataCurrentWindSpeed:
		return chWindSpeed
	case DataWindDirection, DataCurrentWindDirection:
		return chWindDirection
	case DataCloudDensity:
		return chCloud
	case DataBiome:
		return chBiome
	case DataSoilType:
		return chSoilType
	case DataSoilFertility:
		return chFertility
	case DataSoilPH:
		return chPH
	case DataSoilOrganicMatter:
		return chOrganic
	case DataVegetationDensity:
		return chVegetation
	case DataFlowAccumulation:
		return chFlow
	case DataIsRiver:
		return chRiver
	case DataRiverWidth:
		return chRiverWidth
	case DataIsVolcano:
		return chVolcano
	case DataCoalDeposit:
		return chCoal
	case DataIronDeposit:
		return chIron
	case DataOilDeposit:
		return chOil
	case DataInsolation:
		return chInsolation
	case DataIsDaylight:
		return chDaylight
	case DataSolarAngle:
		return chSolarAngle
	default:
		return chHeight
	}
}

// BatchResult carries one output sequence per distinct output channel,
// populated only for channels actually requested. Entries are in input
// order, one per location per requested DataType mapping to the channel.
//
// Known ambiguity, preserved deliberately: aliased DataTypes share a channel
// (Temperature/TemperatureAtTime, Precipitation/CurrentPrecipitation,
// WindSpeed/CurrentWindSpeed, WindDirection/CurrentWindDirection,
// AirPressure/PressureAtLocation). Requesting both aliases of one channel in
// the same batch interleaves their results per location in requested-type
// order; the entries are indistinguishable by position alone.
type BatchResult struct {
	Count int // number of input locations

	Heights             []float64
	Temperatures        []float64
	Precipitations      []float64
	PrecipitationTypes  []PrecipitationType
	Humidities          []float64
	Pressures           []float64
	PressureGradients   []float64
	StormFronts         []bool
	WindSpeeds          []float64
	WindDirections      []float64
	CloudDensities      []float64
	Biomes              []BiomeType
	SoilTypes           []SoilType
	SoilFertilities     []float64
	SoilPHs             []float64
	SoilOrganicMatters  []float64
	VegetationDensities []float64
	FlowAccumulations   []float64
	Rivers              []bool
	RiverWidths         []float64
	Volcanoes           []bool
	CoalDeposits        []float64
	IronDeposits        []float64
	OilDeposits         []float64
	Insolations         []float64
	Daylights           []bool
	SolarAngles         []float64
}

// BatchQuery evaluates every requested DataType at every location. Results
// match what the corresponding individual calls would return, in
// location-major, then-type order. Terrain height is computed at most once
// per location no matter how many requested types need it.
//
// Empty locations or types yield an empty, well-formed result.
func (w *World) BatchQuery(locations []Location, types []DataType) BatchResult {
	g := w.current()

	result := BatchResult{Count: len(locations)}
	if len(locations) == 0 || len(types) == 0 {
		return result
	}

	// Entries per channel per location depend only on the requested types,
	// so every channel slice can be sized up front and each location writes
	// into its own disjoint slots. That keeps the fan-out below race-free
	// and the output order independent of scheduling.
	var perLoc [channelCount]int
	for _, t := range types {
		perLoc[t.channel()]++
	}
	result.alloc(perLoc, len(locations))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(locations) {
		workers = len(locations)
	}

	var wg sync.WaitGroup
	for wk := 0; wk < workers; wk++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(locations); i += workers {
				evalLocation(g, locations[i], types, &result, perLoc, i)
			}
		}(wk)
	}
	wg.Wait()

	return result
}

func (r *BatchResult) alloc(perLoc [channelCount]int, n int) {
	size := func(ch channelID) int { return perLoc[ch] * n }

	if s := size(chHeight); s > 0 {
		r.Heights = make([]float64, s)
	}
	if s := size(chTemperature); s > 0 {
		r.Temperatures = make([]float64, s)
	}
	if s := size(chPrecipitation); s > 0 {
		r.Precipitations = make([]float64, s)
	}
	if s := size(chPrecipType); s > 0 {
		r.PrecipitationTypes = make([]PrecipitationType, s)
	}
	if s := size(chHumidity); s > 0 {
		r.Humidities = make([]float64, s)
	}
	if s := size(chPressure); s > 0 {
		r.Pressures = make([]float64, s)
	}
	if s := size(chPressureGradient); s > 0 {
		r.PressureGradients = make([]float64, s)
	}
	if s := size(chStorm); s > 0 {
		r.StormFronts = make([]bool, s)
	}
	if s := size(chWindSpeed); s > 0 {
		r.WindSpeeds = make([]float64, s)
	}
	if s := size(chWindDirection); s > 0 {
		r.WindDirections = make([]float64, s)
	}
	if s := size(chCloud); s > 0 {
		r.CloudDensities = make([]float64, s)
	}
	if s := size(chBiome); s > 0 {
		r.Biomes = make([]BiomeType, s)
	}
	if s := size(chSoilType); s > 0 {
		r.SoilTypes = make([]SoilType, s)
	}
	if s := size(chFertility); s > 0 {
		r.SoilFertilities = make([]float64, s)
	}
	if s := size(chPH); s > 0 {
		r.SoilPHs = make([]float64, s)
	}
	if s := size(chOrganic); s > 0 {
		r.SoilOrganicMatters = make([]float64, s)
	}
	if s := size(chVegetation); s > 0 {
		r.VegetationDensities = make([]float64, s)
	}
	if s := size(chFlow); s > 0 {
		r.FlowAccumulations = make([]float64, s)
	}
	if s := size(chRiver); s > 0 {
		r.Rivers = make([]bool, s)
	}
	if s := size(chRiverWidth); s > 0 {
		r.RiverWidths = make([]float64, s)
	}
	if s := size(chVolcano); s > 0 {
		r.Volcanoes = make([]bool, s)
	}
	if s := size(chCoal); s > 0 {
		r.CoalDeposits = make([]float64, s)
	}
	if s := size(chIron); s > 0 {
		r.IronDeposits = make([]float64, s)
	}
	if s := size(chOil); s > 0 {
		r.OilDeposits = make([]float64, s)
	}
	if s := size(chInsolation); s > 0 {
		r.Insolations = make([]float64, s)
	}
	if s := size(chDaylight); s > 0 {
		r.Daylights = make([]bool, s)
	}
	if s := size(chSolarAngle); s > 0 {
		r.SolarAngles = make([]float64, s)
	}
}

// locEval evaluates one location, memoizing the terrain height so repeated
// consumers (the altitude fallback, the height channel) share one sample.
type locEval struct {
	g       *generation
	lon     float64
	lat     float64
	rawAlt  float64
	hour    float64
	detail  float64
	height  float64
	haveHgt bool
}

func (e *locEval) terrainHeight() float64 {
	if !e.haveHgt {
		e.height = e.g.terrainHeight(e.lon, e.lat, e.detail)
		e.haveHgt = true
	}
	return e.height
}

// altitude resolves the effective altitude: explicit when given, otherwise
// the terrain surface (clamped to sea level over the ocean).
func (e *locEval) altitude() float64 {
	if e.rawAlt != 0 {
		return e.rawAlt
	}
	return math.Max(e.terrainHeight(), 0)
}

func evalLocation(g *generation, loc Location, types []DataType, r *BatchResult, perLoc [channelCount]int, idx int) {
	lon, lat := normalizeLonLat(loc.Longitude, loc.Latitude)
	detail := loc.DetailLevel
	if detail < 1 {
		detail = 1
	}
	e := &locEval{
		g:      g,
		lon:    lon,
		lat:    lat,
		rawAlt: loc.Altitude,
		hour:   loc.CurrentTime,
		detail: detail,
	}

	// cursors[ch] walks this location's slots within each channel.
	var cursors [channelCount]int
	slot := func(ch channelID) int {
		s := idx*perLoc[ch] + cursors[ch]
		cursors[ch]++
		return s
	}

	for _, t := range types {
		switch t {
		case DataTerrainHeight:
			r.Heights[slot(chHeight)] = e.terrainHeight()
		case DataTemperature:
			r.Temperatures[slot(chTemperature)] = g.temperature(lon, lat, e.altitude())
		case DataTemperatureAtTime:
			r.Temperatures[slot(chTemperature)] = g.temperatureAtTime(lon, lat, e.altitude(), e.hour)
		case DataPrecipitation:
			r.Precipitations[slot(chPrecipitation)] = g.precipitation(lon, lat, e.altitude())
		case DataCurrentPrecipitation:
			r.Precipitations[slot(chPrecipitation)] = g.currentPrecipitation(lon, lat, e.altitude(), e.hour)
		case DataPrecipitationType:
			r.PrecipitationTypes[slot(chPrecipType)] = g.precipitationType(lon, lat, e.altitude())
		case DataHumidity:
			r.Humidities[slot(chHumidity)] = g.humidity(lon, lat, e.altitude())
		case DataAirPressure:
			r.Pressures[slot(chPressure)] = airPressure(e.altitude())
		case DataPressureAtLocation:
			r.Pressures[slot(chPressure)] = g.pressureAtLocation(lon, lat, e.altitude(), e.hour)
		case DataPressureGradient:
			r.PressureGradients[slot(chPressureGradient)] = g.pressureGradient(lon, lat, e.altitude(), e.hour)
		case DataIsStormFront:
			r.StormFronts[slot(chStorm)] = g.pressureGradient(lon, lat, e.altitude(), e.hour) > stormGradientThreshold
		case DataWindSpeed:
			r.WindSpeeds[slot(chWindSpeed)] = g.windSpeed(lon, lat, e.altitude())
		case DataCurrentWindSpeed:
			x, y, z := geoToWorld(lon, lat)
			gust := 0.5 + g.weather.Sample01(x, y, z, e.hour)
			r.WindSpeeds[slot(chWindSpeed)] = g.windSpeed(lon, lat, e.altitude()) * gust
		case DataWindDirection:
			r.WindDirections[slot(chWindDirection)] = g.windDirection(lon, lat, e.altitude())
		case DataCurrentWindDirection:
			x, y, z := geoToWorld(lon, lat)
			shift := g.weather.Sample(x+517, y-293, z, e.hour) * 45
			r.WindDirections[slot(chWindDirection)] = wrap360(g.windDirection(lon, lat, e.altitude()) + shift)
		case DataCloudDensity:
			r.CloudDensities[slot(chCloud)] = g.cloudDensity(lon, lat, e.hour)
		case DataBiome:
			r.Biomes[slot(chBiome)] = g.classifyBiome(lon, lat, e.altitude())
		case DataSoilType:
			r.SoilTypes[slot(chSoilType)] = g.soilType(lon, lat, e.altitude())
		case DataSoilFertility:
			f, _, _ := g.soilProperties(lon, lat, e.altitude())
			r.SoilFertilities[slot(chFertility)] = f
		case DataSoilPH:
			_, ph, _ := g.soilProperties(lon, lat, e.altitude())
			r.SoilPHs[slot(chPH)] = ph
		case DataSoilOrganicMatter:
			_, _, om := g.soilProperties(lon, lat, e.altitude())
			r.SoilOrganicMatters[slot(chOrganic)] = om
		case DataVegetationDensity:
			r.VegetationDensities[slot(chVegetation)] = g.vegetationDensity(lon, lat, e.altitude())
		case DataFlowAccumulation:
			r.FlowAccumulations[slot(chFlow)] = g.flowAccumulation(lon, lat)
		case DataIsRiver:
			r.Rivers[slot(chRiver)] = g.flowAccumulation(lon, lat) > riverFlowThreshold
		case DataRiverWidth:
			r.RiverWidths[slot(chRiverWidth)] = g.riverWidth(lon, lat)
		case DataIsVolcano:
			r.Volcanoes[slot(chVolcano)] = g.isVolcano(lon, lat)
		case DataCoalDeposit:
			r.CoalDeposits[slot(chCoal)] = g.coalDeposit(lon, lat)
		case DataIronDeposit:
			r.IronDeposits[slot(chIron)] = g.ironDeposit(lon, lat)
		case DataOilDeposit:
			r.OilDeposits[slot(chOil)] = g.oilDeposit(lon, lat)
		case DataInsolation:
			r.Insolations[slot(chInsolation)] = g.insolation(lon, lat, e.hour)
		case DataIsDaylight:
			r.Daylights[slot(chDaylight)] = g.solarElevation(lon, lat, e.hour) > 0
		case DataSolarAngle:
			r.SolarAngles[slot(chSolarAngle)] = g.solarElevation(lon, lat, e.hour) / degToRad
		}
	}
}
