package world

import (
	"math"
	"testing"
)

func batchLocations() []Location {
	var locs []Location
	for lon := -180.0; lon < 180; lon += 23 {
		for lat := -85.0; lat <= 85; lat += 17 {
			locs = append(locs, Location{
				Longitude:   lon,
				Latitude:    lat,
				CurrentTime: math.Mod(lon+lat+200, 24),
			})
		}
	}
	return locs
}

func TestBatchEmptyInputs(t *testing.T) {
	w := NewDefault()

	if r := w.BatchQuery(nil, []DataType{DataTerrainHeight}); r.Count != 0 || r.Heights != nil {
		t.Errorf("empty locations: Count=%d Heights=%v", r.Count, r.Heights)
	}
	if r := w.BatchQuery([]Location{{Longitude: 1, Latitude: 2}}, nil); r.Count != 1 || r.Heights != nil {
		t.Errorf("empty types: Count=%d Heights=%v", r.Count, r.Heights)
	}
}

func TestBatchMatchesIndividualCalls(t *testing.T) {
	w := NewDefault()
	locs := batchLocations()

	types := []DataType{
		DataTerrainHeight,
		DataTemperature,
		DataPrecipitation,
		DataPrecipitationType,
		DataHumidity,
		DataAirPressure,
		DataWindSpeed,
		DataWindDirection,
		DataCloudDensity,
		DataBiome,
		DataSoilType,
		DataSoilFertility,
		DataVegetationDensity,
		DataFlowAccumulation,
		DataIsRiver,
		DataRiverWidth,
		DataIsVolcano,
		DataCoalDeposit,
		DataIronDeposit,
		DataOilDeposit,
		DataInsolation,
		DataIsDaylight,
		DataSolarAngle,
	}
	r := w.BatchQuery(locs, types)
	if r.Count != len(locs) {
		t.Fatalf("Count = %d, want %d", r.Count, len(locs))
	}

	for i, loc := range locs {
		lon, lat, hour := loc.Longitude, loc.Latitude, loc.CurrentTime
		alt := math.Max(w.TerrainHeight(lon, lat), 0)

		checks := []struct {
			name string
			got  float64
			want float64
		}{
			{"height", r.Heights[i], w.TerrainHeight(lon, lat)},
			{"temperature", r.Temperatures[i], w.Temperature(lon, lat, alt)},
			{"precipitation", r.Precipitations[i], w.Precipitation(lon, lat, alt)},
			{"humidity", r.Humidities[i], w.Humidity(lon, lat, alt)},
			{"pressure", r.Pressures[i], w.AirPressure(lon, lat, alt)},
			{"wind speed", r.WindSpeeds[i], w.WindSpeed(lon, lat, alt)},
			{"wind direction", r.WindDirections[i], w.WindDirection(lon, lat, alt)},
			{"clouds", r.CloudDensities[i], w.CloudDensity(lon, lat, hour)},
			{"fertility", r.SoilFertilities[i], w.SoilFertility(lon, lat, alt)},
			{"vegetation", r.VegetationDensities[i], w.VegetationDensity(lon, lat, alt)},
			{"flow", r.FlowAccumulations[i], w.FlowAccumulation(lon, lat)},
			{"river width", r.RiverWidths[i], w.RiverWidth(lon, lat)},
			{"coal", r.CoalDeposits[i], w.CoalDeposit(lon, lat)},
			{"iron", r.IronDeposits[i], w.IronDeposit(lon, lat)},
			{"oil", r.OilDeposits[i], w.OilDeposit(lon, lat)},
			{"insolation", r.Insolations[i], w.Insolation(lon, lat, hour)},
			{"solar angle", r.SolarAngles[i], w.SolarAngle(lon, lat, hour)},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Fatalf("location %d (%f, %f): batch %s = %f, individual = %f", i, lon, lat, c.name, c.got, c.want)
			}
		}

		if r.PrecipitationTypes[i] != w.PrecipitationType(lon, lat, alt) {
			t.Fatalf("location %d: batch precipitation type mismatch", i)
		}
		if r.Biomes[i] != w.Biome(lon, lat, alt) {
			t.Fatalf("location %d: batch biome mismatch", i)
		}
		if r.SoilTypes[i] != w.SoilType(lon, lat, alt) {
			t.Fatalf("location %d: batch soil type mismatch", i)
		}
		if r.Rivers[i] != w.IsRiver(lon, lat) {
			t.Fatalf("location %d: batch river flag mismatch", i)
		}
		if r.Volcanoes[i] != w.IsVolcano(lon, lat) {
			t.Fatalf("location %d: batch volcano flag mismatch", i)
		}
		if r.Daylights[i] != w.IsDaylight(lon, lat, hour) {
			t.Fatalf("location %d: batch daylight flag mismatch", i)
		}
	}
}

func TestBatchExplicitAltitude(t *testing.T) {
	w := NewDefault()

	locs := []Location{{Longitude: 10, Latitude: 50, Altitude: 3000}}
	r := w.BatchQuery(locs, []DataType{DataTemperature, DataAirPressure})
	if got, want := r.Temperatures[0], w.Temperature(10, 50, 3000); got != want {
		t.Errorf("temperature at explicit altitude: batch %f, individual %f", got, want)
	}
	if got, want := r.Pressures[0], w.AirPressure(10, 50, 3000); got != want {
		t.Errorf("pressure at explicit altitude: batch %f, individual %f", got, want)
	}
}

func TestBatchAliasedChannelInterleaves(t *testing.T) {
	w := NewDefault()

	locs := []Location{
		{Longitude: 10, Latitude: 20, CurrentTime: 12},
		{Longitude: -40, Latitude: -30, CurrentTime: 3},
	}
	r := w.BatchQuery(locs, []DataType{DataTemperature, DataTemperatureAtTime})
	if len(r.Temperatures) != 4 {
		t.Fatalf("temperature channel length = %d, want 4", len(r.Temperatures))
	}

	// Entries are location-major in requested-type order: [T0, Tat0, T1, Tat1].
	for i, loc := range locs {
		alt := math.Max(w.TerrainHeight(loc.Longitude, loc.Latitude), 0)
		if got, want := r.Temperatures[2*i], w.Temperature(loc.Longitude, loc.Latitude, alt); got != want {
			t.Errorf("location %d static temperature: %f, want %f", i, got, want)
		}
		if got, want := r.Temperatures[2*i+1], w.TemperatureAtTime(loc.Longitude, loc.Latitude, alt, loc.CurrentTime); got != want {
			t.Errorf("location %d time-of-day temperature: %f, want %f", i, got, want)
		}
	}
}

func TestBatchUnrequestedChannelsNil(t *testing.T) {
	w := NewDefault()

	r := w.BatchQuery(batchLocations(), []DataType{DataBiome})
	if r.Biomes == nil {
		t.Fatal("requested biome channel is nil")
	}
	if r.Heights != nil || r.Temperatures != nil || r.WindSpeeds != nil {
		t.Error("unrequested channels should stay nil")
	}
}

func TestBatchDeterministicAcrossCalls(t *testing.T) {
	w := NewDefault()
	locs := batchLocations()
	types := []DataType{DataTerrainHeight, DataBiome, DataWindSpeed, DataCurrentWindSpeed}

	a := w.BatchQuery(locs, types)
	b := w.BatchQuery(locs, types)

	for i := range a.Heights {
		if a.Heights[i] != b.Heights[i] {
			t.Fatalf("height %d differs across calls", i)
		}
	}
	for i := range a.WindSpeeds {
		if a.WindSpeeds[i] != b.WindSpeeds[i] {
			t.Fatalf("wind speed %d differs across calls", i)
		}
	}
	for i := range a.Biomes {
		if a.Biomes[i] != b.Biomes[i] {
			t.Fatalf("biome %d differs across calls", i)
		}
	}
}

func TestBatchDetailLevel(t *testing.T) {
	w := NewDefault()

	locs := []Location{{Longitude: 33, Latitude: -12, DetailLevel: 8}}
	r := w.BatchQuery(locs, []DataType{DataTerrainHeight})
	if got, want := r.Heights[0], w.TerrainHeightDetail(33, -12, 8); got != want {
		t.Errorf("detail height: batch %f, individual %f", got, want)
	}
}
