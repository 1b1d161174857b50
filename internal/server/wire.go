package server

import (
	"fmt"

	"github.com/daver64/rworld/pkg/world"
)

// QueryRequest is one batch query frame on the /ws endpoint.
type QueryRequest struct {
	Locations []LocationRequest `json:"locations"`
	Types     []string          `json:"types"`
}

// LocationRequest mirrors world.Location on the wire. Altitude 0 derives the
// altitude from the terrain surface.
type LocationRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Altitude  float64 `json:"altitude,omitempty"`
	Time      float64 `json:"time,omitempty"`
	Detail    float64 `json:"detail,omitempty"`
}

// QueryResponse carries the populated channels of a batch result. Enum
// channels are translated to their display names.
type QueryResponse struct {
	Count int `json:"count"`

	Heights             []float64 `json:"heights,omitempty"`
	Temperatures        []float64 `json:"temperatures,omitempty"`
	Precipitations      []float64 `json:"precipitations,omitempty"`
	PrecipitationTypes  []string  `json:"precipitation_types,omitempty"`
	Humidities          []float64 `json:"humidities,omitempty"`
	Pressures           []float64 `json:"pressures,omitempty"`
	PressureGradients   []float64 `json:"pressure_gradients,omitempty"`
	StormFronts         []bool    `json:"storm_fronts,omitempty"`
	WindSpeeds          []float64 `json:"wind_speeds,omitempty"`
	WindDirections      []float64 `json:"wind_directions,omitempty"`
	CloudDensities      []float64 `json:"cloud_densities,omitempty"`
	Biomes              []string  `json:"biomes,omitempty"`
	SoilTypes           []string  `json:"soil_types,omitempty"`
	SoilFertilities     []float64 `json:"soil_fertilities,omitempty"`
	SoilPHs             []float64 `json:"soil_phs,omitempty"`
	SoilOrganicMatters  []float64 `json:"soil_organic_matters,omitempty"`
	VegetationDensities []float64 `json:"vegetation_densities,omitempty"`
	FlowAccumulations   []float64 `json:"flow_accumulations,omitempty"`
	Rivers              []bool    `json:"rivers,omitempty"`
	RiverWidths         []float64 `json:"river_widths,omitempty"`
	Volcanoes           []bool    `json:"volcanoes,omitempty"`
	CoalDeposits        []float64 `json:"coal_deposits,omitempty"`
	IronDeposits        []float64 `json:"iron_deposits,omitempty"`
	OilDeposits         []float64 `json:"oil_deposits,omitempty"`
	Insolations         []float64 `json:"insolations,omitempty"`
	Daylights           []bool    `json:"daylights,omitempty"`
	SolarAngles         []float64 `json:"solar_angles,omitempty"`
}

// ErrorResponse is sent on the websocket when a request frame is rejected.
type ErrorResponse struct {
	Error string `json:"error"`
}

var dataTypeNames = map[string]world.DataType{
	"terrain_height":         world.DataTerrainHeight,
	"temperature":            world.DataTemperature,
	"temperature_at_time":    world.DataTemperatureAtTime,
	"precipitation":          world.DataPrecipitation,
	"current_precipitation":  world.DataCurrentPrecipitation,
	"precipitation_type":     world.DataPrecipitationType,
	"humidity":               world.DataHumidity,
	"air_pressure":           world.DataAirPressure,
	"pressure_at_location":   world.DataPressureAtLocation,
	"pressure_gradient":      world.DataPressureGradient,
	"is_storm_front":         world.DataIsStormFront,
	"wind_speed":             world.DataWindSpeed,
	"current_wind_speed":     world.DataCurrentWindSpeed,
	"wind_direction":         world.DataWindDirection,
	"current_wind_direction": world.DataCurrentWindDirection,
	"cloud_density":          world.DataCloudDensity,
	"biome":                  world.DataBiome,
	"soil_type":              world.DataSoilType,
	"soil_fertility":         world.DataSoilFertility,
	"soil_ph":                world.DataSoilPH,
	"soil_organic_matter":    world.DataSoilOrganicMatter,
	"vegetation_density":     world.DataVegetationDensity,
	"flow_accumulation":      world.DataFlowAccumulation,
	"is_river":               world.DataIsRiver,
	"river_width":            world.DataRiverWidth,
	"is_volcano":             world.DataIsVolcano,
	"coal_deposit":           world.DataCoalDeposit,
	"iron_deposit":           world.DataIronDeposit,
	"oil_deposit":            world.DataOilDeposit,
	"insolation":             world.DataInsolation,
	"is_daylight":            world.DataIsDaylight,
	"solar_angle":            world.DataSolarAngle,
}

// parseTypes resolves the wire names of a request into DataTypes.
func parseTypes(names []string) ([]world.DataType, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("types must not be empty")
	}
	types := make([]world.DataType, 0, len(names))
	for _, name := range names {
		t, ok := dataTypeNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown data type %q", name)
		}
		types = append(types, t)
	}
	return types, nil
}

func toLocations(reqs []LocationRequest) []world.Location {
	locs := make([]world.Location, len(reqs))
	for i, r := range reqs {
		locs[i] = world.Location{
			Longitude:   r.Longitude,
			Latitude:    r.Latitude,
			Altitude:    r.Altitude,
			CurrentTime: r.Time,
			DetailLevel: r.Detail,
		}
	}
	return locs
}

func toResponse(r world.BatchResult) QueryResponse {
	resp := QueryResponse{
		Count:               r.Count,
		Heights:             r.Heights,
		Temperatures:        r.Temperatures,
		Precipitations:      r.Precipitations,
		Humidities:          r.Humidities,
		Pressures:           r.Pressures,
		PressureGradients:   r.PressureGradients,
		StormFronts:         r.StormFronts,
		WindSpeeds:          r.WindSpeeds,
		WindDirections:      r.WindDirections,
		CloudDensities:      r.CloudDensities,
		SoilFertilities:     r.SoilFertilities,
		SoilPHs:             r.SoilPHs,
		SoilOrganicMatters:  r.SoilOrganicMatters,
		VegetationDensities: r.VegetationDensities,
		FlowAccumulations:   r.FlowAccumulations,
		Rivers:              r.Rivers,
		RiverWidths:         r.RiverWidths,
		Volcanoes:           r.Volcanoes,
		CoalDeposits:        r.CoalDeposits,
		IronDeposits:        r.IronDeposits,
		OilDeposits:         r.OilDeposits,
		Insolations:         r.Insolations,
		Daylights:           r.Daylights,
		SolarAngles:         r.SolarAngles,
	}
	if r.PrecipitationTypes != nil {
		resp.PrecipitationTypes = make([]string, len(r.PrecipitationTypes))
		for i, p := range r.PrecipitationTypes {
			resp.PrecipitationTypes[i] = world.PrecipitationName(p)
		}
	}
	if r.Biomes != nil {
		resp.Biomes = make([]string, len(r.Biomes))
		for i, b := range r.Biomes {
			resp.Biomes[i] = world.BiomeName(b)
		}
	}
	if r.SoilTypes != nil {
		resp.SoilTypes = make([]string, len(r.SoilTypes))
		for i, s := range r.SoilTypes {
			resp.SoilTypes[i] = world.SoilName(s)
		}
	}
	return resp
}
