package world

import (
	"math"
	"testing"
)

func TestAirPressureSeaLevel(t *testing.T) {
	w := NewDefault()
	if p := w.AirPressure(0, 0, 0); p != 1013.25 {
		t.Errorf("AirPressure(alt=0) = %f, want 1013.25", p)
	}
}

func TestAirPressureEverest(t *testing.T) {
	w := NewDefault()
	// 1013.25 * exp(-8848/8500)
	want := 357.8
	if p := w.AirPressure(0, 0, 8848); math.Abs(p-want) > 1 {
		t.Errorf("AirPressure(alt=8848) = %f, want %f ± 1", p, want)
	}
}

func TestAirPressureMonotonicWithAltitude(t *testing.T) {
	w := NewDefault()
	prev := w.AirPressure(0, 0, 0)
	for alt := 500.0; alt <= 10000; alt += 500 {
		p := w.AirPressure(0, 0, alt)
		if p >= prev {
			t.Fatalf("pressure should fall with altitude: %f at %fm after %f", p, alt, prev)
		}
		prev = p
	}
}

func TestEquatorWarmerThanPole(t *testing.T) {
	w := NewDefault()

	for lon := -180.0; lon < 180; lon += 20 {
		eq := w.Temperature(lon, 0, 0)
		pole := w.Temperature(lon, 88, 0)
		if eq <= pole {
			t.Fatalf("equator (%f°C) should be warmer than pole (%f°C) at lon=%f", eq, pole, lon)
		}
	}
}

func TestLapseRateExact(t *testing.T) {
	w := NewDefault()

	// The noise variation depends only on the horizontal position, so the
	// lapse term is exactly visible between two altitudes at one point.
	low := w.Temperature(42, 33, 0)
	high := w.Temperature(42, 33, 4000)
	want := 4 * w.Config().TemperatureLapseRate
	if math.Abs((low-high)-want) > 1e-9 {
		t.Errorf("temperature lapse over 4000m = %f, want %f", low-high, want)
	}
}

func TestNoonWarmerThanMidnight(t *testing.T) {
	w := NewDefault()

	noon := w.TemperatureAtTime(0, 45, 200, 12)
	midnight := w.TemperatureAtTime(0, 45, 200, 0)
	if noon <= midnight {
		t.Errorf("noon (%f°C) should be warmer than midnight (%f°C)", noon, midnight)
	}
}

func TestHumidityBounds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		for _, alt := range []float64{0, 2000, 5000, 9000} {
			h := w.Humidity(lon, lat, alt)
			if h < 0 || h > 1 {
				t.Fatalf("Humidity(%f, %f, %f) = %f, out of [0,1]", lon, lat, alt, h)
			}
		}
	})
}

func TestHumidityDriesWithAltitude(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		if w.Humidity(lon, lat, 8000) > w.Humidity(lon, lat, 0) {
			t.Fatalf("humidity at 8000m exceeds surface humidity at (%f, %f)", lon, lat)
		}
	})
}

func TestPrecipitationBounds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		p := w.Precipitation(lon, lat, 0)
		if p < 0 || p > 4000 {
			t.Fatalf("Precipitation(%f, %f) = %f, out of [0,4000]", lon, lat, p)
		}
	})
}

func TestCurrentPrecipitationBounds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		for _, hour := range []float64{0, 6.5, 13, 22} {
			p := w.CurrentPrecipitation(lon, lat, 0, hour)
			if p < 0 || p > 1 {
				t.Fatalf("CurrentPrecipitation = %f, out of [0,1]", p)
			}
		}
	})
}

func TestPrecipitationTypeThresholds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		pt := w.PrecipitationType(lon, lat, 0)
		precip := w.Precipitation(lon, lat, 0)
		temp := w.Temperature(lon, lat, 0)

		switch {
		case precip < 100:
			if pt != PrecipNone {
				t.Fatalf("precip=%f should be PrecipNone, got %v", precip, pt)
			}
		case temp < -2:
			if pt != PrecipSnow {
				t.Fatalf("temp=%f should be PrecipSnow, got %v", temp, pt)
			}
		case temp < 2:
			if pt != PrecipSleet {
				t.Fatalf("temp=%f should be PrecipSleet, got %v", temp, pt)
			}
		default:
			if pt != PrecipRain {
				t.Fatalf("temp=%f should be PrecipRain, got %v", temp, pt)
			}
		}
	})
}

func TestWindSpeedBounds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		v := w.WindSpeed(lon, lat, 0)
		if v <= 0 || v > 20 {
			t.Fatalf("WindSpeed(%f, %f) = %f, out of (0,20]", lon, lat, v)
		}
		cv := w.CurrentWindSpeed(lon, lat, 0, 9)
		if cv < 0 || cv > 30 {
			t.Fatalf("CurrentWindSpeed(%f, %f) = %f, out of [0,30]", lon, lat, cv)
		}
	})
}

func TestWindDirectionRange(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		d := w.WindDirection(lon, lat, 0)
		if d < 0 || d >= 360 {
			t.Fatalf("WindDirection(%f, %f) = %f, out of [0,360)", lon, lat, d)
		}
		cd := w.CurrentWindDirection(lon, lat, 0, 15)
		if cd < 0 || cd >= 360 {
			t.Fatalf("CurrentWindDirection(%f, %f) = %f, out of [0,360)", lon, lat, cd)
		}
	})
}

func TestWindBandBases(t *testing.T) {
	cases := []struct {
		lat        float64
		minV, maxV float64
	}{
		{0, 5, 8},    // trade winds
		{25, 5, 8},   // trade winds
		{45, 7, 12},  // westerlies
		{-45, 7, 12}, // westerlies mirror
		{75, 6, 8},   // polar easterlies
	}
	for _, tc := range cases {
		v, _ := windBand(tc.lat)
		if v < tc.minV || v > tc.maxV {
			t.Errorf("windBand(%f) speed = %f, want [%f,%f]", tc.lat, v, tc.minV, tc.maxV)
		}
	}
}

func TestMountainWindSlowerThanOpenAir(t *testing.T) {
	w := NewDefault()

	// Find a mountainous point and compare surface wind with high-altitude
	// wind at the same spot.
	sampleGrid(func(lon, lat float64) {
		h := w.TerrainHeight(lon, lat)
		if h < 2200 {
			return
		}
		surface := w.WindSpeed(lon, lat, h)
		aloft := w.WindSpeed(lon, lat, h+3000)
		if surface > aloft {
			t.Fatalf("surface wind %f exceeds wind aloft %f at (%f, %f)", surface, aloft, lon, lat)
		}
	})
}

func TestPressureGradientNonNegative(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		grad := w.PressureGradient(lon, lat, 0, 8)
		if grad < 0 {
			t.Fatalf("PressureGradient(%f, %f) = %f, negative", lon, lat, grad)
		}
		if w.IsStormFront(lon, lat, 0, 8) != (grad > 5) {
			t.Fatalf("IsStormFront disagrees with gradient %f at (%f, %f)", grad, lon, lat)
		}
	})
}

func TestPressureAtLocationNearBarometric(t *testing.T) {
	w := NewDefault()

	// The weather term is ±25 hPa and the belt term ±10 hPa.
	sampleGrid(func(lon, lat float64) {
		p := w.PressureAtLocation(lon, lat, 0, 12)
		if math.Abs(p-1013.25) > 35 {
			t.Fatalf("PressureAtLocation(%f, %f) = %f, further than 35 hPa from standard", lon, lat, p)
		}
	})
}

func TestCloudDensityBounds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		for _, hour := range []float64{0, 8, 16} {
			c := w.CloudDensity(lon, lat, hour)
			if c < 0 || c > 1 {
				t.Fatalf("CloudDensity(%f, %f, %f) = %f, out of [0,1]", lon, lat, hour, c)
			}
		}
	})
}

func TestPrecipitationNames(t *testing.T) {
	cases := []struct {
		p    PrecipitationType
		want string
	}{
		{PrecipNone, "None"},
		{PrecipRain, "Rain"},
		{PrecipSnow, "Snow"},
		{PrecipSleet, "Sleet"},
		{PrecipitationType(99), "Unknown"},
	}
	for _, tc := range cases {
		if got := PrecipitationName(tc.p); got != tc.want {
			t.Errorf("PrecipitationName(%v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}
