package world

import "testing"

func TestBiomeOceanMatchesTerrain(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		h := w.TerrainHeight(lon, lat)
		b := w.Biome(lon, lat, h)
		ocean := b == BiomeOcean || b == BiomeDeepOcean
		if ocean != (h < w.Config().SeaLevel) {
			t.Fatalf("biome %s at (%f, %f) disagrees with terrain height %f", BiomeName(b), lon, lat, h)
		}
		if b == BiomeDeepOcean && h >= -1000 {
			t.Fatalf("deep ocean at (%f, %f) with height %f above -1000m", lon, lat, h)
		}
	})
}

func TestBiomeBeachBand(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		h := w.TerrainHeight(lon, lat)
		if h < w.Config().SeaLevel || h >= 5 {
			return
		}
		if b := w.Biome(lon, lat, h); b != BiomeBeach {
			t.Fatalf("low coastal land at (%f, %f, h=%f) classified %s, want Beach", lon, lat, h, BiomeName(b))
		}
	})
}

func TestBiomeMountainAltitudes(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		h := w.TerrainHeight(lon, lat)
		if h < 5 {
			return
		}
		b := w.Biome(lon, lat, 4500)
		if b != BiomeMountainPeak && b != BiomeSnow && b != BiomeIce {
			t.Fatalf("land at (%f, %f) at alt 4500 classified %s, want a peak or frozen biome", lon, lat, BiomeName(b))
		}
	})
}

func TestWhittakerTable(t *testing.T) {
	cases := []struct {
		temp, moisture float64
		want           BiomeType
	}{
		{-5, 0.1, BiomeColdDesert},
		{-5, 0.5, BiomeTundra},
		{5, 0.1, BiomeColdDesert},
		{5, 0.4, BiomeGrassland},
		{5, 0.8, BiomeTaiga},
		{15, 0.1, BiomeGrassland},
		{15, 0.4, BiomeTemperateDeciduousForest},
		{15, 0.8, BiomeTemperateRainforest},
		{25, 0.1, BiomeDesert},
		{25, 0.4, BiomeSavanna},
		{25, 0.6, BiomeTropicalSeasonalForest},
		{25, 0.9, BiomeTropicalRainforest},
	}
	for _, tc := range cases {
		if got := whittaker(tc.temp, tc.moisture); got != tc.want {
			t.Errorf("whittaker(%f, %f) = %s, want %s", tc.temp, tc.moisture, BiomeName(got), BiomeName(tc.want))
		}
	}
}

func TestBiomeNames(t *testing.T) {
	for b := BiomeTundra; b <= BiomeMountainPeak; b++ {
		if BiomeName(b) == "Unknown" {
			t.Errorf("biome %d has no name", b)
		}
	}
	if BiomeName(BiomeType(255)) != "Unknown" {
		t.Error("out-of-range biome should map to Unknown")
	}
}
