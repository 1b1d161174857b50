package world

import "testing"

func TestFlowAccumulationBounds(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		f := w.FlowAccumulation(lon, lat)
		if f < 0 || f > 1 {
			t.Fatalf("FlowAccumulation(%f, %f) = %f, out of [0,1]", lon, lat, f)
		}
	})
}

func TestFlowAccumulationZeroInOcean(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		if w.TerrainHeight(lon, lat) >= w.Config().SeaLevel {
			return
		}
		if f := w.FlowAccumulation(lon, lat); f != 0 {
			t.Fatalf("ocean location (%f, %f) has flow accumulation %f", lon, lat, f)
		}
	})
}

func TestIsRiverMatchesThreshold(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		f := w.FlowAccumulation(lon, lat)
		if w.IsRiver(lon, lat) != (f > 0.4) {
			t.Fatalf("IsRiver disagrees with flow %f at (%f, %f)", f, lon, lat)
		}
	})
}

func TestRiverWidthGatedByRiver(t *testing.T) {
	w := NewDefault()

	sampleGrid(func(lon, lat float64) {
		width := w.RiverWidth(lon, lat)
		if width < 0 || width > 500 {
			t.Fatalf("RiverWidth(%f, %f) = %f, out of [0,500]", lon, lat, width)
		}
		if !w.IsRiver(lon, lat) && width != 0 {
			t.Fatalf("non-river location (%f, %f) has width %f", lon, lat, width)
		}
		if w.IsRiver(lon, lat) && width < 5 {
			t.Fatalf("river at (%f, %f) narrower than the 5m floor: %f", lon, lat, width)
		}
	})
}

func TestRiversExist(t *testing.T) {
	w := NewDefault()

	// Scan a fine grid; with the default seed at least some land should carry
	// a river channel.
	found := false
	for lon := -180.0; lon < 180 && !found; lon += 0.5 {
		for lat := -60.0; lat <= 60 && !found; lat += 0.5 {
			if w.IsRiver(lon, lat) {
				found = true
			}
		}
	}
	if !found {
		t.Skip("no river found on the scan grid for the default seed")
	}
}
