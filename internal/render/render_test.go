package render

import (
	"strings"
	"testing"

	"github.com/daver64/rworld/pkg/world"
)

func TestMapDimensions(t *testing.T) {
	w := world.NewDefault()

	for _, mode := range Modes() {
		out, err := Map(w, mode, 40, 12, 12)
		if err != nil {
			t.Fatalf("Map(%s): %v", mode, err)
		}
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 12 {
			t.Fatalf("Map(%s): %d lines, want 12", mode, len(lines))
		}
		for i, line := range lines {
			if len(line) != 40 {
				t.Fatalf("Map(%s): line %d has %d cells, want 40", mode, i, len(line))
			}
		}
	}
}

func TestMapDeterministic(t *testing.T) {
	w := world.NewDefault()

	a, err := Map(w, ModeBiome, 60, 20, 12)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	b, err := Map(w, ModeBiome, 60, 20, 12)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if a != b {
		t.Fatal("identical renders differ")
	}
}

func TestMapRejectsBadInput(t *testing.T) {
	w := world.NewDefault()

	if _, err := Map(w, ModeBiome, 0, 10, 12); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := Map(w, ModeBiome, 10, -1, 12); err == nil {
		t.Error("negative height should fail")
	}
	if _, err := Map(w, Mode("heatmap"), 10, 10, 12); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestBiomeMapUsesKnownGlyphs(t *testing.T) {
	w := world.NewDefault()

	out, err := Map(w, ModeBiome, 90, 30, 12)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}

	glyphs := make(map[byte]bool)
	for _, g := range biomeGlyphs {
		glyphs[g] = true
	}
	for i := 0; i < len(out); i++ {
		c := out[i]
		if c == '\n' {
			continue
		}
		if !glyphs[c] {
			t.Fatalf("unexpected glyph %q in biome map", c)
		}
	}

	// A default world has both ocean and land somewhere on the map.
	if !strings.ContainsAny(out, "~ ") {
		t.Error("no ocean rendered")
	}
}

func TestBiomeGlyphsCoverAllBiomes(t *testing.T) {
	for b := world.BiomeTundra; b <= world.BiomeMountainPeak; b++ {
		if _, ok := biomeGlyphs[b]; !ok {
			t.Errorf("biome %s has no glyph", world.BiomeName(b))
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("satellite"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}
