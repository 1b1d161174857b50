package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/daver64/rworld/internal/render"
	"github.com/daver64/rworld/internal/server/config"
	"github.com/daver64/rworld/pkg/world"
)

func main() {
	var (
		mode   = flag.String("mode", "biome", "map mode: biome, elevation, temperature, precipitation")
		width  = flag.Int("width", 120, "map width in characters")
		height = flag.Int("height", 40, "map height in characters")
		hour   = flag.Float64("time", 12, "time of day in hours")
		seed   = flag.Int64("seed", 0, "world seed (0 keeps the preset or default seed)")
		preset = flag.String("preset", "", "world preset file")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	wcfg := world.DefaultConfig()
	if *preset != "" {
		p, err := config.LoadPreset(*preset)
		if err != nil {
			log.Error("load preset", "error", err)
			os.Exit(1)
		}
		wcfg = p.World
	}
	if *seed != 0 {
		wcfg.Seed = *seed
	}

	m, err := render.ParseMode(*mode)
	if err != nil {
		log.Error("parse mode", "error", err)
		os.Exit(1)
	}

	w, err := world.New(wcfg)
	if err != nil {
		log.Error("build world", "error", err)
		os.Exit(1)
	}

	out, err := render.Map(w, m, *width, *height, *hour)
	if err != nil {
		log.Error("render map", "error", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
