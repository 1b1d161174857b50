package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/daver64/rworld/internal/server"
	"github.com/daver64/rworld/internal/server/config"
)

func main() {
	cfg := config.DefaultConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.IntVar(&cfg.MaxBatch, "max-batch", cfg.MaxBatch, "maximum locations per batch query")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "world preset file")
	flag.Int64Var(&cfg.World.Seed, "seed", cfg.World.Seed, "world seed")
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	if cfg.Preset != "" {
		preset, err := config.LoadPreset(cfg.Preset)
		if err != nil {
			log.Error("load preset", "error", err)
			os.Exit(1)
		}
		cfg.World = preset.World
		log.Info("preset loaded", "name", preset.Name, "seed", preset.World.Seed)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("create server", "error", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
