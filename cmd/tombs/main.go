package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chosenoffset.com/tombs/internal/config"
	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/render"
	ebitenrender "chosenoffset.com/tombs/internal/render/ebiten"
	"chosenoffset.com/tombs/internal/render/terminal"
	"chosenoffset.com/tombs/internal/simulation"
	"chosenoffset.com/tombs/internal/storage"
	"chosenoffset.com/tombs/internal/storage/postgres"
	"chosenoffset.com/tombs/internal/storage/sqlite"
	"chosenoffset.com/tombs/internal/ui"
	"chosenoffset.com/tombs/internal/world/dungeon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := flag.Int64("seed", cfg.Seed, "dungeon seed (0 = random)")
	frontend := flag.String("frontend", cfg.Frontend, "frontend to run: ebiten or terminal")
	debug := flag.Bool("debug", cfg.Debug, "mirror game messages to the log")
	flag.Parse()
	cfg.Seed, cfg.Frontend, cfg.Debug = *seed, *frontend, *debug
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := game.Options{Seed: cfg.Seed, Debug: cfg.Debug}
	if cfg.RulesPath != "" {
		if opts.Rules, err = simulation.LoadConfig(cfg.RulesPath); err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	}
	if cfg.CatalogPath != "" {
		if opts.Catalog, err = dungeon.LoadCatalog(cfg.CatalogPath); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	saves, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer saves.Close()

	engine, err := newEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to start %s frontend: %v", cfg.Frontend, err)
	}
	engine.SetWindowTitle(ui.Title)

	app := ui.NewApp(ctx, ui.Options{
		Input: engine.Input(),
		Saves: saves,
		Game:  opts,
	})

	log.Printf("Starting game (frontend %s, saves %s)", cfg.Frontend, cfg.SaveBackend)
	if err := engine.RunGame(app); err != nil {
		log.Printf("Game stopped: %v", err)
		saves.Close()
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.SaveBackend {
	case config.BackendSQLite:
		return sqlite.Open(cfg.SavePath)
	case config.BackendPostgres:
		return postgres.Open(ctx, cfg.DatabaseURL)
	case config.BackendFile:
		return storage.NewFileStore(cfg.SavePath)
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}

func newEngine(cfg config.Config) (render.Engine, error) {
	if cfg.Frontend == config.FrontendTerminal {
		return terminal.NewEngine(ui.ScreenWidth, ui.ScreenHeight)
	}
	return ebitenrender.NewEngine(ui.ScreenWidth, ui.ScreenHeight, cfg.WindowWidth, cfg.WindowHeight), nil
}
