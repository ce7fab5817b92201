package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/logging"
	"raycaster/internal/world"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	logger := logging.Must(cfg.Logging)
	defer logger.Sync()

	start := world.Point{X: cfg.Camera.StartX, Y: cfg.Camera.StartY}
	grid, start, err := world.NewMapLoader(logger).Open(cfg.World.MapFile, start)
	if err != nil {
		logger.Fatal("failed to load map", zap.Error(err))
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.New(cfg, logger, grid, start)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", zap.Error(err))
		return
	}
	logger.Info("bye")
}
