// Package main is the entry point for the Tunnel Rush game.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/tunnel-rush/internal/config"
	"github.com/Faultbox/tunnel-rush/internal/game"
	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Tunnel Rush ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Without a catalog there is no tunnel to fly through
	catalog, err := tunnel.LoadCatalog(cfg.Tunnel.Catalog, cfg.Tunnel.Geometry().Layout())
	if err != nil {
		logger.Fatal("failed to load matrix catalog", zap.Error(err))
	}
	for _, p := range catalog.Check() {
		logger.Warn("catalog problem", zap.Stringer("kind", p.Kind), zap.String("detail", p.Message))
	}

	g, err := game.New(cfg, catalog)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
