// Package main is the entry point for LexCosmos.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/config"
	"github.com/Faultbox/lexcosmos/internal/game"
	"github.com/Faultbox/lexcosmos/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config written to", config.UserConfigPath())
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== LexCosmos ===", zap.String("config", config.ConfigPath()))
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
