// Package main is the entry point for the Roonium pyramid renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roonium/internal/app"
	"github.com/Faultbox/roonium/internal/assets"
	"github.com/Faultbox/roonium/internal/config"
	"github.com/Faultbox/roonium/internal/engine/renderer"
	"github.com/Faultbox/roonium/internal/engine/texture"
	"github.com/Faultbox/roonium/internal/engine/window"
	"github.com/Faultbox/roonium/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("config written to %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Roonium ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		return 1
	}

	rend, err := renderer.New(renderer.DefaultConfig())
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		win.Close()
		return 1
	}

	a, err := app.New(cfg, app.Deps{
		Surface: win,
		Backend: rend,
		Decoder: texture.Decoder{FlipY: false},
		Texture: assets.Texture,
		Icon:    assets.Icon,
	})
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		rend.Close()
		win.Close()
		return 1
	}
	// The app deletes its GPU resources before closing the window.
	defer a.Close()

	if err := a.Init(); err != nil {
		logger.Error("startup failed", zap.Error(err))
		return 1
	}

	if err := a.Run(); err != nil {
		logger.Error("render loop error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
