package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/terra/internal/config"
	"github.com/milk9111/terra/internal/logger"
	"github.com/milk9111/terra/prefabs"
	"github.com/milk9111/terra/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	log := logger.Setup(cfg)

	prefabs.SetDiskRoot(cfg.ContentDir)
	content, err := prefabs.LoadContent()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*2/3, h*2/3)
	ebiten.SetWindowTitle("terra")

	game, err := NewGame(ctx, cfg, content, audio.NewContext(int(sound.SampleRate)), log)
	if err != nil {
		return err
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("shutdown")
	return nil
}
