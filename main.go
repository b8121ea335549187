package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/firecracker/internal/config"
	"github.com/iburimskiy/firecracker/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fail(err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Playback.TPS)
	if *cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.WithFields(log.Fields{
		"width":  cfg.Window.Width,
		"height": cfg.Window.Height,
		"tps":    cfg.Playback.TPS,
	}).Info("starting")

	if err := ebiten.RunGame(game.New(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// fail reports a fatal error in the log and in a dialog, then exits.
func fail(err error) {
	log.WithError(err).Error("firecracker stopped")
	if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); dlgErr != nil {
		log.WithError(dlgErr).Warn("can't show error dialog")
	}
	os.Exit(1)
}
