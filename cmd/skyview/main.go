//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"chronal/internal/app"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "skyview"})
	if cfg.Input == "" {
		logger.Fatal("missing -input")
	}
	src, err := os.ReadFile(cfg.Input)
	if err != nil {
		logger.Fatal("read input", "err", err)
	}
	field, err := app.NewField(src, cfg.Tick)
	if err != nil {
		logger.Fatal("load field", "err", err)
	}

	game := app.New(field, cfg, logger)
	ebiten.SetWindowTitle("skyview - " + cfg.Input)
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
