package main

import (
	"errors"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/gui"
)

func main() {
	logger := config.NewLogger(os.Stderr, "gui")

	rules, err := config.Resolve(config.GetEnv(config.EnvRules, ""))
	if err != nil {
		logger.Fatal("failed to load rules", "err", err)
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	game, err := gui.NewGame(rules, rng, logger)
	if err != nil {
		logger.Fatal("failed to create game", "err", err)
	}

	width, height := game.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("SKYRAID")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting window", "variant", rules.Variant)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
