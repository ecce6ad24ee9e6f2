// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/assets"
	"go-sky-shooter/internal/audio"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/logging"
	"go-sky-shooter/internal/state"
	"go-sky-shooter/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	opts, err := config.ParseOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("invalid options", "error", err)
		os.Exit(2)
	}
	logger := logging.Setup(os.Stderr, opts.LogLevel, opts.LogJSON)

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	library, err := defs.Load(opts.DefsDir)
	if err != nil {
		logger.Error("failed to load definitions", "dir", opts.DefsDir, "error", err)
		os.Exit(1)
	}

	rng := utils.NewPRNGService(opts.Seed)
	game := app.NewGame(library, rng)
	audio.NewSFX(game.ECS, opts.Mute).Subscribe(game.EventDispatcher)

	fonts := assets.NewFontManager(logging.ForComponent("fonts"))
	defer fonts.Close()

	sm := state.NewStateMachine(logging.ForComponent("state"))
	sm.SetState(state.NewMenuState(sm, state.NewShared(game, fonts)))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sky Shooter")
	if err := ebiten.RunGame(a); err != nil {
		slog.Error("game loop stopped", "error", err)
		os.Exit(1)
	}
}
