// cmd/game/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-elemental-td/internal/config"
	"go-elemental-td/internal/defs"
	"go-elemental-td/internal/state"
)

// App adapts the state machine to ebiten's game loop, clamping delta time
// so a stalled frame cannot make the simulation jump.
type App struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	settings, err := config.LoadSettings("settings.yaml")
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	if err := defs.LoadTowerDefinitions(settings.TowerDefsPath); err != nil {
		slog.Error("failed to load tower definitions", "error", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, settings))

	app := &App{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		slog.Error("game loop terminated", "error", err)
		os.Exit(1)
	}
}
