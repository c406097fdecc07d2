// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-elemental-td/internal/app"
	"go-elemental-td/internal/config"
)

// GameState runs one play session. Esc abandons it and returns to the menu.
type GameState struct {
	machine  *StateMachine
	settings config.Settings
	game     *app.Game
}

// NewGameState creates a play session; the game itself is built on Enter.
func NewGameState(machine *StateMachine, settings config.Settings) *GameState {
	return &GameState{machine: machine, settings: settings}
}

func (s *GameState) Enter() {
	s.game = app.NewGame(s.settings)
}

func (s *GameState) Exit() {
	if s.game != nil {
		s.game.Dispose()
		s.game = nil
	}
}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.machine.SetState(NewMenuState(s.machine, s.settings))
		return
	}
	s.game.Update(deltaTime)
}

func (s *GameState) Draw(screen *ebiten.Image) {
	if s.game != nil {
		s.game.Draw(screen)
	}
}
