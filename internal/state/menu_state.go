// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-elemental-td/internal/config"
)

// MenuState is the title screen. Enter starts a new game.
type MenuState struct {
	machine  *StateMachine
	settings config.Settings
}

// NewMenuState creates the title screen.
func NewMenuState(machine *StateMachine, settings config.Settings) *MenuState {
	return &MenuState{machine: machine, settings: settings}
}

func (s *MenuState) Enter() {}
func (s *MenuState) Exit()  {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.machine.SetState(NewGameState(s.machine, s.settings))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	title := "ELEMENTAL DEFENSE"
	prompt := "Press Enter to play"
	face := basicfont.Face7x13
	text.Draw(screen, title, face, (s.settings.WindowWidth-len(title)*7)/2, s.settings.WindowHeight/2-20, color.RGBA{240, 240, 240, 255})
	text.Draw(screen, prompt, face, (s.settings.WindowWidth-len(prompt)*7)/2, s.settings.WindowHeight/2+10, color.RGBA{170, 170, 180, 255})
}
