// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var hudFace font.Face = basicfont.Face7x13

// HUDInfo is everything the heads-up display shows for one frame.
type HUDInfo struct {
	Money       int
	LevelNumber int
	LevelName   string
	Wave        int
	BaseHealth  int
	Selected    string
	GameOver    bool
}

// HUD draws the top-of-screen status line and the bottom help line.
type HUD struct {
	screenWidth  int
	screenHeight int
}

// NewHUD creates a HUD for the given screen size.
func NewHUD(screenWidth, screenHeight int) *HUD {
	return &HUD{screenWidth: screenWidth, screenHeight: screenHeight}
}

// Draw renders the HUD.
func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	light := color.RGBA{240, 240, 240, 255}

	status := fmt.Sprintf("Gold: %d   Level %d (%s)   Wave %d   Base: %d",
		info.Money, info.LevelNumber, info.LevelName, info.Wave, info.BaseHealth)
	text.Draw(screen, status, hudFace, 16, 24, light)

	help := fmt.Sprintf("Selected: %s   [1] Fire  [2] Water  [3] Wind  [4] Earth  [5] Basic   Click to place", info.Selected)
	text.Draw(screen, help, hudFace, 16, h.screenHeight-16, light)

	if info.GameOver {
		msg := "THE BASE HAS FALLEN - press Esc for menu"
		w := len(msg) * 7
		text.Draw(screen, msg, hudFace, (h.screenWidth-w)/2, h.screenHeight/2, color.RGBA{255, 80, 80, 255})
	}
}
