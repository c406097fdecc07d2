// pkg/render/color.go
package render

import (
	"image/color"

	"go-elemental-td/internal/level"
)

// Palette holds the colors needed to render one themed segment.
type Palette struct {
	Ground      color.RGBA
	Path        color.RGBA
	River       color.RGBA
	StartPortal color.RGBA
	EndPortal   color.RGBA
	Bridge      color.RGBA
}

var themePalettes = map[level.Theme]Palette{
	level.ThemeNeutral: {
		Ground:      color.RGBA{86, 125, 70, 255},
		Path:        color.RGBA{194, 178, 128, 255},
		River:       color.RGBA{70, 130, 180, 255},
		StartPortal: color.RGBA{0, 255, 0, 255},
		EndPortal:   color.RGBA{255, 0, 0, 255},
		Bridge:      color.RGBA{160, 150, 120, 255},
	},
	level.ThemeFire: {
		Ground:      color.RGBA{120, 60, 40, 255},
		Path:        color.RGBA{60, 40, 35, 255},
		River:       color.RGBA{255, 100, 0, 255},
		StartPortal: color.RGBA{0, 255, 0, 255},
		EndPortal:   color.RGBA{255, 60, 0, 255},
		Bridge:      color.RGBA{110, 80, 60, 255},
	},
	level.ThemeWater: {
		Ground:      color.RGBA{60, 110, 120, 255},
		Path:        color.RGBA{180, 185, 170, 255},
		River:       color.RGBA{50, 120, 220, 255},
		StartPortal: color.RGBA{0, 255, 120, 255},
		EndPortal:   color.RGBA{255, 40, 80, 255},
		Bridge:      color.RGBA{140, 160, 165, 255},
	},
	level.ThemeWind: {
		Ground:      color.RGBA{110, 150, 110, 255},
		Path:        color.RGBA{200, 200, 185, 255},
		River:       color.RGBA{120, 180, 220, 255},
		StartPortal: color.RGBA{60, 255, 160, 255},
		EndPortal:   color.RGBA{255, 80, 40, 255},
		Bridge:      color.RGBA{170, 180, 160, 255},
	},
	level.ThemeEarth: {
		Ground:      color.RGBA{130, 105, 70, 255},
		Path:        color.RGBA{90, 70, 50, 255},
		River:       color.RGBA{90, 140, 170, 255},
		StartPortal: color.RGBA{80, 255, 80, 255},
		EndPortal:   color.RGBA{255, 70, 30, 255},
		Bridge:      color.RGBA{120, 100, 80, 255},
	},
}

// zoneColors tints cells per terrain zone on top of the theme ground color.
var zoneColors = map[int]color.RGBA{
	level.ZoneMeadow:   {0, 0, 0, 0}, // No tint; theme ground shows through
	level.ZoneForest:   {20, 60, 20, 90},
	level.ZoneRock:     {90, 90, 90, 110},
	level.ZoneScorched: {40, 10, 0, 120},
	level.ZoneAsh:      {130, 130, 130, 90},
	level.ZoneMarsh:    {30, 70, 40, 100},
	level.ZoneShore:    {190, 180, 130, 90},
	level.ZoneGale:     {200, 230, 220, 60},
	level.ZoneHighland: {90, 120, 70, 90},
	level.ZoneCliff:    {60, 55, 50, 130},
	level.ZoneDune:     {200, 180, 120, 100},
}

// PaletteFor returns the palette for a theme, falling back to neutral.
func PaletteFor(theme level.Theme) Palette {
	if p, ok := themePalettes[theme]; ok {
		return p
	}
	return themePalettes[level.ThemeNeutral]
}

// ZoneTint returns the overlay color of a terrain zone.
func ZoneTint(zone int) color.RGBA {
	return zoneColors[zone]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
