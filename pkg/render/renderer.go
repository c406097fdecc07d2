// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-elemental-td/internal/camera"
	"go-elemental-td/internal/config"
	"go-elemental-td/internal/enemy"
	"go-elemental-td/internal/level"
	"go-elemental-td/internal/tower"
	"go-elemental-td/pkg/geom"
)

// BackgroundColor fills everything outside the segments.
var BackgroundColor = color.RGBA{20, 20, 30, 255}

// Renderer draws the world top-down: world X maps to screen X, world Z to
// screen Y, centered on the camera focus.
type Renderer struct {
	screenWidth  int
	screenHeight int
	scale        float64 // Pixels per world unit
}

// NewRenderer creates a renderer for the given screen size.
func NewRenderer(screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		scale:        14,
	}
}

func (r *Renderer) worldToScreen(v geom.Vec3, focus geom.Vec3) (float32, float32) {
	sx := (v.X-focus.X)*r.scale + float64(r.screenWidth)/2
	sy := (v.Z-focus.Z)*r.scale + float64(r.screenHeight)/2
	return float32(sx), float32(sy)
}

// ScreenToWorld inverts the projection onto the ground plane (Y = 0).
func (r *Renderer) ScreenToWorld(sx, sy float64, focus geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		X: (sx-float64(r.screenWidth)/2)/r.scale + focus.X,
		Y: 0,
		Z: (sy-float64(r.screenHeight)/2)/r.scale + focus.Z,
	}
}

// Draw renders the whole scene for one frame.
func (r *Renderer) Draw(screen *ebiten.Image, levels *level.Manager, towers *tower.Manager, enemies *enemy.Manager, cam *camera.Camera) {
	screen.Fill(BackgroundColor)

	for i := 0; i < levels.SegmentCount(); i++ {
		r.drawSegment(screen, levels.Segment(i), cam.Focus)
	}

	for _, t := range towers.Towers() {
		r.drawTower(screen, t, cam.Focus)
	}

	for _, e := range enemies.Enemies() {
		r.drawEnemy(screen, e, cam.Focus)
	}
}

func (r *Renderer) drawSegment(screen *ebiten.Image, seg *level.Segment, focus geom.Vec3) {
	cfg := seg.Map.Config()
	palette := PaletteFor(cfg.Theme)
	cell := float32(config.CellSize * r.scale)

	for y := 0; y < config.GridSize; y++ {
		for x := 0; x < config.GridSize; x++ {
			center := seg.Map.WorldPosition(level.GridPoint{X: x, Y: y})
			sx, sy := r.worldToScreen(center, focus)
			vector.DrawFilledRect(screen, sx-cell/2, sy-cell/2, cell, cell, palette.Ground, false)
			if tint := ZoneTint(seg.Map.ZoneAt(x, y)); tint.A > 0 {
				vector.DrawFilledRect(screen, sx-cell/2, sy-cell/2, cell, cell, tint, false)
			}
		}
	}

	if cfg.River != nil {
		r.drawRiver(screen, seg, cfg.River, palette, focus)
	}

	r.drawPolyline(screen, seg.Map.Path(), palette.Path, 0.8, focus)
	if len(seg.Bridge) > 0 {
		r.drawPolyline(screen, seg.Bridge, palette.Bridge, 0.6, focus)
	}

	if seg.Map.HasStartPortal() {
		sx, sy := r.worldToScreen(seg.Map.StartPosition(), focus)
		vector.DrawFilledCircle(screen, sx, sy, cell*0.5, palette.StartPortal, true)
	}
	if seg.Map.HasEndPortal() {
		sx, sy := r.worldToScreen(seg.Map.EndPosition(), focus)
		vector.DrawFilledCircle(screen, sx, sy, cell*0.5, palette.EndPortal, true)
	}
}

func (r *Renderer) drawRiver(screen *ebiten.Image, seg *level.Segment, river *level.River, palette Palette, focus geom.Vec3) {
	cell := float32(config.CellSize * r.scale)
	for _, p := range river.Points {
		center := seg.Map.WorldPosition(p)
		sx, sy := r.worldToScreen(center, focus)
		h := cell
		y := sy - cell/2
		// Widen one side of the centerline, per the config's direction.
		if river.WidenDirection > 0 {
			h += cell / 2
		} else {
			y -= cell / 2
			h += cell / 2
		}
		vector.DrawFilledRect(screen, sx-cell/2, y, cell, h, palette.River, false)
	}
}

func (r *Renderer) drawPolyline(screen *ebiten.Image, points []geom.Vec3, clr color.RGBA, width float64, focus geom.Vec3) {
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := r.worldToScreen(points[i], focus)
		x1, y1 := r.worldToScreen(points[i+1], focus)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(width*r.scale), clr, true)
	}
}

func (r *Renderer) drawTower(screen *ebiten.Image, t *tower.Tower, focus geom.Vec3) {
	def := t.Definition()
	sx, sy := r.worldToScreen(t.Position, focus)
	radius := float32(def.Visuals.RadiusFactor * config.CellSize * r.scale)
	vector.DrawFilledCircle(screen, sx, sy, radius, def.Visuals.Color, true)
	vector.StrokeCircle(screen, sx, sy, radius, 2, color.RGBA{255, 255, 255, 255}, true)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *enemy.Enemy, focus geom.Vec3) {
	sx, sy := r.worldToScreen(e.Position, focus)
	radius := float32(0.6 * r.scale)
	vector.DrawFilledCircle(screen, sx, sy, radius, color.RGBA{30, 30, 30, 255}, true)

	// Health ring: shrinks as the enemy takes damage.
	frac := float64(e.Health) / float64(e.MaxHealth)
	vector.DrawFilledCircle(screen, sx, sy, radius*float32(frac), color.RGBA{200, 60, 60, 255}, true)
}
