// internal/app/game.go
package app

import (
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-elemental-td/internal/audio"
	"go-elemental-td/internal/camera"
	"go-elemental-td/internal/config"
	"go-elemental-td/internal/defs"
	"go-elemental-td/internal/enemy"
	"go-elemental-td/internal/event"
	"go-elemental-td/internal/level"
	"go-elemental-td/internal/tower"
	"go-elemental-td/internal/ui"
	"go-elemental-td/internal/utils"
	"go-elemental-td/pkg/geom"
	"go-elemental-td/pkg/render"
)

type phase int

const (
	phaseWave       phase = iota // Enemies spawning and walking
	phaseTransition              // Camera flying to the freshly appended segment
)

// Game wires the level chain, tower roster, combination engine, enemies,
// camera and presentation together. Everything runs synchronously on the
// ebiten update loop; Game is the single owner of all game state.
type Game struct {
	settings config.Settings

	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	camera     *camera.Camera
	levels     *level.Manager
	towers     *tower.Manager
	combiner   *tower.Combiner
	enemies    *enemy.Manager
	sound      *audio.Manager
	renderer   *render.Renderer
	hud        *ui.HUD

	money      int
	baseHealth int
	wave       int
	gameOver   bool

	phase      phase
	toSpawn    int
	spawnTimer float64
	cameraDone <-chan struct{}

	cooldowns   map[int]float64 // Tower ID -> seconds until next shot
	selectedDef string
}

// NewGame builds a fully wired game. Tower definitions must already be
// loaded into the definition library.
func NewGame(settings config.Settings) *Game {
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	cam := camera.New(geom.Vec3{})
	levels := level.NewManager(rng, cam, dispatcher)
	levels.CreateFirstSegment()
	cam.Focus = levels.SegmentCenter(0)

	towers := tower.NewManager(dispatcher)

	g := &Game{
		settings:    settings,
		dispatcher:  dispatcher,
		rng:         rng,
		camera:      cam,
		levels:      levels,
		towers:      towers,
		combiner:    tower.NewCombiner(towers, dispatcher),
		enemies:     enemy.NewManager(dispatcher),
		sound:       audio.NewManager(),
		renderer:    render.NewRenderer(settings.WindowWidth, settings.WindowHeight),
		hud:         ui.NewHUD(settings.WindowWidth, settings.WindowHeight),
		money:       settings.StartingMoney,
		baseHealth:  config.BaseHealth,
		cooldowns:   make(map[int]float64),
		selectedDef: "TOWER_FIRE",
	}

	if settings.AudioEnabled {
		if err := g.sound.Initialize(); err != nil {
			slog.Warn("audio disabled", "error", err)
		}
	}

	dispatcher.Subscribe(event.EnemyReachedEnd, event.ListenerFunc(g.onEnemyReachedEnd))
	dispatcher.Subscribe(event.TowersCombined, event.ListenerFunc(g.onTowersCombined))

	g.startWave()
	return g
}

func (g *Game) onEnemyReachedEnd(event.Event) {
	g.baseHealth--
	if g.baseHealth <= 0 {
		g.baseHealth = 0
		g.gameOver = true
		slog.Info("game over", "wave", g.wave)
	}
}

func (g *Game) onTowersCombined(e event.Event) {
	g.sound.PlayCombine()
	if data, ok := e.Data.(tower.CombinedData); ok {
		slog.Info("hybrid created", "result", data.Combination.Name, "cell_x", data.Cell.X, "cell_z", data.Cell.Z)
	}
}

// startWave begins the next wave over the frontier segment. Wave 1 walks
// the whole composite path (just segment 0 at that point); later waves walk
// the bridge into the frontier segment plus its path.
func (g *Game) startWave() {
	g.wave++
	frontier := g.levels.LatestSegment()
	g.toSpawn = config.EnemiesPerWave + config.EnemiesWaveGrowth*frontier.Index
	g.spawnTimer = 0
	g.phase = phaseWave
}

func (g *Game) wavePath() []geom.Vec3 {
	frontier := g.levels.LatestSegment()
	if frontier.Index == 0 {
		return g.levels.CompositePath()
	}
	return g.levels.BridgeAndSegmentPath(frontier.Index)
}

// completeSegment settles the frontier segment and chains the next one:
// bonus, portal handoff, generation, path extension for in-flight enemies,
// then a camera transition. The next wave starts on the frame the
// transition resolves.
func (g *Game) completeSegment() {
	frontier := g.levels.LatestSegment()
	bonus := frontier.Map.Config().MoneyBonus
	g.money += bonus
	g.dispatcher.Dispatch(event.Event{Type: event.SegmentCompleted, Data: frontier.Index})
	g.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: g.wave})
	slog.Info("segment completed", "index", frontier.Index, "bonus", bonus)

	g.levels.RemoveEndPortalFromLatestSegment()
	next := g.levels.GenerateNextSegment()
	g.enemies.ExtendAll(g.levels.BridgeAndSegmentPath(next.Index))

	g.cameraDone = g.levels.AnimateCameraToSegment(next.Index)
	g.phase = phaseTransition
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64) {
	g.camera.Update(dt)
	g.handleInput()

	if g.gameOver {
		return
	}

	switch g.phase {
	case phaseWave:
		g.updateSpawning(dt)
		g.enemies.Update(dt)
		g.updateCombat(dt)
		if g.toSpawn == 0 && g.enemies.Count() == 0 {
			g.completeSegment()
		}
	case phaseTransition:
		select {
		case <-g.cameraDone:
			g.startWave()
		default:
		}
	}
}

func (g *Game) updateSpawning(dt float64) {
	if g.toSpawn == 0 {
		return
	}
	g.spawnTimer -= dt
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = config.EnemySpawnInterval
	g.enemies.Spawn(g.wavePath(), config.EnemySpeed, config.EnemyHealth)
	g.toSpawn--
}

// updateCombat runs the minimal tower combat: each tower with combat stats
// shoots the first enemy in its range, applying damage and its status
// effect from the definition table.
func (g *Game) updateCombat(dt float64) {
	for id := range g.cooldowns {
		g.cooldowns[id] -= dt
	}

	for _, t := range g.towers.Towers() {
		def := t.Definition()
		if def.Combat == nil || g.cooldowns[t.ID] > 0 {
			continue
		}
		for _, e := range g.enemies.Enemies() {
			if !e.Alive() || t.Position.DistanceTo(e.Position) > def.Combat.Range {
				continue
			}
			e.Damage(def.Combat.Damage)
			g.applyStatus(def, e)
			g.cooldowns[t.ID] = 1 / def.Combat.FireRate
			break
		}
	}
}

func (g *Game) applyStatus(def defs.TowerDefinition, e *enemy.Enemy) {
	if def.Status == nil {
		return
	}
	switch def.Status.Effect {
	case defs.StatusSlow, defs.StatusMire, defs.StatusBlind:
		e.ApplySlow(def.Status.Magnitude, def.Status.Duration)
	case defs.StatusFreeze, defs.StatusRoot:
		e.ApplySlow(0, def.Status.Duration)
	case defs.StatusBurn, defs.StatusScald, defs.StatusShock:
		e.Damage(int(def.Status.Magnitude))
	}
}

func (g *Game) selectedDefinition() defs.TowerDefinition {
	return defs.TowerDefs[g.selectedDef]
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.selectedDef = "TOWER_FIRE"
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.selectedDef = "TOWER_WATER"
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.selectedDef = "TOWER_WIND"
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.selectedDef = "TOWER_EARTH"
	case inpututil.IsKeyJustPressed(ebiten.Key5):
		g.selectedDef = "TOWER_BASIC"
	}

	if g.gameOver {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		world := g.renderer.ScreenToWorld(float64(mx), float64(my), g.camera.Focus)
		g.tryPlaceTower(world)
	}
}

// tryPlaceTower snaps the click to the placement grid and places the
// selected tower if the spot is valid and affordable. A successful
// placement immediately runs the combination check.
func (g *Game) tryPlaceTower(world geom.Vec3) {
	pos := geom.Vec3{
		X: math.Round(world.X/config.TowerSpacing) * config.TowerSpacing,
		Y: 0,
		Z: math.Round(world.Z/config.TowerSpacing) * config.TowerSpacing,
	}

	if !g.canPlaceTower(pos) {
		g.sound.PlayError()
		return
	}

	def := g.selectedDefinition()
	g.money -= def.Cost
	t := g.towers.Add(def.ID, pos)
	g.sound.PlayPlace()
	g.combiner.CheckForCombinations(t)
}

func (g *Game) canPlaceTower(pos geom.Vec3) bool {
	if g.levels.SegmentForPosition(pos) == nil {
		return false
	}
	if g.towers.TowerAt(pos) != nil {
		return false
	}
	if geom.DistanceToPolyline(pos, g.levels.CompositePath()) < config.PathClearance {
		return false
	}
	return g.money >= g.selectedDefinition().Cost
}

// Draw renders the scene and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.levels, g.towers, g.enemies, g.camera)

	frontier := g.levels.LatestSegment().Map.Config()
	g.hud.Draw(screen, ui.HUDInfo{
		Money:       g.money,
		LevelNumber: frontier.LevelNumber,
		LevelName:   frontier.Name,
		Wave:        g.wave,
		BaseHealth:  g.baseHealth,
		Selected:    g.selectedDefinition().Name,
		GameOver:    g.gameOver,
	})
}

// Dispose tears down the game's resources.
func (g *Game) Dispose() {
	g.levels.Dispose()
	g.sound.Cleanup()
}

// GameOver reports whether the base has fallen.
func (g *Game) GameOver() bool { return g.gameOver }
