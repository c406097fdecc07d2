// internal/level/config.go
package level

import "fmt"

// Theme is the elemental flavor of a segment. It drives terrain templates,
// palettes and river presence; it has no effect on gameplay rules.
type Theme string

const (
	ThemeNeutral Theme = "NEUTRAL"
	ThemeFire    Theme = "FIRE"
	ThemeWater   Theme = "WATER"
	ThemeWind    Theme = "WIND"
	ThemeEarth   Theme = "EARTH"
)

// GridPoint is an integer cell coordinate on a segment's local 20x20 grid.
// The origin is the segment's top-left corner; y grows toward the exit edge.
type GridPoint struct {
	X, Y int
}

// ZoneRule classifies grid cells into a terrain zone. Rules are evaluated
// in order and the first match wins; unmatched cells are meadow.
type ZoneRule struct {
	ZoneID int
	Match  func(x, y int) bool
}

// Terrain zone identifiers. Cosmetic only.
const (
	ZoneMeadow = iota
	ZoneForest
	ZoneRock
	ZoneScorched
	ZoneAsh
	ZoneMarsh
	ZoneShore
	ZoneGale
	ZoneHighland
	ZoneCliff
	ZoneDune
)

// River is the centerline of a cosmetic river feature. WidenDirection
// (-1 or 1) tells the renderer which side of the centerline to widen.
type River struct {
	Points         []GridPoint
	WidenDirection int
}

// Config is the immutable description of one map segment.
type Config struct {
	LevelNumber      int // 1-indexed; procedural segments are numbered >= 2
	Name             string
	Theme            Theme
	Waypoints        []GridPoint // Enemy path polyline; first = start, last = end
	StartPosition    GridPoint
	EndPosition      GridPoint
	TerrainZoneRules []ZoneRule
	River            *River
	MoneyBonus       int
}

// Validate reports whether the config satisfies its structural invariants.
func (c Config) Validate() error {
	if len(c.Waypoints) < 2 {
		return fmt.Errorf("level %d: need at least 2 waypoints, got %d", c.LevelNumber, len(c.Waypoints))
	}
	if c.StartPosition != c.Waypoints[0] {
		return fmt.Errorf("level %d: start position %v does not match first waypoint %v", c.LevelNumber, c.StartPosition, c.Waypoints[0])
	}
	if c.EndPosition != c.Waypoints[len(c.Waypoints)-1] {
		return fmt.Errorf("level %d: end position %v does not match last waypoint %v", c.LevelNumber, c.EndPosition, c.Waypoints[len(c.Waypoints)-1])
	}
	if c.MoneyBonus < 0 {
		return fmt.Errorf("level %d: negative money bonus %d", c.LevelNumber, c.MoneyBonus)
	}
	return nil
}

// ZoneAt returns the terrain zone of the cell (x, y): the first matching
// rule in order, or meadow when nothing matches.
func (c Config) ZoneAt(x, y int) int {
	for _, rule := range c.TerrainZoneRules {
		if rule.Match(x, y) {
			return rule.ZoneID
		}
	}
	return ZoneMeadow
}
