// internal/level/map.go
package level

import (
	"fmt"

	"go-elemental-td/internal/config"
	"go-elemental-td/pkg/geom"
)

// Map realizes a Config into world space. A segment's grid cell (x, y) sits
// at world (x*CellSize, 0, zOffset + y*CellSize); the whole segment occupies
// a 40-unit span along Z starting at its offset.
//
// Maps are created once, never mutated after construction apart from the
// portal flags, and disposed wholesale when the manager is torn down.
type Map struct {
	cfg         Config
	zOffset     float64
	path        []geom.Vec3
	startPortal bool
	endPortal   bool
	disposed    bool
}

// NewMap realizes cfg at the given Z offset. Procedural segments suppress
// their start portal: their approach is continuous with the previous
// segment. An invalid config is a programming error and panics.
func NewMap(cfg Config, zOffset float64, suppressStartPortal bool) *Map {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("level: invalid config: %v", err))
	}

	path := make([]geom.Vec3, len(cfg.Waypoints))
	for i, wp := range cfg.Waypoints {
		path[i] = gridToWorld(wp, zOffset)
	}

	return &Map{
		cfg:         cfg,
		zOffset:     zOffset,
		path:        path,
		startPortal: !suppressStartPortal,
		endPortal:   true,
	}
}

func gridToWorld(p GridPoint, zOffset float64) geom.Vec3 {
	return geom.Vec3{
		X: float64(p.X) * config.CellSize,
		Y: 0,
		Z: zOffset + float64(p.Y)*config.CellSize,
	}
}

// Config returns the level config this map was realized from.
func (m *Map) Config() Config { return m.cfg }

// ZOffset returns the map's world-space Z offset.
func (m *Map) ZOffset() float64 { return m.zOffset }

// Path returns the segment's enemy path as world-space polyline corners.
func (m *Map) Path() []geom.Vec3 { return m.path }

// StartPosition returns the world point where enemies enter the segment.
func (m *Map) StartPosition() geom.Vec3 { return m.path[0] }

// EndPosition returns the world point where enemies leave the segment.
func (m *Map) EndPosition() geom.Vec3 { return m.path[len(m.path)-1] }

// EndPositionGrid returns the grid cell of the segment's exit point.
func (m *Map) EndPositionGrid() GridPoint { return m.cfg.EndPosition }

// WorldPosition converts a grid cell of this segment into world space.
func (m *Map) WorldPosition(p GridPoint) geom.Vec3 { return gridToWorld(p, m.zOffset) }

// ZoneAt returns the terrain zone of the cell (x, y).
func (m *Map) ZoneAt(x, y int) int { return m.cfg.ZoneAt(x, y) }

// HasStartPortal reports whether the segment shows its entry portal.
func (m *Map) HasStartPortal() bool { return m.startPortal }

// HasEndPortal reports whether the segment shows its exit portal.
func (m *Map) HasEndPortal() bool { return m.endPortal }

// RemoveEndPortal hides the exit portal. Called when the segment stops
// being the frontier of the chain.
func (m *Map) RemoveEndPortal() { m.endPortal = false }

// Dispose releases the map. Further use is a programming error.
func (m *Map) Dispose() {
	m.disposed = true
	m.path = nil
}

// Disposed reports whether Dispose has been called.
func (m *Map) Disposed() bool { return m.disposed }
