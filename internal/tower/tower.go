// internal/tower/tower.go
package tower

import (
	"fmt"

	"go-elemental-td/internal/config"
	"go-elemental-td/internal/defs"
	"go-elemental-td/internal/event"
	"go-elemental-td/pkg/geom"
)

// Tower is one placed tower. Positions are grid-aligned at integer
// multiples of the placement spacing; Y is always 0 (towers are
// ground-anchored).
type Tower struct {
	ID       int
	DefID    string
	Element  defs.ElementType
	Position geom.Vec3
}

// Definition returns the tower's entry in the definition library.
func (t *Tower) Definition() defs.TowerDefinition {
	return defs.TowerDefs[t.DefID]
}

// Manager owns the tower roster. The roster is a plain insertion-ordered
// list; iteration order is insertion order, which the combination engine's
// neighbor scan relies on. All mutation happens synchronously on the game
// loop.
type Manager struct {
	towers     []*Tower
	nextID     int
	dispatcher *event.Dispatcher
}

// NewManager creates an empty roster. dispatcher may be nil (headless tests).
func NewManager(dispatcher *event.Dispatcher) *Manager {
	return &Manager{nextID: 1, dispatcher: dispatcher}
}

// Towers returns the roster in insertion order. The returned slice is the
// manager's own; callers must not mutate it.
func (m *Manager) Towers() []*Tower {
	return m.towers
}

// Add instantiates a tower of the given definition at pos (Y forced to 0)
// and appends it to the roster.
func (m *Manager) Add(defID string, pos geom.Vec3) *Tower {
	def, ok := defs.TowerDefs[defID]
	if !ok {
		panic(fmt.Sprintf("tower: unknown definition %q", defID))
	}
	pos.Y = 0
	t := &Tower{
		ID:       m.nextID,
		DefID:    def.ID,
		Element:  def.Element,
		Position: pos,
	}
	m.nextID++
	m.towers = append(m.towers, t)

	if m.dispatcher != nil {
		m.dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: t})
	}
	return t
}

// Remove deletes the tower from the roster. Returns false when the tower
// is not on the roster.
func (m *Manager) Remove(t *Tower) bool {
	for i, existing := range m.towers {
		if existing == t {
			m.towers = append(m.towers[:i], m.towers[i+1:]...)
			if m.dispatcher != nil {
				m.dispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: t})
			}
			return true
		}
	}
	return false
}

// TowerAt returns the tower occupying pos on the placement grid, or nil.
func (m *Manager) TowerAt(pos geom.Vec3) *Tower {
	for _, t := range m.towers {
		dx := t.Position.X - pos.X
		dz := t.Position.Z - pos.Z
		if dx < config.AdjacencyTolerance && dx > -config.AdjacencyTolerance &&
			dz < config.AdjacencyTolerance && dz > -config.AdjacencyTolerance {
			return t
		}
	}
	return nil
}
