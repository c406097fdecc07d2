// internal/enemy/manager.go
package enemy

import (
	"go-elemental-td/internal/event"
	"go-elemental-td/pkg/geom"
)

// Manager owns all live enemies. Like the tower roster, it is single-owner
// state mutated only on the game loop.
type Manager struct {
	enemies    []*Enemy
	nextID     int
	dispatcher *event.Dispatcher
}

// NewManager creates an empty enemy manager. dispatcher may be nil.
func NewManager(dispatcher *event.Dispatcher) *Manager {
	return &Manager{nextID: 1, dispatcher: dispatcher}
}

// Spawn creates an enemy at the start of path and registers it.
func (m *Manager) Spawn(path []geom.Vec3, speed float64, health int) *Enemy {
	e := New(m.nextID, path, speed, health)
	m.nextID++
	m.enemies = append(m.enemies, e)
	return e
}

// Enemies returns the live enemies in spawn order.
func (m *Manager) Enemies() []*Enemy { return m.enemies }

// Count returns the number of live enemies.
func (m *Manager) Count() int { return len(m.enemies) }

// ExtendAll appends the given points to every in-flight enemy's route.
// Called once per appended segment, with the bridge-and-segment path, so
// extension cost stays linear in the number of enemies.
func (m *Manager) ExtendAll(points []geom.Vec3) {
	for _, e := range m.enemies {
		e.ExtendPath(points)
	}
}

// Update advances every enemy and culls the dead and the finished,
// dispatching EnemyKilled and EnemyReachedEnd respectively.
func (m *Manager) Update(dt float64) {
	alive := m.enemies[:0]
	for _, e := range m.enemies {
		e.Update(dt)
		switch {
		case !e.Alive():
			if m.dispatcher != nil {
				m.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: e.ID})
			}
		case e.ReachedEnd():
			if m.dispatcher != nil {
				m.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: e.ID})
			}
		default:
			alive = append(alive, e)
		}
	}
	m.enemies = alive
}
