// internal/enemy/enemy.go
package enemy

import (
	"go-elemental-td/pkg/geom"
)

// Enemy walks a polyline of world points, point to point, at its own speed.
// The path can grow while the enemy is mid-flight: when a new segment is
// appended to the level chain, the bridge and segment path are tacked onto
// every in-flight enemy.
type Enemy struct {
	ID        int
	Position  geom.Vec3
	Speed     float64
	Health    int
	MaxHealth int

	// Slow is a speed multiplier from status effects; 1 means unaffected.
	Slow      float64
	SlowTimer float64

	path       []geom.Vec3
	pathIndex  int
	reachedEnd bool
}

// New creates an enemy at the start of path, heading for its second point.
func New(id int, path []geom.Vec3, speed float64, health int) *Enemy {
	if len(path) < 2 {
		panic("enemy: path needs at least 2 points")
	}
	return &Enemy{
		ID:        id,
		Position:  path[0],
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		Slow:      1,
		path:      path,
		pathIndex: 1,
	}
}

// Update advances the enemy along its path by dt seconds.
func (e *Enemy) Update(dt float64) {
	if e.reachedEnd || !e.Alive() {
		return
	}

	if e.SlowTimer > 0 {
		e.SlowTimer -= dt
		if e.SlowTimer <= 0 {
			e.Slow = 1
		}
	}

	remaining := e.Speed * e.Slow * dt
	for remaining > 0 {
		if e.pathIndex >= len(e.path) {
			e.reachedEnd = true
			return
		}
		target := e.path[e.pathIndex]
		dist := e.Position.DistanceTo(target)
		if dist <= remaining {
			e.Position = target
			e.pathIndex++
			remaining -= dist
			continue
		}
		dir := target.Sub(e.Position).Scale(1 / dist)
		e.Position = e.Position.Add(dir.Scale(remaining))
		return
	}
}

// ExtendPath appends points to the enemy's route. An enemy that already
// reached the old end resumes walking toward the new points.
func (e *Enemy) ExtendPath(points []geom.Vec3) {
	e.path = append(e.path, points...)
	if e.reachedEnd {
		e.reachedEnd = false
	}
}

// Damage applies damage; health never goes below zero.
func (e *Enemy) Damage(amount int) {
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}

// ApplySlow sets a speed multiplier for the given duration. A stronger
// (lower) multiplier replaces a weaker one; a weaker one only refreshes the
// timer if none is active.
func (e *Enemy) ApplySlow(factor, duration float64) {
	if factor < e.Slow || e.SlowTimer <= 0 {
		e.Slow = factor
		e.SlowTimer = duration
	}
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// ReachedEnd reports whether the enemy walked off the end of its path.
func (e *Enemy) ReachedEnd() bool { return e.reachedEnd }
