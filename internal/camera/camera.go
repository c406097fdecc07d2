// internal/camera/camera.go
package camera

import (
	"go-elemental-td/internal/config"
	"go-elemental-td/pkg/geom"
)

// Camera is the single view focus point, advanced frame by frame on the
// game loop. Transitions run for a fixed duration; a request arriving while
// one is in flight overwrites the animation target (last-writer-wins),
// transitions are never queued.
type Camera struct {
	Focus geom.Vec3

	start     geom.Vec3
	target    geom.Vec3
	elapsed   float64
	duration  float64
	animating bool
	waiters   []chan struct{}
}

// New creates a camera focused on the given point.
func New(initial geom.Vec3) *Camera {
	return &Camera{Focus: initial}
}

// AnimateTo starts a transition from the current focus to target and
// returns a channel closed on the frame the transition finishes. Calling
// while a transition is in flight redirects it: earlier waiters resolve
// together with the new transition.
func (c *Camera) AnimateTo(target geom.Vec3) <-chan struct{} {
	c.start = c.Focus
	c.target = target
	c.elapsed = 0
	c.duration = config.CameraTransitionDuration
	c.animating = true

	done := make(chan struct{})
	c.waiters = append(c.waiters, done)
	return done
}

// Animating reports whether a transition is in flight.
func (c *Camera) Animating() bool { return c.animating }

// Update advances the transition by dt seconds. On the frame the final
// keyframe is reached, every pending waiter resolves.
func (c *Camera) Update(dt float64) {
	if !c.animating {
		return
	}
	c.elapsed += dt
	t := c.elapsed / c.duration
	if t >= 1 {
		c.Focus = c.target
		c.animating = false
		for _, w := range c.waiters {
			close(w)
		}
		c.waiters = nil
		return
	}
	c.Focus = geom.Lerp(c.start, c.target, smoothstep(t))
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
