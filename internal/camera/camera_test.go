// internal/camera/camera_test.go
package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-elemental-td/pkg/geom"
)

func resolved(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestTransitionResolvesOnFinalFrame(t *testing.T) {
	cam := New(geom.Vec3{})
	done := cam.AnimateTo(geom.Vec3{X: 19, Z: 69})

	require.True(t, cam.Animating())

	// Advance almost to the end: not resolved yet.
	for i := 0; i < 11; i++ {
		cam.Update(0.1)
	}
	assert.False(t, resolved(done))

	cam.Update(0.2)
	assert.True(t, resolved(done))
	assert.False(t, cam.Animating())
	assert.Equal(t, geom.Vec3{X: 19, Z: 69}, cam.Focus)
}

func TestNewRequestOverwritesTarget(t *testing.T) {
	cam := New(geom.Vec3{})
	first := cam.AnimateTo(geom.Vec3{X: 10})
	cam.Update(0.3)

	second := cam.AnimateTo(geom.Vec3{X: 100})

	// The first transition was redirected, not queued: both waiters resolve
	// together when the overwritten transition finishes, at its target.
	for i := 0; i < 20; i++ {
		cam.Update(0.1)
	}
	assert.True(t, resolved(first))
	assert.True(t, resolved(second))
	assert.Equal(t, 100.0, cam.Focus.X)
}

func TestIdleCameraDoesNothing(t *testing.T) {
	cam := New(geom.Vec3{X: 5})
	cam.Update(1.0)
	assert.Equal(t, 5.0, cam.Focus.X)
	assert.False(t, cam.Animating())
}
