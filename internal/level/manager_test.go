// internal/level/manager_test.go
package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-elemental-td/internal/utils"
	"go-elemental-td/pkg/geom"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(utils.NewPRNGService(42), nil, nil)
}

func TestCompositePathEmptyChain(t *testing.T) {
	m := newTestManager(t)
	assert.Empty(t, m.CompositePath())
}

func TestCompositePathSingleSegment(t *testing.T) {
	m := newTestManager(t)
	seg := m.CreateFirstSegment()

	assert.Equal(t, seg.Map.Path(), m.CompositePath())
}

func TestCreateFirstSegmentTwicePanics(t *testing.T) {
	m := newTestManager(t)
	m.CreateFirstSegment()

	assert.Panics(t, func() { m.CreateFirstSegment() })
}

func TestGenerateNextSegmentOnEmptyChainPanics(t *testing.T) {
	m := newTestManager(t)
	assert.Panics(t, func() { m.GenerateNextSegment() })
}

func TestGenerateNextSegmentChainsContinuously(t *testing.T) {
	m := newTestManager(t)
	first := m.CreateFirstSegment()
	next := m.GenerateNextSegment()

	require.Equal(t, 2, m.SegmentCount())
	assert.Equal(t, 1, next.Index)
	assert.Equal(t, 50.0, next.Map.ZOffset())

	// The new segment continues from the previous exit column.
	assert.Equal(t, first.Map.EndPositionGrid().X, next.Map.Config().StartPosition.X)

	// The bridge closes the gap exactly: it starts after the previous end
	// and lands on the new segment's entry point.
	require.NotEmpty(t, next.Bridge)
	assert.Equal(t, next.Map.StartPosition(), next.Bridge[len(next.Bridge)-1])
	assert.NotContains(t, next.Bridge, first.Map.EndPosition())

	// No two consecutive composite-path points are further apart than the
	// bridge step bound within the bridge.
	prev := first.Map.EndPosition()
	for _, p := range next.Bridge {
		assert.LessOrEqual(t, prev.DistanceTo(p), 1.5+1e-9)
		prev = p
	}
}

func TestCompositePathConcatenatesBridges(t *testing.T) {
	m := newTestManager(t)
	first := m.CreateFirstSegment()
	next := m.GenerateNextSegment()

	var expected []geom.Vec3
	expected = append(expected, first.Map.Path()...)
	expected = append(expected, next.Bridge...)
	expected = append(expected, next.Map.Path()...)

	assert.Equal(t, expected, m.CompositePath())
}

func TestBridgeAndSegmentPath(t *testing.T) {
	m := newTestManager(t)
	m.CreateFirstSegment()
	next := m.GenerateNextSegment()

	path := m.BridgeAndSegmentPath(1)

	var expected []geom.Vec3
	expected = append(expected, next.Bridge...)
	expected = append(expected, next.Map.Path()...)
	assert.Equal(t, expected, path)

	assert.Panics(t, func() { m.BridgeAndSegmentPath(0) })
	assert.Panics(t, func() { m.BridgeAndSegmentPath(2) })
}

func TestSegmentForPositionBands(t *testing.T) {
	m := newTestManager(t)
	first := m.CreateFirstSegment()

	// Inclusive at the padded band edges.
	assert.Equal(t, first, m.SegmentForPosition(geom.Vec3{Z: -2}))
	assert.Equal(t, first, m.SegmentForPosition(geom.Vec3{Z: 0}))
	assert.Equal(t, first, m.SegmentForPosition(geom.Vec3{Z: 42}))

	// Just past the pad with no next segment covering it.
	assert.Nil(t, m.SegmentForPosition(geom.Vec3{Z: 42.01}))
	assert.Nil(t, m.SegmentForPosition(geom.Vec3{Z: -2.01}))

	next := m.GenerateNextSegment()
	assert.Equal(t, next, m.SegmentForPosition(geom.Vec3{Z: 48}))
	assert.Equal(t, next, m.SegmentForPosition(geom.Vec3{Z: 92}))

	// Mid-bridge points belong to no segment.
	assert.Nil(t, m.SegmentForPosition(geom.Vec3{Z: 45}))
}

func TestPortalHandoff(t *testing.T) {
	m := newTestManager(t)
	first := m.CreateFirstSegment()

	assert.True(t, first.Map.HasStartPortal())
	assert.True(t, first.Map.HasEndPortal())

	m.RemoveEndPortalFromLatestSegment()
	next := m.GenerateNextSegment()

	assert.False(t, first.Map.HasEndPortal())
	assert.False(t, next.Map.HasStartPortal(), "chained segments suppress their start portal")
	assert.True(t, next.Map.HasEndPortal(), "the frontier segment shows the end portal")
}

func TestAnimateCameraWithoutCameraCompletesImmediately(t *testing.T) {
	m := newTestManager(t)
	m.CreateFirstSegment()

	done := m.AnimateCameraToSegment(0)
	select {
	case <-done:
	default:
		t.Fatal("expected an already-resolved completion channel")
	}
}

func TestSegmentCenter(t *testing.T) {
	m := newTestManager(t)
	m.CreateFirstSegment()
	m.GenerateNextSegment()

	center := m.SegmentCenter(1)
	assert.Equal(t, 19.0, center.X)
	assert.Equal(t, 69.0, center.Z)
}

func TestDispose(t *testing.T) {
	m := newTestManager(t)
	first := m.CreateFirstSegment()
	m.GenerateNextSegment()

	m.Dispose()

	assert.Equal(t, 0, m.SegmentCount())
	assert.True(t, first.Map.Disposed())
	assert.Empty(t, m.CompositePath())
}

func TestMapWorldRealization(t *testing.T) {
	cfg := FirstLevel()
	mp := NewMap(cfg, 50, false)

	start := mp.StartPosition()
	assert.Equal(t, float64(cfg.StartPosition.X)*2, start.X)
	assert.Equal(t, 50.0, start.Z)

	end := mp.EndPosition()
	assert.Equal(t, 50.0+19*2, end.Z)
	assert.Equal(t, cfg.EndPosition, mp.EndPositionGrid())

	require.Len(t, mp.Path(), len(cfg.Waypoints))
}

func TestNewMapRejectsInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		NewMap(Config{Waypoints: []GridPoint{{1, 0}}}, 0, false)
	})
}
