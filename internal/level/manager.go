// internal/level/manager.go
package level

import (
	"fmt"

	"go-elemental-td/internal/config"
	"go-elemental-td/internal/event"
	"go-elemental-td/internal/utils"
	"go-elemental-td/pkg/geom"
)

// Segment is the runtime pairing of a realized Map with its position in the
// chain, plus the bridge points that connect it to the previous segment.
// Segment 0 has no bridge.
type Segment struct {
	Index  int
	Map    *Map
	Bridge []geom.Vec3
}

// CameraAnimator is the camera capability the manager needs: start a
// transition toward a world point and signal its completion.
type CameraAnimator interface {
	AnimateTo(target geom.Vec3) <-chan struct{}
}

// Manager owns the ordered, append-only list of map segments and composes
// their per-segment paths into one continuous world-space route. Segments
// are never removed individually; the whole list is disposed on teardown.
//
// The manager is single-owner state: all mutation happens synchronously on
// the game loop, never concurrently.
type Manager struct {
	segments   []*Segment
	rng        *utils.PRNGService
	camera     CameraAnimator
	dispatcher *event.Dispatcher
}

// NewManager creates an empty manager. camera may be nil when no camera is
// attached (headless tests); AnimateCameraToSegment then completes
// immediately.
func NewManager(rng *utils.PRNGService, camera CameraAnimator, dispatcher *event.Dispatcher) *Manager {
	if rng == nil {
		panic("level: manager needs a PRNG service")
	}
	return &Manager{rng: rng, camera: camera, dispatcher: dispatcher}
}

// SegmentCount returns the number of segments in the chain.
func (m *Manager) SegmentCount() int { return len(m.segments) }

// Segment returns the segment at index i. Out-of-range access is a
// programming error and panics.
func (m *Manager) Segment(i int) *Segment {
	if i < 0 || i >= len(m.segments) {
		panic(fmt.Sprintf("level: segment index %d out of range [0,%d)", i, len(m.segments)))
	}
	return m.segments[i]
}

// LatestSegment returns the frontier segment. Panics on an empty chain.
func (m *Manager) LatestSegment() *Segment {
	if len(m.segments) == 0 {
		panic("level: no segments")
	}
	return m.segments[len(m.segments)-1]
}

// CreateFirstSegment realizes the authored first level at Z offset 0 and
// starts the chain with it. Calling it on a non-empty chain is a
// programming error and panics; it is deliberately not idempotent.
func (m *Manager) CreateFirstSegment() *Segment {
	if len(m.segments) != 0 {
		panic("level: first segment already created")
	}
	mp := NewMap(FirstLevel(), 0, false)
	seg := &Segment{Index: 0, Map: mp}
	m.segments = append(m.segments, seg)
	return seg
}

// GenerateNextSegment chains a new procedural segment onto the frontier:
// it reads the current last segment's exit grid position, generates a config
// continuing from it, realizes the map at the next Z pitch with its start
// portal suppressed, and records the bridge from the previous exit to the
// new entry. Callers must invoke RemoveEndPortalFromLatestSegment first so
// exactly one segment ever shows an active end portal.
func (m *Manager) GenerateNextSegment() *Segment {
	if len(m.segments) == 0 {
		panic("level: cannot extend an empty chain")
	}
	last := m.segments[len(m.segments)-1]
	index := len(m.segments)

	cfg := Generate(index-1, last.Map.EndPositionGrid().X, m.rng)
	mp := NewMap(cfg, float64(index)*config.SegmentPitch, true)
	bridge := geom.Interpolate(last.Map.EndPosition(), mp.StartPosition(), config.BridgeMaxStep)

	seg := &Segment{Index: index, Map: mp, Bridge: bridge}
	m.segments = append(m.segments, seg)

	if m.dispatcher != nil {
		m.dispatcher.Dispatch(event.Event{Type: event.SegmentAppended, Data: index})
	}
	return seg
}

// RemoveEndPortalFromLatestSegment hides the frontier segment's end portal.
// Call immediately before GenerateNextSegment.
func (m *Manager) RemoveEndPortalFromLatestSegment() {
	m.LatestSegment().Map.RemoveEndPortal()
}

// CompositePath concatenates segment 0's path and, for each subsequent
// segment, its bridge followed by its path. It is recomputed from the
// segment list on every call; the list is the single source of truth and
// segment counts stay small, so correctness wins over caching. An empty
// chain yields an empty path.
func (m *Manager) CompositePath() []geom.Vec3 {
	var path []geom.Vec3
	for _, seg := range m.segments {
		path = append(path, seg.Bridge...)
		path = append(path, seg.Map.Path()...)
	}
	return path
}

// BridgeAndSegmentPath returns only the bridge into segment i plus that
// segment's own path. Enemies already mid-flight extend their route with
// this when a segment is appended, instead of re-walking the whole
// composite path. i must address a chained segment (i >= 1).
func (m *Manager) BridgeAndSegmentPath(i int) []geom.Vec3 {
	if i < 1 || i >= len(m.segments) {
		panic(fmt.Sprintf("level: bridge path index %d out of range [1,%d)", i, len(m.segments)))
	}
	seg := m.segments[i]
	path := make([]geom.Vec3, 0, len(seg.Bridge)+len(seg.Map.Path()))
	path = append(path, seg.Bridge...)
	path = append(path, seg.Map.Path()...)
	return path
}

// SegmentForPosition returns the segment whose Z band contains pos, or nil
// when the point lies outside every band (out of bounds, or mid-bridge).
// Each segment claims [offset-pad, offset+span+pad], inclusive on both
// ends; the pad absorbs bridge geometry near the segment edges.
func (m *Manager) SegmentForPosition(pos geom.Vec3) *Segment {
	for _, seg := range m.segments {
		lo := seg.Map.ZOffset() - config.SegmentPad
		hi := seg.Map.ZOffset() + config.SegmentSpan + config.SegmentPad
		if pos.Z >= lo && pos.Z <= hi {
			return seg
		}
	}
	return nil
}

// SegmentCenter returns the world-space center of segment i's usable span.
func (m *Manager) SegmentCenter(i int) geom.Vec3 {
	seg := m.Segment(i)
	half := float64(config.GridSize-1) * config.CellSize / 2
	return geom.Vec3{X: half, Y: 0, Z: seg.Map.ZOffset() + half}
}

// AnimateCameraToSegment starts a camera transition toward segment i's
// center and returns a channel closed when the transition's fixed-duration
// animation finishes. A second call while one is in flight overwrites the
// animation target; transitions are never queued.
func (m *Manager) AnimateCameraToSegment(i int) <-chan struct{} {
	center := m.SegmentCenter(i)
	if m.camera == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return m.camera.AnimateTo(center)
}

// Dispose tears the chain down, disposing every map.
func (m *Manager) Dispose() {
	for _, seg := range m.segments {
		seg.Map.Dispose()
	}
	m.segments = nil
}
