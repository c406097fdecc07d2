// internal/config/config.go
package config

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Segment grid. Every segment is a 20x20 grid of 2-unit cells laid out
	// back-to-back along the world Z axis at a fixed 50-unit pitch, which
	// leaves a 2-unit tolerance pad on each side of the 40-unit usable span.
	GridSize     = 20
	CellSize     = 2.0
	SegmentPitch = 50.0
	SegmentSpan  = GridSize * CellSize
	SegmentPad   = 2.0

	// Bridges between consecutive segments are interpolated at this maximum
	// step so the composite path never has a gap larger than one step.
	BridgeMaxStep = 1.5

	// Tower placement and combination.
	TowerSpacing       = 2.0 // Placement grid pitch, world units
	AdjacencyTolerance = 0.1

	// Procedural generation bounds (grid cells).
	GenMinHops          = 8
	GenMaxHops          = 12
	GenMinHorizontal    = 4
	GenMaxHorizontal    = 10
	GenMinHorizontalGap = 3 // Moves shorter than this are flipped
	GenMinVertical      = 3
	GenMaxVertical      = 6
	GenMinAdvance       = 2 // Forced minimum vertical advance
	GenMinX             = 1
	GenMaxX             = 18
	GenMaxY             = 18 // Row 19 is reserved for the closing move
	GenRiverMinRow      = 5
	GenRiverMaxRow      = 14
	GenRiverChance      = 0.5

	// Economy.
	SegmentBonusBase = 100
	SegmentBonusStep = 50

	// Placement.
	PathClearance = 1.5 // Minimum distance from a tower to the enemy path

	BaseHealth = 20

	// Camera.
	CameraTransitionDuration = 1.2 // Seconds

	// Enemies.
	EnemySpawnInterval = 0.8 // Seconds between spawns within a wave
	EnemiesPerWave     = 6
	EnemiesWaveGrowth  = 2 // Extra enemies per appended segment
	EnemySpeed         = 6.0
	EnemyHealth        = 100
)
