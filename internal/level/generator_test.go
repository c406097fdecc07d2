// internal/level/generator_test.go
package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-elemental-td/internal/utils"
)

func TestGenerateBoundsAndEndpoints(t *testing.T) {
	rng := utils.NewPRNGService(1)

	for _, previousEndX := range []int{-100, -1, 0, 1, 9, 18, 19, 100} {
		for segmentIndex := 0; segmentIndex < 20; segmentIndex++ {
			cfg := Generate(segmentIndex, previousEndX, rng)

			require.NoError(t, cfg.Validate())
			require.GreaterOrEqual(t, len(cfg.Waypoints), 2)

			assert.GreaterOrEqual(t, cfg.StartPosition.X, 1)
			assert.LessOrEqual(t, cfg.StartPosition.X, 18)
			assert.Equal(t, 0, cfg.StartPosition.Y)
			assert.Equal(t, 19, cfg.EndPosition.Y)
			assert.Equal(t, cfg.StartPosition, cfg.Waypoints[0])
			assert.Equal(t, cfg.EndPosition, cfg.Waypoints[len(cfg.Waypoints)-1])

			for _, wp := range cfg.Waypoints {
				assert.GreaterOrEqual(t, wp.X, 1)
				assert.LessOrEqual(t, wp.X, 18)
				assert.GreaterOrEqual(t, wp.Y, 0)
				assert.LessOrEqual(t, wp.Y, 19)
			}
		}
	}
}

func TestGenerateStartClampsPreviousEndX(t *testing.T) {
	rng := utils.NewPRNGService(2)

	cfg := Generate(0, -50, rng)
	assert.Equal(t, 1, cfg.StartPosition.X)

	cfg = Generate(0, 50, rng)
	assert.Equal(t, 18, cfg.StartPosition.X)

	cfg = Generate(0, 7, rng)
	assert.Equal(t, 7, cfg.StartPosition.X)
}

// Every consecutive waypoint pair differs in exactly one axis. Moves
// strictly alternate between horizontal and vertical, except the forced
// closing move to the bottom edge, which may repeat a vertical move.
func TestGenerateWaypointAxes(t *testing.T) {
	rng := utils.NewPRNGService(3)

	for segmentIndex := 0; segmentIndex < 50; segmentIndex++ {
		cfg := Generate(segmentIndex, 9, rng)

		for i := 1; i < len(cfg.Waypoints); i++ {
			a, b := cfg.Waypoints[i-1], cfg.Waypoints[i]
			dx := a.X != b.X
			dy := a.Y != b.Y
			require.True(t, dx != dy,
				"waypoints %v -> %v must differ in exactly one axis", a, b)
		}

		// Vertical moves only ever increase y.
		for i := 1; i < len(cfg.Waypoints); i++ {
			a, b := cfg.Waypoints[i-1], cfg.Waypoints[i]
			if a.X == b.X {
				assert.Greater(t, b.Y, a.Y)
			}
		}
	}
}

func TestGenerateThemeCycle(t *testing.T) {
	rng := utils.NewPRNGService(4)

	expected := []Theme{ThemeFire, ThemeWater, ThemeWind, ThemeEarth}
	for segmentIndex := 0; segmentIndex < 16; segmentIndex++ {
		cfg := Generate(segmentIndex, 9, rng)
		assert.Equal(t, expected[segmentIndex%4], cfg.Theme)
	}
}

func TestGenerateMoneyBonusCurve(t *testing.T) {
	rng := utils.NewPRNGService(5)

	previous := -1
	for segmentIndex := 0; segmentIndex < 10; segmentIndex++ {
		cfg := Generate(segmentIndex, 9, rng)
		assert.Equal(t, 100+50*segmentIndex, cfg.MoneyBonus)
		assert.Greater(t, cfg.MoneyBonus, previous)
		previous = cfg.MoneyBonus
	}
}

func TestGenerateLevelNumbering(t *testing.T) {
	rng := utils.NewPRNGService(6)

	for segmentIndex := 0; segmentIndex < 5; segmentIndex++ {
		cfg := Generate(segmentIndex, 9, rng)
		assert.Equal(t, segmentIndex+2, cfg.LevelNumber)
	}
}

func TestGenerateWaterThemeAlwaysHasRiver(t *testing.T) {
	rng := utils.NewPRNGService(7)

	// Theme cycle puts WATER at segmentIndex % 4 == 1.
	for _, segmentIndex := range []int{1, 5, 9, 13, 17} {
		cfg := Generate(segmentIndex, 9, rng)
		require.Equal(t, ThemeWater, cfg.Theme)
		require.NotNil(t, cfg.River)
		assert.GreaterOrEqual(t, cfg.River.Points[0].Y, 5)
		assert.LessOrEqual(t, cfg.River.Points[0].Y, 14)
		assert.Contains(t, []int{-1, 1}, cfg.River.WidenDirection)
	}
}

func TestGenerateRiverSpansGridWidth(t *testing.T) {
	rng := utils.NewPRNGService(8)

	for segmentIndex := 0; segmentIndex < 40; segmentIndex++ {
		cfg := Generate(segmentIndex, 9, rng)
		if cfg.River == nil {
			continue
		}
		require.Len(t, cfg.River.Points, 20)
		row := cfg.River.Points[0].Y
		for i, p := range cfg.River.Points {
			assert.Equal(t, GridPoint{X: i, Y: row}, p)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(3, 9, utils.NewPRNGService(42))
	b := Generate(3, 9, utils.NewPRNGService(42))

	assert.Equal(t, a.Waypoints, b.Waypoints)
	assert.Equal(t, a.Theme, b.Theme)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.MoneyBonus, b.MoneyBonus)
	if a.River == nil {
		assert.Nil(t, b.River)
	} else {
		require.NotNil(t, b.River)
		assert.Equal(t, a.River.Points, b.River.Points)
		assert.Equal(t, a.River.WidenDirection, b.River.WidenDirection)
	}
}

func TestFirstLevelIsChainable(t *testing.T) {
	cfg := FirstLevel()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.LevelNumber)
	assert.Equal(t, ThemeNeutral, cfg.Theme)
	assert.Equal(t, 0, cfg.StartPosition.Y)
	assert.Equal(t, 19, cfg.EndPosition.Y)
}

func TestZoneRulesFirstMatchWins(t *testing.T) {
	cfg := Config{
		TerrainZoneRules: []ZoneRule{
			{ZoneID: ZoneRock, Match: func(x, y int) bool { return x == 0 }},
			{ZoneID: ZoneForest, Match: func(x, y int) bool { return true }},
		},
	}

	assert.Equal(t, ZoneRock, cfg.ZoneAt(0, 5))
	assert.Equal(t, ZoneForest, cfg.ZoneAt(1, 5))
}

func TestZoneDefaultsToMeadow(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, ZoneMeadow, cfg.ZoneAt(4, 4))
}
