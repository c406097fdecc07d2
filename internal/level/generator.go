// internal/level/generator.go
package level

import (
	"go-elemental-td/internal/config"
	"go-elemental-td/internal/utils"
)

// themeCycle is the deterministic theme rotation for procedural segments,
// indexed by segmentIndex mod 4 so long runs see every elemental theme.
var themeCycle = [4]Theme{ThemeFire, ThemeWater, ThemeWind, ThemeEarth}

// Generate produces the config for procedural segment segmentIndex (0-based,
// i.e. the first segment after the authored level). previousEndX is the grid
// x where the previous segment's path left the map; it is clamped internally,
// so Generate is total over its whole domain and never fails.
//
// The path is a chain of 8-12 strictly alternating moves, horizontal first,
// always entering at the top edge (y=0) and closed off to the bottom edge
// (y=19) so the next segment can chain onto it.
func Generate(segmentIndex, previousEndX int, rng *utils.PRNGService) Config {
	x := clamp(previousEndX, config.GenMinX, config.GenMaxX)
	y := 0
	waypoints := []GridPoint{{X: x, Y: 0}}

	hops := rng.Range(config.GenMinHops, config.GenMaxHops)
	horizontal := true
	for i := 0; i < hops; i++ {
		if horizontal {
			length := rng.Range(config.GenMinHorizontal, config.GenMaxHorizontal) * rng.Sign()
			next := clamp(x+length, config.GenMinX, config.GenMaxX)
			if abs(next-x) < config.GenMinHorizontalGap {
				// Clamping degenerated the move into a trivial zig; walk the
				// other way instead.
				next = clamp(x-length, config.GenMinX, config.GenMaxX)
			}
			if next != x {
				x = next
				waypoints = append(waypoints, GridPoint{X: x, Y: y})
			}
		} else {
			next := y + rng.Range(config.GenMinVertical, config.GenMaxVertical)
			if next-y < config.GenMinAdvance {
				next = y + config.GenMinAdvance
			}
			if next > config.GenMaxY {
				next = config.GenMaxY
			}
			if next != y {
				y = next
				waypoints = append(waypoints, GridPoint{X: x, Y: y})
			}
		}
		horizontal = !horizontal
	}

	// Guarantee the path reaches the bottom edge regardless of how the walk
	// terminated.
	if y < config.GridSize-1 {
		y = config.GridSize - 1
		waypoints = append(waypoints, GridPoint{X: x, Y: y})
	}

	theme := themeCycle[segmentIndex%len(themeCycle)]
	templates := themeTemplates[theme]
	template := templates[segmentIndex%len(templates)]

	var river *River
	if theme == ThemeWater || rng.Chance(config.GenRiverChance) {
		row := rng.Range(config.GenRiverMinRow, config.GenRiverMaxRow)
		points := make([]GridPoint, config.GridSize)
		for i := range points {
			points[i] = GridPoint{X: i, Y: row}
		}
		river = &River{Points: points, WidenDirection: rng.Sign()}
	}

	return Config{
		LevelNumber:      segmentIndex + 2,
		Name:             template.name,
		Theme:            theme,
		Waypoints:        waypoints,
		StartPosition:    waypoints[0],
		EndPosition:      waypoints[len(waypoints)-1],
		TerrainZoneRules: template.rules(),
		River:            river,
		MoneyBonus:       config.SegmentBonusBase + config.SegmentBonusStep*segmentIndex,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
