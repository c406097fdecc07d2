// internal/level/levels.go
package level

// terrainTemplate pairs a segment name with a zone-rule layout. Procedural
// generation picks from a small per-theme preference list so long runs see
// varied but theme-appropriate flavor without unbounded state.
type terrainTemplate struct {
	name  string
	rules func() []ZoneRule
}

var themeTemplates = map[Theme][]terrainTemplate{
	ThemeFire: {
		{
			name: "Scorched Ridge",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneScorched, Match: func(x, y int) bool { return (x+y)%7 < 2 }},
					{ZoneID: ZoneAsh, Match: func(x, y int) bool { return x < 3 || x > 16 }},
				}
			},
		},
		{
			name: "Cinder Flats",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneAsh, Match: func(x, y int) bool { return y%5 == 0 }},
					{ZoneID: ZoneScorched, Match: func(x, y int) bool { return x > 14 }},
				}
			},
		},
	},
	ThemeWater: {
		{
			name: "Drowned Banks",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneShore, Match: func(x, y int) bool { return x < 2 || x > 17 }},
					{ZoneID: ZoneMarsh, Match: func(x, y int) bool { return (x*y)%9 == 0 }},
				}
			},
		},
		{
			name: "Mistmeer",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneMarsh, Match: func(x, y int) bool { return y > 12 }},
					{ZoneID: ZoneShore, Match: func(x, y int) bool { return (x+2*y)%11 < 2 }},
				}
			},
		},
	},
	ThemeWind: {
		{
			name: "Howling Steppe",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneGale, Match: func(x, y int) bool { return (x+y)%6 == 0 }},
					{ZoneID: ZoneHighland, Match: func(x, y int) bool { return y < 3 }},
				}
			},
		},
		{
			name: "Kite Hills",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneHighland, Match: func(x, y int) bool { return x%7 == 0 }},
					{ZoneID: ZoneGale, Match: func(x, y int) bool { return y > 15 }},
				}
			},
		},
	},
	ThemeEarth: {
		{
			name: "Broken Quarry",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneCliff, Match: func(x, y int) bool { return x < 2 || x > 17 || y > 17 }},
					{ZoneID: ZoneRock, Match: func(x, y int) bool { return (3*x+y)%8 < 2 }},
				}
			},
		},
		{
			name: "Dust Hollow",
			rules: func() []ZoneRule {
				return []ZoneRule{
					{ZoneID: ZoneDune, Match: func(x, y int) bool { return (x+y)%5 == 0 }},
					{ZoneID: ZoneRock, Match: func(x, y int) bool { return y < 2 }},
				}
			},
		},
	},
}

// FirstLevel returns the authored config for level 1. Like every segment,
// its path enters at the top edge and leaves at the bottom edge so the next
// segment can chain onto it.
func FirstLevel() Config {
	waypoints := []GridPoint{
		{10, 0}, {10, 4}, {4, 4}, {4, 9}, {15, 9}, {15, 14}, {8, 14}, {8, 19},
	}
	return Config{
		LevelNumber:   1,
		Name:          "Green Reach",
		Theme:         ThemeNeutral,
		Waypoints:     waypoints,
		StartPosition: waypoints[0],
		EndPosition:   waypoints[len(waypoints)-1],
		TerrainZoneRules: []ZoneRule{
			{ZoneID: ZoneForest, Match: func(x, y int) bool { return x < 3 || x > 16 }},
			{ZoneID: ZoneRock, Match: func(x, y int) bool { return (x+y)%9 == 0 }},
		},
		River:      nil,
		MoneyBonus: 100,
	}
}
