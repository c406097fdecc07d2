// internal/defs/combinations.go
package defs

// Combination describes one entry of the fixed elemental combination table:
// an unordered pair of elements and the hybrid tower it produces.
type Combination struct {
	Elements    [2]ElementType // Unordered; FindCombination matches both orders.
	ResultID    string         // Tower definition ID of the resulting hybrid.
	Name        string
	Description string
}

// CombinationLibrary holds all elemental combinations. Six entries cover
// every distinct pair among {FIRE, WATER, WIND, EARTH}.
var CombinationLibrary []Combination

func init() {
	CombinationLibrary = []Combination{
		{
			Elements:    [2]ElementType{ElementFire, ElementWater},
			ResultID:    "TOWER_STEAM",
			Name:        "Steam",
			Description: "Scalding bursts that soften enemy armor.",
		},
		{
			Elements:    [2]ElementType{ElementFire, ElementEarth},
			ResultID:    "TOWER_LAVA",
			Name:        "Lava",
			Description: "Molten ground that burns everything crossing it.",
		},
		{
			Elements:    [2]ElementType{ElementWater, ElementWind},
			ResultID:    "TOWER_ICE",
			Name:        "Ice",
			Description: "Freezing gusts that lock enemies in place.",
		},
		{
			Elements:    [2]ElementType{ElementWind, ElementFire},
			ResultID:    "TOWER_STORM",
			Name:        "Storm",
			Description: "Lightning strikes that chain between enemies.",
		},
		{
			Elements:    [2]ElementType{ElementEarth, ElementWater},
			ResultID:    "TOWER_MUD",
			Name:        "Mud",
			Description: "Sucking mire that drags enemies to a crawl.",
		},
		{
			Elements:    [2]ElementType{ElementEarth, ElementWind},
			ResultID:    "TOWER_DUST",
			Name:        "Dust",
			Description: "Blinding clouds that make enemies lose the path.",
		},
	}
}

// FindCombination looks up the unordered element pair (a, b) in the
// combination table. The lookup is symmetric: (FIRE, WATER) and
// (WATER, FIRE) resolve to the same entry.
func FindCombination(a, b ElementType) (Combination, bool) {
	for _, c := range CombinationLibrary {
		if (c.Elements[0] == a && c.Elements[1] == b) ||
			(c.Elements[0] == b && c.Elements[1] == a) {
			return c, true
		}
	}
	return Combination{}, false
}
