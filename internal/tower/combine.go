// internal/tower/combine.go
package tower

import (
	"log/slog"
	"math"

	"go-elemental-td/internal/config"
	"go-elemental-td/internal/defs"
	"go-elemental-td/internal/event"
	"go-elemental-td/pkg/geom"
)

// Roster is the tower-collection capability the combination engine needs.
// Towers() must iterate in insertion order; which eligible neighbor wins
// when several match simultaneously follows from that order and is
// implementation-defined, not a gameplay guarantee.
type Roster interface {
	Towers() []*Tower
	Add(defID string, pos geom.Vec3) *Tower
	Remove(t *Tower) bool
}

// CombinedData is the payload of a TowersCombined event.
type CombinedData struct {
	Combination defs.Combination
	Result      *Tower
	ConsumedA   *Tower
	ConsumedB   *Tower
	Cell        GridCell
}

// GridCell is the integer world cell of the placement that triggered the
// combination (floor of world coordinates, 1-unit cells).
type GridCell struct {
	X, Z int
}

// Combiner detects adjacency-based elemental combinations and atomically
// replaces a matched pair with a hybrid tower. It is invoked once per
// tower-placement event, synchronously, and mutates the roster through the
// Roster interface only.
type Combiner struct {
	roster     Roster
	dispatcher *event.Dispatcher
}

// NewCombiner creates a combination engine over the given roster.
// dispatcher may be nil (headless tests).
func NewCombiner(roster Roster, dispatcher *event.Dispatcher) *Combiner {
	return &Combiner{roster: roster, dispatcher: dispatcher}
}

// CheckForCombinations scans the towers grid-adjacent to newTower for the
// first element pair present in the combination table, combines it and
// returns true. At most one combination happens per placement, even when
// several neighbors would match. Non-elemental towers never combine.
func (c *Combiner) CheckForCombinations(newTower *Tower) bool {
	if newTower.Element == defs.ElementNone {
		return false
	}

	cell := GridCell{
		X: int(math.Floor(newTower.Position.X)),
		Z: int(math.Floor(newTower.Position.Z)),
	}

	for _, other := range c.roster.Towers() {
		if other == newTower {
			continue
		}
		if !adjacent(newTower.Position, other.Position) {
			continue
		}
		// Same-element pairs never combine; only distinct elemental pairs
		// form hybrids.
		if other.Element == defs.ElementNone || other.Element == newTower.Element {
			continue
		}
		combination, ok := defs.FindCombination(newTower.Element, other.Element)
		if !ok {
			continue
		}
		c.combine(combination, newTower, other, cell)
		return true
	}
	return false
}

// adjacent reports strict 4-neighbor adjacency on the placement grid: the
// two towers lie exactly one placement spacing apart along exactly one axis
// and zero along the other, within tolerance. Diagonals never count.
func adjacent(a, b geom.Vec3) bool {
	dx := math.Abs(a.X - b.X)
	dz := math.Abs(a.Z - b.Z)
	const tol = config.AdjacencyTolerance
	alongX := math.Abs(dx-config.TowerSpacing) <= tol && dz <= tol
	alongZ := math.Abs(dz-config.TowerSpacing) <= tol && dx <= tol
	return alongX || alongZ
}

// combine replaces the pair with the hybrid at their midpoint. Both
// originals are removed before the hybrid is inserted so the roster never
// holds two towers on one cell, even transiently.
func (c *Combiner) combine(combination defs.Combination, a, b *Tower, cell GridCell) {
	mid := geom.Midpoint(a.Position, b.Position)
	mid.Y = 0

	c.roster.Remove(a)
	c.roster.Remove(b)
	result := c.roster.Add(combination.ResultID, mid)

	slog.Debug("towers combined",
		"result", combination.ResultID,
		"elements", combination.Elements,
		"x", mid.X, "z", mid.Z)

	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{
			Type: event.TowersCombined,
			Data: CombinedData{
				Combination: combination,
				Result:      result,
				ConsumedA:   a,
				ConsumedB:   b,
				Cell:        cell,
			},
		})
	}
}
