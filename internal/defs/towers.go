// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
// Behavior differences between basic, elemental and hybrid towers live in
// this table rather than in per-type code.
type TowerDefinition struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Class    TowerClass   `json:"class"`
	Element  ElementType  `json:"element"`
	Cost     int          `json:"cost"`
	Combat   *CombatStats `json:"combat,omitempty"`
	Status   *StatusDef   `json:"status,omitempty"`
	Weakness ElementType  `json:"weakness,omitempty"`
	Visuals  Visuals      `json:"visuals"`
}

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage         int     `json:"damage"`
	FireRate       float64 `json:"fire_rate"` // Shots per second
	Range          float64 `json:"range"`     // World units
	TargetPriority string  `json:"target_priority,omitempty"`
}

// StatusDef describes the status effect a tower applies on hit.
type StatusDef struct {
	Effect    StatusEffect `json:"effect"`
	Magnitude float64      `json:"magnitude"`
	Duration  float64      `json:"duration"` // Seconds
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// TowerDefs is the library of all tower definitions, mapped by their ID.
var TowerDefs map[string]TowerDefinition
