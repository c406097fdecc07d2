// internal/defs/types.go
package defs

// ElementType is the elemental alignment of a tower. Towers with
// ElementNone (basic and hybrid towers) never take part in combinations.
type ElementType string

const (
	ElementNone  ElementType = "NONE"
	ElementFire  ElementType = "FIRE"
	ElementWater ElementType = "WATER"
	ElementWind  ElementType = "WIND"
	ElementEarth ElementType = "EARTH"
)

// TowerClass is the category of a tower definition.
type TowerClass string

const (
	ClassBasic     TowerClass = "BASIC"
	ClassElemental TowerClass = "ELEMENTAL"
	ClassHybrid    TowerClass = "HYBRID"
)

// StatusEffect names the status a tower applies on hit.
type StatusEffect string

const (
	StatusNone   StatusEffect = ""
	StatusBurn   StatusEffect = "BURN"
	StatusSlow   StatusEffect = "SLOW"
	StatusPush   StatusEffect = "PUSH"
	StatusRoot   StatusEffect = "ROOT"
	StatusScald  StatusEffect = "SCALD"
	StatusFreeze StatusEffect = "FREEZE"
	StatusShock  StatusEffect = "SHOCK"
	StatusMire   StatusEffect = "MIRE"
	StatusBlind  StatusEffect = "BLIND"
)
