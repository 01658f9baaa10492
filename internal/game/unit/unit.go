// Package unit provides the combat unit model: unit records shared by players
// and enemies, behavior tags, the arena that owns live units, and the YAML
// template table units are spawned from.
package unit

import (
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Kind distinguishes player units from enemy units.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// Behavior selects which AI turn routine an enemy unit runs.
type Behavior int

const (
	// Melee units close to distance 1 and attack as often as AP allows.
	Melee Behavior = iota
	// Ranged units approach to attack range, fire once, then fall back
	// toward their preferred distance.
	Ranged
)

// String returns a human-readable behavior label.
func (b Behavior) String() string {
	switch b {
	case Melee:
		return "melee"
	case Ranged:
		return "ranged"
	default:
		return "unknown"
	}
}

// Unit is one combatant on the board. Units are mutable and owned by the
// Arena; the AI controller borrows a read/write view of the active unit and
// read-only views of the rest.
//
// Invariant: HP == 0 implies Alive == false; a dead unit is excluded from
// obstacle sets and targeting from the moment it dies.
type Unit struct {
	// ID is the stable integer identifier assigned by the Arena.
	ID int
	// UID is a globally unique instance identifier, for logs and records.
	UID string
	// TemplateID is the source template's ID; empty for hand-built units.
	TemplateID string
	Name       string
	Kind       Kind
	Behavior   Behavior

	Coord hex.Axial

	HP    int
	MaxHP int

	AP    int
	MaxAP int

	AttackRange       int
	AttackDamage      int
	MaxAttacksPerTurn int
	AttacksUsed       int

	// PreferredDistance is the distance a Ranged unit retreats toward after
	// firing. Meaningless for Melee units.
	PreferredDistance int

	Alive bool
}

// ApplyDamage reduces HP by amount, flooring at zero. A unit reaching 0 HP
// dies immediately.
//
// Precondition: amount >= 0.
// Postcondition: HP >= 0; HP == 0 implies Alive == false.
func (u *Unit) ApplyDamage(amount int) {
	u.HP -= amount
	if u.HP <= 0 {
		u.HP = 0
		u.Alive = false
	}
}

// ResetTurn restores the unit's action-point budget and clears the per-turn
// attack counter. Called once before the unit's turn begins.
//
// Postcondition: AP == MaxAP and AttacksUsed == 0.
func (u *Unit) ResetTurn() {
	u.AP = u.MaxAP
	u.AttacksUsed = 0
}

// CanAttack reports whether the unit has both an attack and an action point
// left this turn.
func (u *Unit) CanAttack() bool {
	return u.AttacksUsed < u.MaxAttacksPerTurn && u.AP >= 1
}
