// Package ai implements the per-unit enemy turn state machine. It consumes
// pathfinding and visibility against the live unit layout and emits move and
// attack intents until the unit's action-point budget is exhausted or no
// progress is possible.
package ai

import (
	"fmt"

	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// ActionType discriminates the intents an enemy turn can produce.
type ActionType int

const (
	// ActionMove moves the acting unit one step to an adjacent coordinate.
	ActionMove ActionType = iota
	// ActionAttack applies the acting unit's attack damage to the target.
	ActionAttack
)

// String returns a human-readable action label.
func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Action is one discrete intent produced during an enemy turn. Actions are
// applied to shared unit state the moment they are decided; the returned
// sequence is the ordered record of what happened.
type Action struct {
	Type ActionType
	// To is the destination coordinate; meaningful for ActionMove.
	To hex.Axial
	// Damage is the damage dealt; meaningful for ActionAttack.
	Damage int
	// TargetID is the attacked unit's arena ID; meaningful for ActionAttack.
	TargetID int
}

// String renders the action for logs.
func (a Action) String() string {
	switch a.Type {
	case ActionMove:
		return fmt.Sprintf("move to (%d,%d)", a.To.Q, a.To.R)
	case ActionAttack:
		return fmt.Sprintf("attack unit %d for %d", a.TargetID, a.Damage)
	default:
		return "unknown action"
	}
}
