// Package game holds the per-turn model handed to decision routines: actors,
// the immutable turn State, the initial Map and the Game action ledger.
package game

import (
	"fmt"

	"github.com/vovakirdan/td-bot/internal/core"
)

// Role tags an actor as attacker or defender.
// Both roles share the same shape and behavior.
type Role uint8

const (
	RoleAttacker Role = iota
	RoleDefender
)

// String returns the string representation of a role.
func (r Role) String() string {
	switch r {
	case RoleAttacker:
		return "Attacker"
	case RoleDefender:
		return "Defender"
	default:
		return "Unknown"
	}
}

// Actor is one attacker or defender as seen in a single turn.
type Actor struct {
	Role     Role
	ID       int           // Unique within its roster for the turn
	HP       int           // Current health
	Type     int           // 1-based code into the attribute table
	Position core.Position // Cell the actor occupies
}

// NewAttacker creates an attacker record.
func NewAttacker(id, hp, typ int, pos core.Position) Actor {
	return Actor{Role: RoleAttacker, ID: id, HP: hp, Type: typ, Position: pos}
}

// NewDefender creates a defender record.
func NewDefender(id, hp, typ int, pos core.Position) Actor {
	return Actor{Role: RoleDefender, ID: id, HP: hp, Type: typ, Position: pos}
}

// Attributes returns the static stats for the actor's type.
// Panics if the type code is not in the table.
func (a Actor) Attributes(table core.AttributeTable) core.Attributes {
	if a.Role == RoleDefender {
		return table.Defender(a.Type)
	}
	return table.Attacker(a.Type)
}

// String returns a short description used in logs.
func (a Actor) String() string {
	return fmt.Sprintf("%s#%d(type=%d hp=%d at %v)", a.Role, a.ID, a.Type, a.HP, a.Position)
}
