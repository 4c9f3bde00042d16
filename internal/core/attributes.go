package core

import "fmt"

// Attributes are the static stats of an attacker or defender type.
type Attributes struct {
	HP          int
	Range       int
	AttackPower int
	Speed       int
	Price       int
}

// AttributeTable maps 1-based type codes to attributes for both roles.
// It is filled once at startup and never changed afterwards.
type AttributeTable struct {
	attackers []Attributes
	defenders []Attributes
}

// NewAttributeTable builds a table from the attacker and defender rows in
// input order; row i describes type code i+1. The slices are copied.
func NewAttributeTable(attackers, defenders []Attributes) AttributeTable {
	return AttributeTable{
		attackers: append([]Attributes(nil), attackers...),
		defenders: append([]Attributes(nil), defenders...),
	}
}

// AttackerTypes returns the number of attacker types (valid codes are 1..N).
func (t AttributeTable) AttackerTypes() int {
	return len(t.attackers)
}

// DefenderTypes returns the number of defender types (valid codes are 1..N).
func (t AttributeTable) DefenderTypes() int {
	return len(t.defenders)
}

// Attacker returns the attributes of an attacker type.
// Panics if the type code is outside 1..AttackerTypes().
func (t AttributeTable) Attacker(typ int) Attributes {
	return lookup(t.attackers, typ, "attacker")
}

// Defender returns the attributes of a defender type.
// Panics if the type code is outside 1..DefenderTypes().
func (t AttributeTable) Defender(typ int) Attributes {
	return lookup(t.defenders, typ, "defender")
}

func lookup(rows []Attributes, typ int, role string) Attributes {
	if typ < 1 || typ > len(rows) {
		panic(fmt.Sprintf("core: %s type %d out of range 1..%d", role, typ, len(rows)))
	}
	return rows[typ-1]
}
