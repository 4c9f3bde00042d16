package game

// State is the snapshot of one turn. It is built by the driver from input,
// handed to the decision routine and dropped once the turn is written.
type State struct {
	attackers []Actor
	defenders []Actor
	coinsLeft int
	turn      int
}

// NewState creates a turn snapshot. The rosters are copied so later changes to
// the caller's slices do not leak into the state.
func NewState(attackers, defenders []Actor, coinsLeft, turn int) State {
	return State{
		attackers: append([]Actor(nil), attackers...),
		defenders: append([]Actor(nil), defenders...),
		coinsLeft: coinsLeft,
		turn:      turn,
	}
}

// Attackers returns the active attackers in input order.
// The returned slice is a copy.
func (s State) Attackers() []Actor {
	return append([]Actor(nil), s.attackers...)
}

// Defenders returns the active defenders in input order.
// The returned slice is a copy.
func (s State) Defenders() []Actor {
	return append([]Actor(nil), s.defenders...)
}

// NumAttackers returns the number of active attackers.
func (s State) NumAttackers() int {
	return len(s.attackers)
}

// NumDefenders returns the number of active defenders.
func (s State) NumDefenders() int {
	return len(s.defenders)
}

// CoinsLeft returns the coins remaining at the start of the turn.
func (s State) CoinsLeft() int {
	return s.coinsLeft
}

// Turn returns the 0-based turn index.
func (s State) Turn() int {
	return s.turn
}

// Next builds the state for the following turn from freshly read rosters.
func (s State) Next(attackers, defenders []Actor, coinsLeft int) State {
	return NewState(attackers, defenders, coinsLeft, s.turn+1)
}
