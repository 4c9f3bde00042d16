package game

import "errors"

// ErrInternalMisuse is returned when a one-shot initialization step (grid
// acquisition or initial defender derivation) is invoked a second time.
var ErrInternalMisuse = errors.New("player tried to call an internal function, not allowed")
