// Package registry provides a global registry for decision routine factories.
// Strategies register themselves in init() functions, allowing the driver to
// look them up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
)

// Strategy is the decision routine run once per turn.
// A strategy value lives for the whole match: anything it must remember
// between turns (a spawn cursor, say) is kept in its own fields, and the
// driver threads the same value through every turn.
type Strategy interface {
	// ID returns a unique identifier (e.g., "roundrobin").
	// Used for CLI flags, config and match records.
	ID() string

	// Description returns a one-line summary for listings.
	Description() string

	// Decide inspects the turn state and returns a fresh ledger.
	// It must not keep the ledger or the state after returning.
	Decide(st game.State, consts *core.Constants) *game.Game
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID          string
	Description string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() Strategy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from a strategy's init() function.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f

	// Get description by creating a temporary instance
	descriptions[id] = f().Description()
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new strategy by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
