package battle

import (
	"fmt"
	"sync"

	"github.com/cory-johannsen/hexbattle/internal/game/board"
)

// Engine manages all active battles, keyed by battle ID.
// All methods are safe for concurrent use; turn execution within a battle
// remains strictly single-threaded by contract.
type Engine struct {
	mu      sync.RWMutex
	battles map[string]*Battle
}

// NewEngine creates an empty battle Engine.
//
// Postcondition: Returns a non-nil Engine ready for use.
func NewEngine() *Engine {
	return &Engine{battles: make(map[string]*Battle)}
}

// StartBattle creates and registers a new battle on the given grid.
//
// Precondition: id must be non-empty; grid must not be nil.
// Postcondition: Returns the new Battle or an error if id is already active.
func (e *Engine) StartBattle(id string, grid *board.Grid) (*Battle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.battles[id]; exists {
		return nil, fmt.Errorf("battle %q already active", id)
	}

	b, err := NewBattle(id, grid)
	if err != nil {
		return nil, err
	}
	e.battles[id] = b
	return b, nil
}

// GetBattle returns the active battle with the given ID.
//
// Postcondition: Returns (battle, true) if found, or (nil, false) otherwise.
func (e *Engine) GetBattle(id string) (*Battle, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.battles[id]
	return b, ok
}

// EndBattle removes the battle record for id.
//
// Precondition: id must be non-empty.
func (e *Engine) EndBattle(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.battles, id)
}
