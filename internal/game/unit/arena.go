package unit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/hexbattle/internal/game/board"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Arena owns every unit in a battle, addressed by stable integer ID so the
// AI can hold a target identifier across steps. IDs are assigned once and
// never reused within an arena.
type Arena struct {
	units  []*Unit
	byID   map[int]*Unit
	nextID int
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{byID: make(map[int]*Unit)}
}

// Add registers u, assigning its ID and UID.
//
// Precondition: u must not be nil.
// Postcondition: u.ID is unique within this arena; u.UID is non-empty.
func (a *Arena) Add(u *Unit) (*Unit, error) {
	if u == nil {
		return nil, fmt.Errorf("unit.Arena.Add: u must not be nil")
	}
	u.ID = a.nextID
	a.nextID++
	if u.UID == "" {
		u.UID = uuid.NewString()
	}
	a.units = append(a.units, u)
	a.byID[u.ID] = u
	return u, nil
}

// Get returns the unit with the given ID.
//
// Postcondition: Returns (unit, true) if found, or (nil, false) otherwise.
func (a *Arena) Get(id int) (*Unit, bool) {
	u, ok := a.byID[id]
	return u, ok
}

// Units returns all units in registration order, dead ones included.
func (a *Arena) Units() []*Unit {
	out := make([]*Unit, len(a.units))
	copy(out, a.units)
	return out
}

// Living returns all live units in registration order.
//
// Postcondition: every returned unit has Alive == true.
func (a *Arena) Living() []*Unit {
	var out []*Unit
	for _, u := range a.units {
		if u.Alive {
			out = append(out, u)
		}
	}
	return out
}

// LivingOfKind returns all live units of the given kind in registration order.
func (a *Arena) LivingOfKind(k Kind) []*Unit {
	var out []*Unit
	for _, u := range a.units {
		if u.Alive && u.Kind == k {
			out = append(out, u)
		}
	}
	return out
}

// OccupiedExcept returns the coordinates of every live unit except those
// whose IDs are listed, as UnitOccupied obstacles. This is the unit half of
// the movement obstacle set.
//
// Postcondition: no dead unit contributes a coordinate.
func (a *Arena) OccupiedExcept(exceptIDs ...int) board.ObstacleSet {
	skip := make(map[int]bool, len(exceptIDs))
	for _, id := range exceptIDs {
		skip[id] = true
	}
	out := make(board.ObstacleSet)
	for _, u := range a.units {
		if u.Alive && !skip[u.ID] {
			out.Add(u.Coord, board.UnitOccupied)
		}
	}
	return out
}

// At returns the live unit standing on coord, if any.
//
// Postcondition: Returns (unit, true) only for live units.
func (a *Arena) At(coord hex.Axial) (*Unit, bool) {
	for _, u := range a.units {
		if u.Alive && u.Coord == coord {
			return u, true
		}
	}
	return nil, false
}
