// Package battle provides the turn orchestrator: it owns the grid, the unit
// arena, and the terrain obstacles for one encounter, sequences enemy turns
// strictly one at a time, and applies battle-conclusion rules.
package battle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/ai"
	"github.com/cory-johannsen/hexbattle/internal/game/board"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/game/rng"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
)

// Battle holds the live state of one encounter.
type Battle struct {
	// ID identifies this battle within an Engine.
	ID string
	// Grid is the board; immutable for the battle's lifetime.
	Grid *board.Grid
	// Arena owns every unit in the battle.
	Arena *unit.Arena
	// Terrain is the static obstacle set (walls and traps), fixed after setup.
	Terrain board.ObstacleSet
	// Round counts completed enemy-turn sweeps, starting at 0.
	Round int
	// Over is true once either side has no living units.
	Over bool
}

// NewBattle creates an empty battle on the given grid.
//
// Precondition: id must be non-empty; grid must not be nil.
func NewBattle(id string, grid *board.Grid) (*Battle, error) {
	if id == "" {
		return nil, fmt.Errorf("battle.NewBattle: id must not be empty")
	}
	if grid == nil {
		return nil, fmt.Errorf("battle.NewBattle: grid must not be nil")
	}
	return &Battle{
		ID:      id,
		Grid:    grid,
		Arena:   unit.NewArena(),
		Terrain: make(board.ObstacleSet),
	}, nil
}

// freeCoordinates returns every grid coordinate not held by terrain or a
// live unit.
func (b *Battle) freeCoordinates() []hex.Axial {
	occupied := b.Arena.OccupiedExcept()
	var out []hex.Axial
	for _, a := range b.Grid.Coordinates() {
		if !b.Terrain.Has(a) && !occupied.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// PlaceObstacles samples walls + traps distinct free coordinates and records
// them as terrain. Placement is the only randomized part of a battle; a
// fixed-seed sampler makes the whole encounter reproducible.
//
// Precondition: sampler must not be nil; walls and traps must be >= 0.
// Postcondition: exactly walls + traps coordinates are added to Terrain.
func (b *Battle) PlaceObstacles(sampler *rng.Sampler, walls, traps int) error {
	if sampler == nil {
		return fmt.Errorf("battle.PlaceObstacles: sampler must not be nil")
	}
	picked, err := sampler.Pick(b.freeCoordinates(), walls+traps)
	if err != nil {
		return fmt.Errorf("battle.PlaceObstacles: %w", err)
	}
	for i, coord := range picked {
		kind := board.Wall
		if i >= walls {
			kind = board.Trap
		}
		b.Terrain.Add(coord, kind)
	}
	return nil
}

// SpawnAt creates a unit from tmpl at coord and registers it.
//
// Precondition: coord must be a free grid coordinate.
func (b *Battle) SpawnAt(tmpl *unit.Template, kind unit.Kind, coord hex.Axial) (*unit.Unit, error) {
	if !b.Grid.Contains(coord) {
		return nil, fmt.Errorf("battle.SpawnAt: coordinate (%d,%d) is off the grid", coord.Q, coord.R)
	}
	if b.Terrain.Has(coord) {
		return nil, fmt.Errorf("battle.SpawnAt: coordinate (%d,%d) is obstructed", coord.Q, coord.R)
	}
	if _, taken := b.Arena.At(coord); taken {
		return nil, fmt.Errorf("battle.SpawnAt: coordinate (%d,%d) is occupied", coord.Q, coord.R)
	}
	return b.Arena.Add(tmpl.Spawn(kind, coord))
}

// SpawnRandom creates a unit from tmpl at a sampled free coordinate.
//
// Precondition: sampler must not be nil; at least one free coordinate exists.
func (b *Battle) SpawnRandom(tmpl *unit.Template, kind unit.Kind, sampler *rng.Sampler) (*unit.Unit, error) {
	if sampler == nil {
		return nil, fmt.Errorf("battle.SpawnRandom: sampler must not be nil")
	}
	free := b.freeCoordinates()
	if len(free) == 0 {
		return nil, fmt.Errorf("battle.SpawnRandom: no free coordinate left")
	}
	picked, err := sampler.Pick(free, 1)
	if err != nil {
		return nil, fmt.Errorf("battle.SpawnRandom: %w", err)
	}
	return b.Arena.Add(tmpl.Spawn(kind, picked[0]))
}

// Player returns the first living player unit, or nil when none remains.
func (b *Battle) Player() *unit.Unit {
	players := b.Arena.LivingOfKind(unit.KindPlayer)
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// CheckConclusion updates and returns Over: the battle ends when either side
// has no living units.
func (b *Battle) CheckConclusion() bool {
	if len(b.Arena.LivingOfKind(unit.KindPlayer)) == 0 ||
		len(b.Arena.LivingOfKind(unit.KindEnemy)) == 0 {
		b.Over = true
	}
	return b.Over
}

// TurnReport records one enemy's completed turn.
type TurnReport struct {
	UnitID  int
	Name    string
	Actions []ai.Action
}

// RunEnemyRound runs one full turn for every living enemy, strictly one at a
// time: each unit's whole action-point budget resolves before the next unit
// acts, so every decision observes the effects of every prior step. The
// round stops early if the battle concludes mid-sweep.
//
// Precondition: ctrl must not be nil.
// Postcondition: Round is incremented; returns one report per enemy that acted.
func (b *Battle) RunEnemyRound(ctrl *ai.Controller, logger *zap.Logger, observe func(ai.Action)) []TurnReport {
	if ctrl == nil {
		panic("battle.RunEnemyRound: ctrl must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	b.Round++
	var reports []TurnReport

	for _, enemy := range b.Arena.LivingOfKind(unit.KindEnemy) {
		if b.CheckConclusion() {
			break
		}
		target := b.Player()
		if target == nil {
			break
		}
		// Units that died earlier in the sweep forfeit their turn.
		if !enemy.Alive {
			continue
		}

		actions := ctrl.RunEnemyTurn(enemy, target, b.Arena, b.Terrain, observe)
		reports = append(reports, TurnReport{UnitID: enemy.ID, Name: enemy.Name, Actions: actions})

		logger.Info("enemy turn resolved",
			zap.String("battle", b.ID),
			zap.Int("round", b.Round),
			zap.String("unit", enemy.Name),
			zap.Int("unit_id", enemy.ID),
			zap.Int("actions", len(actions)),
			zap.Int("target_hp", target.HP),
		)
	}

	b.CheckConclusion()
	return reports
}
