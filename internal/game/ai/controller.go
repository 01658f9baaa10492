package ai

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/game/board"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/game/path"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
	"github.com/cory-johannsen/hexbattle/internal/game/vision"
)

// Controller executes enemy turns over a fixed grid. It holds no per-turn
// state; every decision re-reads the live unit layout, so each step observes
// the effects of every prior step.
//
// Invariant: grid must not be nil.
type Controller struct {
	grid   *board.Grid
	logger *zap.Logger
}

// NewController constructs a Controller.
//
// Precondition: grid must not be nil. A nil logger is replaced with a no-op.
func NewController(grid *board.Grid, logger *zap.Logger) *Controller {
	if grid == nil {
		panic("ai.NewController: grid must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{grid: grid, logger: logger}
}

// RunEnemyTurn executes one full turn for actor against target and returns
// the ordered actions performed. Shared state is mutated in place as each
// action is decided: actor.Coord moves, target takes damage, action points
// drain. observe, when non-nil, is called after each action is applied, the
// yield point where a caller may run presentation side effects; a nil
// observe produces an identical final state.
//
// terrain is the static obstacle set (walls and traps). Unit occupancy is
// read from arena fresh at every step.
//
// Precondition: actor, target, and arena must not be nil.
// Postcondition: actor.AP decreases by the number of actions performed;
// the returned slice is non-nil and in execution order.
func (c *Controller) RunEnemyTurn(actor, target *unit.Unit, arena *unit.Arena, terrain board.ObstacleSet, observe func(Action)) []Action {
	if actor == nil || target == nil || arena == nil {
		panic("ai.Controller.RunEnemyTurn: actor, target, and arena must not be nil")
	}

	actor.ResetTurn()

	if !c.canAct(actor, target) {
		return []Action{}
	}

	t := &turn{
		ctrl:    c,
		actor:   actor,
		target:  target,
		arena:   arena,
		terrain: terrain,
		walls:   terrain.OfKind(board.Wall),
		observe: observe,
	}

	switch actor.Behavior {
	case unit.Ranged:
		t.runRanged()
	default:
		t.runMelee()
	}

	c.logger.Debug("enemy turn complete",
		zap.String("unit", actor.Name),
		zap.Int("unit_id", actor.ID),
		zap.Int("actions", len(t.actions)),
		zap.Int("ap_left", actor.AP),
	)
	if t.actions == nil {
		t.actions = []Action{}
	}
	return t.actions
}

// canAct checks the shared preconditions for taking any action: the actor is
// alive, the fight is still on, and at least one action point remains.
func (c *Controller) canAct(actor, target *unit.Unit) bool {
	return actor.Alive && target.Alive && actor.AP >= 1
}

// turn carries the state of a single enemy turn execution.
type turn struct {
	ctrl    *Controller
	actor   *unit.Unit
	target  *unit.Unit
	arena   *unit.Arena
	terrain board.ObstacleSet
	walls   board.ObstacleSet
	observe func(Action)
	actions []Action
}

func (t *turn) emit(a Action) {
	t.actions = append(t.actions, a)
	if t.observe != nil {
		t.observe(a)
	}
}

func (t *turn) distanceToTarget() int {
	return hex.Distance(t.actor.Coord, t.target.Coord)
}

// runMelee closes to adjacency and attacks as long as action points and the
// per-turn attack budget allow, interleaving moves and attacks freely.
func (t *turn) runMelee() {
	for t.ctrl.canAct(t.actor, t.target) {
		if t.distanceToTarget() == 1 && t.actor.CanAttack() {
			t.attack()
			continue
		}
		if !t.stepTowardTarget() {
			return
		}
	}
}

// runRanged executes the three ordered phases: approach until the target is
// in range with line of sight, fire exactly once, then fall back toward the
// preferred distance. Phases never interleave.
func (t *turn) runRanged() {
	// Approach.
	for t.ctrl.canAct(t.actor, t.target) &&
		(t.distanceToTarget() > t.actor.AttackRange || !t.hasLOS()) {
		if !t.stepTowardTarget() {
			break
		}
	}

	// Attack. A ranged unit fires at most once per turn regardless of its
	// attack budget.
	if t.ctrl.canAct(t.actor, t.target) && t.actor.CanAttack() &&
		t.distanceToTarget() <= t.actor.AttackRange && t.hasLOS() {
		t.attack()
	}

	// Retreat.
	for t.ctrl.canAct(t.actor, t.target) && t.distanceToTarget() < t.actor.PreferredDistance {
		if !t.stepAwayFromTarget() {
			return
		}
	}
}

func (t *turn) hasLOS() bool {
	return vision.HasLineOfSight(t.actor.Coord, t.target.Coord, t.walls)
}

// attack spends one action point and applies the actor's damage to the target.
func (t *turn) attack() {
	t.actor.AP--
	t.actor.AttacksUsed++
	t.target.ApplyDamage(t.actor.AttackDamage)
	t.emit(Action{Type: ActionAttack, Damage: t.actor.AttackDamage, TargetID: t.target.ID})
}

// movementObstacles assembles the obstacle set for a movement query: static
// terrain plus every other live unit. When towardTarget is set the target's
// own coordinate is excluded so a path can terminate adjacent to it.
func (t *turn) movementObstacles(towardTarget bool) board.ObstacleSet {
	var occupied board.ObstacleSet
	if towardTarget {
		occupied = t.arena.OccupiedExcept(t.actor.ID, t.target.ID)
	} else {
		occupied = t.arena.OccupiedExcept(t.actor.ID)
	}
	out := t.terrain.Clone()
	for c, k := range occupied {
		out[c] = k
	}
	return out
}

// stepTowardTarget takes one step along the current shortest path to the
// target. Returns false when no path exists or the next step is occupied by
// another live unit, which ends the caller's phase.
func (t *turn) stepTowardTarget() bool {
	p := path.Find(t.ctrl.grid, t.actor.Coord, t.target.Coord, t.movementObstacles(true))
	if len(p) == 0 {
		return false
	}
	step := p[0]
	if _, occupied := t.arena.At(step); occupied {
		return false
	}
	t.moveTo(step)
	return true
}

// stepAwayFromTarget moves to the unobstructed neighbor that most increases
// distance to the target; ties keep the first candidate in the fixed
// direction order. Returns false when no neighbor strictly improves.
func (t *turn) stepAwayFromTarget() bool {
	obstacles := t.movementObstacles(false)
	best := t.actor.Coord
	bestDist := t.distanceToTarget()
	for _, n := range t.ctrl.grid.Neighbors(t.actor.Coord) {
		if obstacles.Has(n) {
			continue
		}
		if d := hex.Distance(n, t.target.Coord); d > bestDist {
			best = n
			bestDist = d
		}
	}
	if best == t.actor.Coord {
		return false
	}
	t.moveTo(best)
	return true
}

func (t *turn) moveTo(step hex.Axial) {
	t.actor.Coord = step
	t.actor.AP--
	t.emit(Action{Type: ActionMove, To: step})
}
