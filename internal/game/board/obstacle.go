package board

import "github.com/cory-johannsen/hexbattle/internal/game/hex"

// ObstacleKind classifies what occupies a coordinate.
type ObstacleKind int

const (
	// Wall blocks both movement and line of sight.
	Wall ObstacleKind = iota
	// Trap blocks movement (units path around it) but not line of sight.
	Trap
	// UnitOccupied marks a coordinate held by a live unit; blocks movement only.
	UnitOccupied
)

// String returns a human-readable kind label.
func (k ObstacleKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Trap:
		return "trap"
	case UnitOccupied:
		return "unit"
	default:
		return "unknown"
	}
}

// Obstacle is one occupied coordinate. Obstacles are assembled per query by
// callers; the Grid never owns them.
type Obstacle struct {
	Coord hex.Axial
	Kind  ObstacleKind
}

// ObstacleSet is a coordinate-keyed obstacle collection. A coordinate holds
// at most one kind; later Adds overwrite earlier ones.
type ObstacleSet map[hex.Axial]ObstacleKind

// NewObstacleSet builds a set from the given obstacles.
func NewObstacleSet(obstacles ...Obstacle) ObstacleSet {
	s := make(ObstacleSet, len(obstacles))
	for _, o := range obstacles {
		s[o.Coord] = o.Kind
	}
	return s
}

// Add records an obstacle of the given kind at coord.
func (s ObstacleSet) Add(coord hex.Axial, kind ObstacleKind) {
	s[coord] = kind
}

// Has reports whether coord is obstructed by any kind.
func (s ObstacleSet) Has(coord hex.Axial) bool {
	_, ok := s[coord]
	return ok
}

// Clone returns an independent copy of the set.
func (s ObstacleSet) Clone() ObstacleSet {
	out := make(ObstacleSet, len(s))
	for c, k := range s {
		out[c] = k
	}
	return out
}

// Without returns a copy of the set with coord removed. Used when pathing
// toward a target whose own coordinate must stay reachable.
func (s ObstacleSet) Without(coord hex.Axial) ObstacleSet {
	out := s.Clone()
	delete(out, coord)
	return out
}

// OfKind returns a new set holding only obstacles of the given kind.
// Visibility queries use OfKind(Wall): walls are the only opaque kind.
func (s ObstacleSet) OfKind(kind ObstacleKind) ObstacleSet {
	out := make(ObstacleSet)
	for c, k := range s {
		if k == kind {
			out[c] = k
		}
	}
	return out
}
