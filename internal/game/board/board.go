// Package board provides the bounded hexagonal battle grid and the obstacle
// model used by pathfinding, visibility, and the AI controller.
package board

import (
	"fmt"

	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Grid is a hexagonal board of `radius` rings around the origin coordinate.
// A Grid is immutable once constructed and safe for concurrent reads.
//
// Invariant: the valid set is {(q,r) : max(|q|,|r|,|s|) <= radius}.
type Grid struct {
	hexSize float64
	radius  int
	originX float64
	originY float64
	valid   map[hex.Axial]bool
}

// New constructs a Grid.
//
// Precondition: radius >= 1 and hexSize > 0; violations fail fast with an error.
// Postcondition: Contains(a) is true for exactly the coordinates within radius.
func New(hexSize float64, radius int, originX, originY float64) (*Grid, error) {
	if radius < 1 {
		return nil, fmt.Errorf("board.New: radius must be >= 1, got %d", radius)
	}
	if hexSize <= 0 {
		return nil, fmt.Errorf("board.New: hexSize must be > 0, got %v", hexSize)
	}

	valid := make(map[hex.Axial]bool)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			a := hex.Axial{Q: q, R: r}
			if abs(a.S()) <= radius {
				valid[a] = true
			}
		}
	}

	return &Grid{
		hexSize: hexSize,
		radius:  radius,
		originX: originX,
		originY: originY,
		valid:   valid,
	}, nil
}

// Radius returns the grid's ring radius.
func (g *Grid) Radius() int { return g.radius }

// Contains reports whether a is a valid coordinate on this grid.
func (g *Grid) Contains(a hex.Axial) bool { return g.valid[a] }

// Coordinates returns a snapshot of every valid coordinate. The returned
// slice is freshly allocated; callers may mutate it freely.
func (g *Grid) Coordinates() []hex.Axial {
	out := make([]hex.Axial, 0, len(g.valid))
	for a := range g.valid {
		out = append(out, a)
	}
	return out
}

// Neighbors returns a's adjacent coordinates that lie on the grid, preserving
// the fixed direction order of hex.Directions. The order is load-bearing for
// tie-breaks in movement selection.
//
// Postcondition: every returned coordinate satisfies Contains.
func (g *Grid) Neighbors(a hex.Axial) []hex.Axial {
	out := make([]hex.Axial, 0, 6)
	for _, n := range a.Neighbors() {
		if g.valid[n] {
			out = append(out, n)
		}
	}
	return out
}

// HexesInRange returns every valid coordinate within n steps of origin,
// origin included when valid.
//
// Precondition: n >= 0; negative n yields an empty result.
func (g *Grid) HexesInRange(origin hex.Axial, n int) []hex.Axial {
	var out []hex.Axial
	for dq := -n; dq <= n; dq++ {
		for dr := max(-n, -dq-n); dr <= min(n, -dq+n); dr++ {
			a := hex.Axial{Q: origin.Q + dq, R: origin.R + dr}
			if g.valid[a] {
				out = append(out, a)
			}
		}
	}
	return out
}

// ToPixel converts a to pixel space using the grid's hex size and origin.
func (g *Grid) ToPixel(a hex.Axial) (x, y float64) {
	return hex.ToPixel(a, g.hexSize, g.originX, g.originY)
}

// FromPixel converts a pixel position to the nearest hex and reports whether
// it lies on the grid. Out-of-grid probes are routine (pointer positions),
// so this is a sentinel result, not an error.
//
// Postcondition: ok is true iff Contains(a).
func (g *Grid) FromPixel(x, y float64) (a hex.Axial, ok bool) {
	a = hex.FromPixel(x, y, g.hexSize, g.originX, g.originY)
	return a, g.valid[a]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
