// Package vision implements line-of-sight checks between hex coordinates.
package vision

import (
	"github.com/cory-johannsen/hexbattle/internal/game/board"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// HasLineOfSight reports whether the straight line from a to b is clear of
// blockers. The line is sampled at Distance(a,b)+1 evenly spaced points in
// cube space, each rounded to its nearest hex; only interior samples are
// tested, so blockers at a or b themselves never matter.
//
// Callers curate the blocker set: for the enemy AI only Wall obstacles are
// opaque, so pass obstacles.OfKind(board.Wall).
//
// Postcondition: HasLineOfSight(a, a, anything) == true.
func HasLineOfSight(a, b hex.Axial, blockers board.ObstacleSet) bool {
	if a == b {
		return true
	}
	samples := hex.LineSamples(a, b)
	for _, s := range samples[1 : len(samples)-1] {
		if blockers.Has(s) {
			return false
		}
	}
	return true
}
