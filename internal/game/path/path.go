// Package path implements A* pathfinding over the hexagonal battle grid.
package path

import (
	"container/heap"

	"github.com/cory-johannsen/hexbattle/internal/game/board"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Find computes the shortest path from start to goal over g, treating every
// coordinate in blocked as impassable. The start coordinate is always
// considered free, even if present in blocked (the mover occupies it).
//
// Edge cost is uniform 1 and the heuristic is hex distance, which is
// admissible and consistent here. Frontier nodes with equal f-score are
// expanded in insertion order so path choice is deterministic.
//
// Postcondition: returns the coordinates strictly after start, in traversal
// order and ending at goal; an empty non-nil slice when start == goal; nil
// when no path exists or start/goal is off the grid.
func Find(g *board.Grid, start, goal hex.Axial, blocked board.ObstacleSet) []hex.Axial {
	if g == nil || !g.Contains(start) || !g.Contains(goal) {
		return nil
	}
	if start == goal {
		return []hex.Axial{}
	}

	open := &frontier{}
	heap.Init(open)
	open.push(start, hex.Distance(start, goal))

	gScore := map[hex.Axial]int{start: 0}
	cameFrom := map[hex.Axial]hex.Axial{}
	closed := map[hex.Axial]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node).coord
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if cur == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, nb := range g.Neighbors(cur) {
			if closed[nb] {
				continue
			}
			// Blocked coordinates are impassable, the goal included: a caller
			// that wants to stop adjacent to an occupant removes that
			// coordinate from the set before calling. Start is never tested,
			// so the mover's own square stays free.
			if blocked.Has(nb) {
				continue
			}
			tentative := gScore[cur] + 1
			if old, seen := gScore[nb]; seen && tentative >= old {
				continue
			}
			gScore[nb] = tentative
			cameFrom[nb] = cur
			open.push(nb, tentative+hex.Distance(nb, goal))
		}
	}
	return nil
}

func reconstruct(cameFrom map[hex.Axial]hex.Axial, start, goal hex.Axial) []hex.Axial {
	var rev []hex.Axial
	for at := goal; at != start; at = cameFrom[at] {
		rev = append(rev, at)
	}
	out := make([]hex.Axial, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// node is one frontier entry. seq is a monotonically increasing insertion
// number; it breaks f-score ties in insertion order, keeping expansion
// deterministic.
type node struct {
	coord hex.Axial
	f     int
	seq   int
}

type frontier struct {
	nodes []*node
	next  int
}

func (fr *frontier) push(coord hex.Axial, f int) {
	heap.Push(fr, &node{coord: coord, f: f, seq: fr.next})
	fr.next++
}

func (fr *frontier) Len() int { return len(fr.nodes) }

func (fr *frontier) Less(i, j int) bool {
	if fr.nodes[i].f != fr.nodes[j].f {
		return fr.nodes[i].f < fr.nodes[j].f
	}
	return fr.nodes[i].seq < fr.nodes[j].seq
}

func (fr *frontier) Swap(i, j int) { fr.nodes[i], fr.nodes[j] = fr.nodes[j], fr.nodes[i] }

func (fr *frontier) Push(x any) { fr.nodes = append(fr.nodes, x.(*node)) }

func (fr *frontier) Pop() any {
	old := fr.nodes
	n := len(old)
	x := old[n-1]
	fr.nodes = old[:n-1]
	return x
}
