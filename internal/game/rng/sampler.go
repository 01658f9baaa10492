package rng

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Sampler picks distinct random coordinates from a candidate set. It is the
// pluggable random-position selector used for initial obstacle and spawn
// placement.
//
// Invariant: src must not be nil.
type Sampler struct {
	src Source
}

// NewSampler constructs a Sampler.
//
// Precondition: src must not be nil.
func NewSampler(src Source) *Sampler {
	if src == nil {
		panic("rng.NewSampler: src must not be nil")
	}
	return &Sampler{src: src}
}

// Pick returns k distinct coordinates drawn from candidates. Candidates are
// canonically ordered before drawing so the result depends only on the
// candidate set and the Source sequence, not on map iteration order.
//
// Precondition: 0 <= k <= len(candidates).
// Postcondition: Returns k distinct coordinates, all from candidates.
func (s *Sampler) Pick(candidates []hex.Axial, k int) ([]hex.Axial, error) {
	if k < 0 || k > len(candidates) {
		return nil, fmt.Errorf("rng.Sampler.Pick: k must be in [0, %d], got %d", len(candidates), k)
	}

	pool := make([]hex.Axial, len(candidates))
	copy(pool, candidates)
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Q != pool[j].Q {
			return pool[i].Q < pool[j].Q
		}
		return pool[i].R < pool[j].R
	})

	out := make([]hex.Axial, 0, k)
	for i := 0; i < k; i++ {
		j := s.src.Intn(len(pool))
		out = append(out, pool[j])
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out, nil
}
