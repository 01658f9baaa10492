package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/game/rng"
)

func TestSeededSource_Deterministic(t *testing.T) {
	a := rng.NewSeededSource(42)
	b := rng.NewSeededSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d", i)
	}
}

func TestSources_PanicOnNonPositiveN(t *testing.T) {
	assert.Panics(t, func() { rng.NewSeededSource(1).Intn(0) })
	assert.Panics(t, func() { rng.NewCryptoSource().Intn(-1) })
}

func TestCryptoSource_InRange(t *testing.T) {
	src := rng.NewCryptoSource()
	for i := 0; i < 100; i++ {
		v := src.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestSampler_PickDistinct(t *testing.T) {
	candidates := []hex.Axial{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 0, R: 1}, {Q: 1, R: 1}, {Q: 2, R: 0}}
	s := rng.NewSampler(rng.NewSeededSource(7))

	picked, err := s.Pick(candidates, 3)
	require.NoError(t, err)
	require.Len(t, picked, 3)

	seen := make(map[hex.Axial]bool)
	valid := make(map[hex.Axial]bool)
	for _, c := range candidates {
		valid[c] = true
	}
	for _, p := range picked {
		assert.False(t, seen[p], "duplicate pick %v", p)
		assert.True(t, valid[p], "pick %v not a candidate", p)
		seen[p] = true
	}
}

func TestSampler_PickAllAndNone(t *testing.T) {
	candidates := []hex.Axial{{Q: 0, R: 0}, {Q: 1, R: 0}}
	s := rng.NewSampler(rng.NewSeededSource(1))

	all, err := s.Pick(candidates, 2)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := s.Pick(candidates, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = s.Pick(candidates, 3)
	assert.Error(t, err)
	_, err = s.Pick(candidates, -1)
	assert.Error(t, err)
}

func TestSampler_SameSeedSamePicks(t *testing.T) {
	candidates := []hex.Axial{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 0, R: 1}, {Q: -1, R: 0}, {Q: 0, R: -1}, {Q: 1, R: -1}, {Q: -1, R: 1}}

	a, err := rng.NewSampler(rng.NewSeededSource(99)).Pick(candidates, 4)
	require.NoError(t, err)
	b, err := rng.NewSampler(rng.NewSeededSource(99)).Pick(candidates, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampler_Property_AlwaysDistinct(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(rt, "n")
		k := rapid.IntRange(0, n).Draw(rt, "k")
		seed := rapid.Int64().Draw(rt, "seed")

		candidates := make([]hex.Axial, 0, n)
		for i := 0; i < n; i++ {
			candidates = append(candidates, hex.Axial{Q: i % 6, R: i / 6})
		}

		picked, err := rng.NewSampler(rng.NewSeededSource(seed)).Pick(candidates, k)
		require.NoError(rt, err)
		require.Len(rt, picked, k)
		seen := make(map[hex.Axial]bool)
		for _, p := range picked {
			assert.False(rt, seen[p])
			seen[p] = true
		}
	})
}
