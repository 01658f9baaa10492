package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
)

func TestUnit_ApplyDamage(t *testing.T) {
	u := unit.Unit{HP: 10, MaxHP: 10, Alive: true}
	u.ApplyDamage(4)
	assert.Equal(t, 6, u.HP)
	assert.True(t, u.Alive)

	u.ApplyDamage(10)
	assert.Equal(t, 0, u.HP, "floors at 0")
	assert.False(t, u.Alive, "0 HP implies dead")
}

func TestUnit_ApplyDamage_Property_InvariantHolds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 100).Draw(rt, "max_hp")
		dmg := rapid.IntRange(0, 300).Draw(rt, "dmg")
		u := unit.Unit{HP: maxHP, MaxHP: maxHP, Alive: true}
		u.ApplyDamage(dmg)
		assert.GreaterOrEqual(rt, u.HP, 0)
		assert.Equal(rt, u.HP > 0, u.Alive, "HP == 0 iff dead")
	})
}

func TestUnit_ResetTurn(t *testing.T) {
	u := unit.Unit{AP: 0, MaxAP: 3, AttacksUsed: 2}
	u.ResetTurn()
	assert.Equal(t, 3, u.AP)
	assert.Zero(t, u.AttacksUsed)
}

func TestUnit_CanAttack(t *testing.T) {
	u := unit.Unit{AP: 1, MaxAttacksPerTurn: 1}
	assert.True(t, u.CanAttack())
	u.AttacksUsed = 1
	assert.False(t, u.CanAttack(), "attack budget exhausted")
	u.AttacksUsed = 0
	u.AP = 0
	assert.False(t, u.CanAttack(), "no action points")
}

func TestArena_AddAssignsStableIDs(t *testing.T) {
	a := unit.NewArena()
	first, err := a.Add(&unit.Unit{Name: "grunt", Alive: true})
	require.NoError(t, err)
	second, err := a.Add(&unit.Unit{Name: "archer", Alive: true})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEmpty(t, first.UID)
	assert.NotEmpty(t, second.UID)

	got, ok := a.Get(first.ID)
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = a.Get(999)
	assert.False(t, ok)

	_, err = a.Add(nil)
	assert.Error(t, err)
}

func TestArena_LivingExcludesDead(t *testing.T) {
	a := unit.NewArena()
	alive, _ := a.Add(&unit.Unit{Name: "a", HP: 5, Alive: true})
	dead, _ := a.Add(&unit.Unit{Name: "b", HP: 5, Alive: true})
	dead.ApplyDamage(5)

	living := a.Living()
	require.Len(t, living, 1)
	assert.Same(t, alive, living[0])
}

func TestArena_OccupiedExcept(t *testing.T) {
	a := unit.NewArena()
	u1, _ := a.Add(&unit.Unit{Coord: hex.Axial{Q: 1, R: 0}, HP: 5, Alive: true})
	u2, _ := a.Add(&unit.Unit{Coord: hex.Axial{Q: 0, R: 1}, HP: 5, Alive: true})
	u3, _ := a.Add(&unit.Unit{Coord: hex.Axial{Q: 2, R: 2}, HP: 5, Alive: true})
	u3.ApplyDamage(5)

	occ := a.OccupiedExcept(u1.ID)
	assert.False(t, occ.Has(u1.Coord), "excepted unit must not appear")
	assert.True(t, occ.Has(u2.Coord))
	assert.False(t, occ.Has(u3.Coord), "dead units never obstruct")
}

func TestArena_At(t *testing.T) {
	a := unit.NewArena()
	u, _ := a.Add(&unit.Unit{Coord: hex.Axial{Q: 1, R: -1}, HP: 5, Alive: true})

	got, ok := a.At(hex.Axial{Q: 1, R: -1})
	require.True(t, ok)
	assert.Same(t, u, got)

	_, ok = a.At(hex.Axial{Q: 0, R: 0})
	assert.False(t, ok)

	u.ApplyDamage(5)
	_, ok = a.At(hex.Axial{Q: 1, R: -1})
	assert.False(t, ok, "dead units do not occupy their square")
}
