package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBlock_ValidRotations(t *testing.T) {
	for r := Rotation(0); r < RotationCount; r++ {
		mb, err := NewMapBlock("core:dirt", r)
		require.NoError(t, err, "rotation %d", r)
		assert.Equal(t, r, mb.Rotation())
		assert.Equal(t, "core:dirt", mb.ID())
		assert.Equal(t, 0, mb.Damage())
	}
}

func TestMapBlock_InvalidRotations(t *testing.T) {
	for _, r := range []Rotation{-1, -100, RotationCount, RotationCount + 1, 1 << 20} {
		mb, err := NewMapBlock("core:dirt", r)
		assert.ErrorIs(t, err, ErrInvalidOrientation, "rotation %d", r)
		assert.Nil(t, mb)
	}
}

func TestMapBlock_SetRotation(t *testing.T) {
	mb, err := NewMapBlock("core:stone", 3)
	require.NoError(t, err)

	require.NoError(t, mb.SetRotation(17))
	assert.Equal(t, Rotation(17), mb.Rotation())

	assert.ErrorIs(t, mb.SetRotation(RotationCount), ErrInvalidOrientation)
	assert.ErrorIs(t, mb.SetRotation(-1), ErrInvalidOrientation)
	assert.Equal(t, Rotation(17), mb.Rotation(), "ошибка не должна менять ориентацию")
}

func TestMapBlock_Damage(t *testing.T) {
	mb, err := NewMapBlock("core:stone", 0)
	require.NoError(t, err)

	for d := 0; d <= MaxDamage; d++ {
		require.NoError(t, mb.SetDamage(d))
		assert.Equal(t, d, mb.Damage())
	}
	assert.True(t, mb.Broken())

	require.NoError(t, mb.SetDamage(42))
	for _, d := range []int{-1, MaxDamage + 1, -1000, 1 << 30} {
		assert.ErrorIs(t, mb.SetDamage(d), ErrInvalidDamage, "damage %d", d)
	}
	assert.Equal(t, 42, mb.Damage())
	assert.False(t, mb.Broken())
}

func TestMapBlock_StateRoundTrip(t *testing.T) {
	mb, err := NewMapBlock("core:cobble", 13)
	require.NoError(t, err)
	require.NoError(t, mb.SetDamage(77))

	restored, err := RestoreMapBlock(mb.State())
	require.NoError(t, err)
	assert.Equal(t, mb, restored)
	assert.Equal(t, State{ID: "core:cobble", Rotation: 13, Damage: 77}, restored.State())
}

func TestRestoreMapBlock_Rejects(t *testing.T) {
	_, err := RestoreMapBlock(State{ID: "core:dirt", Rotation: 99})
	assert.ErrorIs(t, err, ErrInvalidOrientation)

	_, err = RestoreMapBlock(State{ID: "core:dirt", Damage: MaxDamage + 1})
	assert.ErrorIs(t, err, ErrInvalidDamage)
}

func TestRotation_FacingSpin(t *testing.T) {
	for f := FacingUp; f < FacingCount; f++ {
		for s := 0; s < SpinCount; s++ {
			r, err := NewRotation(f, s)
			require.NoError(t, err)
			assert.True(t, r.Valid())
			assert.Equal(t, f, r.Facing())
			assert.Equal(t, s, r.Spin())
		}
	}

	_, err := NewRotation(FacingCount, 0)
	assert.ErrorIs(t, err, ErrInvalidOrientation)
	_, err = NewRotation(FacingUp, SpinCount)
	assert.ErrorIs(t, err, ErrInvalidOrientation)
	_, err = NewRotation(FacingUp, -1)
	assert.ErrorIs(t, err, ErrInvalidOrientation)
}
