package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyCountIncrementUpToMax(t *testing.T) {
	c := NewEnemyCount(2)
	assert.True(t, c.CanSpawn())
	require.NoError(t, c.Increment())
	require.NoError(t, c.Increment())
	assert.Equal(t, 2, c.Value())
	assert.False(t, c.CanSpawn())

	err := c.Increment()
	require.ErrorIs(t, err, ErrEnemyCountOverflow)
	assert.Equal(t, 2, c.Value(), "a rejected increment must not change the count")
}

func TestEnemyCountDecrementBelowZero(t *testing.T) {
	c := NewEnemyCount(2)
	err := c.Decrement()
	require.ErrorIs(t, err, ErrEnemyCountUnderflow)
	assert.Equal(t, 0, c.Value(), "the counter must not wrap or clamp silently")

	require.NoError(t, c.Increment())
	require.NoError(t, c.Decrement())
	assert.Equal(t, 0, c.Value())
	assert.ErrorIs(t, c.Decrement(), ErrEnemyCountUnderflow)
}

func TestEnemyCountZeroMax(t *testing.T) {
	c := NewEnemyCount(0)
	assert.False(t, c.CanSpawn())
	assert.ErrorIs(t, c.Increment(), ErrEnemyCountOverflow)
	assert.Equal(t, 0, c.Max())
}
