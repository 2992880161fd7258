package game

import (
	"errors"
	"fmt"
)

var (
	// ErrEnemyCountOverflow is returned when a spawn would exceed the cap.
	ErrEnemyCountOverflow = errors.New("enemy count overflow")
	// ErrEnemyCountUnderflow is returned when a kill is recorded with no
	// live enemies. It means an enemy was resolved twice.
	ErrEnemyCountUnderflow = errors.New("enemy count underflow")
)

// EnemyCount tracks live enemies, 0 <= n <= Max. It never clamps: a violation
// is reported as an error so a double resolution cannot be hidden.
type EnemyCount struct {
	n   int
	max int
}

// NewEnemyCount creates a counter capped at max.
func NewEnemyCount(max int) *EnemyCount {
	return &EnemyCount{max: max}
}

// Value returns the number of live enemies.
func (c *EnemyCount) Value() int {
	return c.n
}

// Max returns the cap.
func (c *EnemyCount) Max() int {
	return c.max
}

// CanSpawn reports whether one more enemy fits under the cap.
func (c *EnemyCount) CanSpawn() bool {
	return c.n < c.max
}

// Increment records a spawned enemy.
func (c *EnemyCount) Increment() error {
	if c.n >= c.max {
		return fmt.Errorf("%w: %d live, max %d", ErrEnemyCountOverflow, c.n, c.max)
	}
	c.n++
	return nil
}

// Decrement records a destroyed enemy.
func (c *EnemyCount) Decrement() error {
	if c.n <= 0 {
		return fmt.Errorf("%w: no live enemies", ErrEnemyCountUnderflow)
	}
	c.n--
	return nil
}
