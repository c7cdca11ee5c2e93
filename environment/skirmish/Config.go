package skirmish

import "fmt"

// Config represents a configuration of a Skirmish
type Config struct {
	// MaxSteps is the number of ticks after which an episode ends in a
	// draw
	MaxSteps int

	// EnemyGrowth is the number of ticks between reinforcements of the
	// enemy army
	EnemyGrowth int

	// EnemyAttackEvery is the number of ticks between enemy attacks on
	// the player's base
	EnemyAttackEvery int

	// BaseHP is the hit points of each side's base
	BaseHP int
}

// DefaultConfig returns the default Skirmish configuration
func DefaultConfig() Config {
	return Config{
		MaxSteps:         1_000,
		EnemyGrowth:      25,
		EnemyAttackEvery: 200,
		BaseHP:           100,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", c.MaxSteps)
	}
	if c.EnemyGrowth <= 0 {
		return fmt.Errorf("enemy growth must be positive, got %d",
			c.EnemyGrowth)
	}
	if c.EnemyAttackEvery <= 0 {
		return fmt.Errorf("enemy attack interval must be positive, got %d",
			c.EnemyAttackEvery)
	}
	if c.BaseHP <= 0 {
		return fmt.Errorf("base hp must be positive, got %d", c.BaseHP)
	}
	return nil
}
