package well

import "time"

// Config tunes the difficulty ramp and scoring of a round.
type Config struct {
	// FallInterval is the gravity period at round start.
	FallInterval time.Duration
	// FallStep is subtracted from the gravity period on every spawn.
	FallStep time.Duration
	// FallFloor is the shortest gravity period the ramp may reach.
	FallFloor time.Duration
	// ClearInterval is the period of the full-row scan.
	ClearInterval time.Duration
	// LineReward is awarded per cleared row.
	LineReward uint32
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		FallInterval:  400 * time.Millisecond,
		FallStep:      10 * time.Millisecond,
		FallFloor:     100 * time.Millisecond,
		ClearInterval: 20 * time.Millisecond,
		LineReward:    10,
	}
}

// withDefaults fills every zero field from DefaultConfig and keeps the floor
// at or below the starting interval.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.FallInterval <= 0 {
		c.FallInterval = def.FallInterval
	}
	if c.FallStep < 0 {
		c.FallStep = 0
	}
	if c.FallFloor <= 0 {
		c.FallFloor = def.FallFloor
	}
	if c.FallFloor > c.FallInterval {
		c.FallFloor = c.FallInterval
	}
	if c.ClearInterval <= 0 {
		c.ClearInterval = def.ClearInterval
	}
	if c.LineReward == 0 {
		c.LineReward = def.LineReward
	}
	return c
}
