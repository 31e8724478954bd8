package well

import "time"

// RoundState is everything a single round owns. It is created at round start
// and discarded at game over.
type RoundState struct {
	// Active is the falling piece, nil between a lock and the next spawn.
	Active *Piece
	Stack  *Stack

	Score  uint32
	Lines  int
	Pieces int

	// FallTimer's period is the current fall interval.
	FallTimer  Timer
	ClearTimer Timer

	// Overflowed is set when a piece spawned into the stack or locked with
	// blocks that could not be stored.
	Overflowed bool
	Over       bool
}

// NewRoundState creates an empty round using cfg's starting intervals.
func NewRoundState(cfg Config) *RoundState {
	cfg = cfg.withDefaults()
	return &RoundState{
		Stack:      NewStack(),
		FallTimer:  NewTimer("fall", cfg.FallInterval),
		ClearTimer: NewTimer("clear", cfg.ClearInterval),
	}
}

// FallInterval returns the current gravity period.
func (s *RoundState) FallInterval() time.Duration {
	return s.FallTimer.Period
}

// install makes p the active piece and applies one step of the difficulty
// ramp. Spawning is never refused; a piece that already overlaps the stack
// marks the round as overflowed.
func (s *RoundState) install(p Piece, cfg Config) {
	if !IsValid(p.Blocks[:], s.Stack) {
		s.Overflowed = true
	}

	next := s.FallTimer.Period - cfg.FallStep
	if next < cfg.FallFloor {
		next = cfg.FallFloor
	}
	s.FallTimer.Period = next

	s.Active = &p
	s.Pieces++
}
