package well

import "time"

// Frame is what every system sees during one tick.
type Frame struct {
	DeltaTime time.Duration
	Input     Input
	State     *RoundState
	Commands  *Commands
}

func newFrame(dt time.Duration, in Input, state *RoundState, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Input:     in,
		State:     state,
		Commands:  commands,
	}
}
