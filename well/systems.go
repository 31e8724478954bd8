package well

// InputSystem applies this frame's key presses to the active piece. Every
// press is one discrete operation through TryMove or TryRotate; rejected
// operations leave the piece untouched.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *Frame) {
	state := frame.State
	if state.Over || state.Active == nil {
		return
	}

	piece := *state.Active
	in := frame.Input

	if in.Pressed(KeyRotate) {
		piece, _ = TryRotate(piece, state.Stack)
	}
	if in.Pressed(KeyLeft) {
		piece, _ = TryMove(piece, -1, 0, state.Stack)
	}
	if in.Pressed(KeyRight) {
		piece, _ = TryMove(piece, 1, 0, state.Stack)
	}
	if in.Pressed(KeyDown) {
		piece, _ = TryMove(piece, 0, 1, state.Stack)
	}

	*state.Active = piece
}

// GravitySystem drives the fall timer. When it fires, a piece that cannot
// descend is locked into the stack on this same tick; otherwise it moves down
// one row.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	state := frame.State
	if state.Over || state.Active == nil {
		return
	}

	if !state.FallTimer.Advance(frame.DeltaTime) {
		return
	}

	piece := *state.Active
	if Blocked(piece, state.Stack) {
		if state.Stack.Merge(piece) {
			state.Overflowed = true
		}
		state.Active = nil
		frame.Commands.Emit(Event{Kind: EventLock, Piece: piece, Score: state.Score})
		return
	}

	moved, _ := TryMove(piece, 0, 1, state.Stack)
	*state.Active = moved
}

// LineClearSystem scans for full rows whenever the clear timer fires and
// awards Config.LineReward per removed row.
type LineClearSystem struct {
	Config Config
}

func (s *LineClearSystem) Execute(frame *Frame) {
	state := frame.State
	if state.Over {
		return
	}

	if !state.ClearTimer.Advance(frame.DeltaTime) {
		return
	}

	rows := state.Stack.ClearFullRows()
	if len(rows) == 0 {
		return
	}

	state.Lines += len(rows)
	state.Score += uint32(len(rows)) * s.Config.LineReward
	frame.Commands.Emit(Event{Kind: EventLineClear, Rows: rows, Score: state.Score})
}

// SpawnSystem installs a fresh piece whenever none is active and speeds up
// gravity by one ramp step.
type SpawnSystem struct {
	Config    Config
	Generator *Generator
}

func (s *SpawnSystem) Execute(frame *Frame) {
	state := frame.State
	if state.Over || state.Active != nil {
		return
	}

	piece, _ := s.Generator.Generate()
	state.install(piece, s.Config)
	frame.Commands.Emit(Event{Kind: EventSpawn, Piece: piece, Score: state.Score})
}

// GameOverSystem ends the round once the stack reaches the spawn row.
type GameOverSystem struct{}

func (s *GameOverSystem) Execute(frame *Frame) {
	state := frame.State
	if state.Over {
		return
	}

	if state.Stack.Top() > 0 && !state.Overflowed {
		return
	}

	state.Over = true
	frame.Commands.Emit(Event{Kind: EventGameOver, Score: state.Score})
}
