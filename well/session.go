package well

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate go tool stringer -type=Mode -trimprefix=Mode

// Mode is the outer state of a Session.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// Audio plays the background track. It never influences the simulation.
type Audio interface {
	PlayLoop()
	Stop()
}

// History summarizes the rounds played by a session. It lives in memory only.
type History struct {
	Rounds    int
	LastScore uint32
	BestScore uint32
}

// Session cycles Menu → Playing → GameOver → Menu forever. GameOver is
// transient: it is entered and left within the Update that ends a round.
type Session struct {
	mode      Mode
	config    Config
	generator *Generator
	engine    *Engine
	roundID   uuid.UUID
	history   History

	audio        Audio
	logger       zerolog.Logger
	onTransition []func(from, to Mode)
	listeners    []func(Event)
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger shared by the session and its engines.
func WithSessionLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithAudio sets the background track player.
func WithAudio(a Audio) SessionOption {
	return func(s *Session) {
		s.audio = a
	}
}

// WithSessionSeed makes the sequence of pieces across all rounds
// reproducible.
func WithSessionSeed(seed uint64) SessionOption {
	return func(s *Session) {
		s.generator = NewGenerator(seed)
	}
}

// WithTransitionHook calls fn on every mode change.
func WithTransitionHook(fn func(from, to Mode)) SessionOption {
	return func(s *Session) {
		s.onTransition = append(s.onTransition, fn)
	}
}

// WithEventListener subscribes fn to the events of every round.
func WithEventListener(fn func(Event)) SessionOption {
	return func(s *Session) {
		s.listeners = append(s.listeners, fn)
	}
}

// NewSession creates a session waiting in the menu.
func NewSession(cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		mode:   ModeMenu,
		config: cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = NewGenerator(uint64(time.Now().UnixNano()))
	}
	return s
}

// Update advances the session by one frame and returns the resulting mode.
func (s *Session) Update(in Input, dt time.Duration) Mode {
	switch s.mode {
	case ModeMenu:
		if in.Pressed(KeyConfirm) {
			s.startRound()
		}
	case ModePlaying:
		if s.engine.Tick(in, dt) {
			s.endRound()
		}
	}
	return s.mode
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Engine returns the engine of the current round, or of the last finished
// round while in the menu. It is nil before the first round.
func (s *Session) Engine() *Engine {
	return s.engine
}

// RoundID identifies the current or last round in logs.
func (s *Session) RoundID() uuid.UUID {
	return s.roundID
}

// History returns the rounds played so far.
func (s *Session) History() History {
	return s.history
}

func (s *Session) startRound() {
	s.roundID = uuid.New()
	logger := s.logger.With().Str("round", s.roundID.String()).Logger()

	opts := []Option{
		WithLogger(logger),
		WithGenerator(s.generator),
	}
	for _, fn := range s.listeners {
		opts = append(opts, WithListener(fn))
	}
	s.engine = NewEngine(s.config, opts...)

	logger.Info().Msg("round started")
	if s.audio != nil {
		s.audio.PlayLoop()
	}
	s.transition(ModePlaying)
}

func (s *Session) endRound() {
	state := s.engine.State()

	s.history.Rounds++
	s.history.LastScore = state.Score
	if state.Score > s.history.BestScore {
		s.history.BestScore = state.Score
	}

	s.transition(ModeGameOver)

	if s.audio != nil {
		s.audio.Stop()
	}
	s.logger.Info().
		Str("round", s.roundID.String()).
		Uint32("score", state.Score).
		Int("lines", state.Lines).
		Int("pieces", state.Pieces).
		Msg("round over")

	s.transition(ModeMenu)
}

func (s *Session) transition(to Mode) {
	from := s.mode
	s.mode = to
	for _, fn := range s.onTransition {
		fn(from, to)
	}
}
