package well

import (
	"image/color"
	"time"

	"github.com/rs/zerolog"
)

// Renderer receives one rectangle per visible block. Coordinates are pixels
// relative to the well's top-left corner.
type Renderer interface {
	DrawRect(x, y, w, h int, c color.RGBA)
}

// Engine owns the state of one round and advances it tick by tick.
type Engine struct {
	config    Config
	state     *RoundState
	generator *Generator
	scheduler *Scheduler
	logger    zerolog.Logger
	listeners []func(Event)
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for round events.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithGenerator sets the shape generator, letting several rounds share one
// random sequence.
func WithGenerator(g *Generator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithSeed seeds a private generator.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.generator = NewGenerator(seed)
	}
}

// WithListener subscribes fn to every event.
func WithListener(fn func(Event)) Option {
	return func(e *Engine) {
		e.listeners = append(e.listeners, fn)
	}
}

// NewEngine creates an engine with a fresh round. The tick order is fixed:
// input, gravity and lock, line clear, spawn, game over.
func NewEngine(cfg Config, opts ...Option) *Engine {
	cfg = cfg.withDefaults()

	e := &Engine{
		config: cfg,
		state:  NewRoundState(cfg),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.generator == nil {
		e.generator = NewGenerator(uint64(time.Now().UnixNano()))
	}

	e.scheduler = NewScheduler()
	e.scheduler.Register(&InputSystem{})
	e.scheduler.Register(&GravitySystem{})
	e.scheduler.Register(&LineClearSystem{Config: cfg})
	e.scheduler.Register(&SpawnSystem{Config: cfg, Generator: e.generator})
	e.scheduler.Register(&GameOverSystem{})

	return e
}

// Tick advances the round by dt with the keys pressed this frame and reports
// whether the round is over.
func (e *Engine) Tick(in Input, dt time.Duration) bool {
	if e.state.Over {
		return true
	}

	commands := e.scheduler.Once(dt, in, e.state)
	commands.Flush(e.dispatch)

	return e.state.Over
}

func (e *Engine) dispatch(ev Event) {
	switch ev.Kind {
	case EventSpawn:
		e.logger.Debug().
			Stringer("shape", ev.Piece.Shape).
			Int("column", ev.Piece.Pivot().X).
			Dur("fall_interval", e.state.FallInterval()).
			Msg("piece spawned")
	case EventLock:
		e.logger.Debug().
			Stringer("shape", ev.Piece.Shape).
			Int("stack", e.state.Stack.Len()).
			Msg("piece locked")
	case EventLineClear:
		e.logger.Debug().
			Ints("rows", ev.Rows).
			Uint32("score", ev.Score).
			Msg("rows cleared")
	case EventGameOver:
		e.logger.Debug().
			Uint32("score", ev.Score).
			Int("lines", e.state.Lines).
			Msg("stack reached the top")
	}

	for _, fn := range e.listeners {
		fn(ev)
	}
}

// SpawnShape installs a specific shape at column as the active piece,
// replacing any current one. It applies the same ramp step as a regular
// spawn.
func (e *Engine) SpawnShape(kind ShapeKind, column int) Piece {
	piece := SpawnShape(kind, column)
	e.state.install(piece, e.config)
	return piece
}

// State exposes the round state. Callers outside the tick must treat it as
// read-only.
func (e *Engine) State() *RoundState {
	return e.state
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Score returns the current score.
func (e *Engine) Score() uint32 {
	return e.state.Score
}

// Over reports whether the round has ended.
func (e *Engine) Over() bool {
	return e.state.Over
}

// Stats returns per-system timing statistics.
func (e *Engine) Stats() *SchedulerStats {
	return e.scheduler.GetStats()
}

// Draw emits the stack first, then the active piece on top.
func (e *Engine) Draw(r Renderer) {
	for _, b := range e.state.Stack.Blocks() {
		drawBlock(r, b)
	}

	if e.state.Active != nil {
		for _, b := range e.state.Active.Blocks {
			drawBlock(r, b)
		}
	}
}

func drawBlock(r Renderer, b Block) {
	rect := b.Rect()
	r.DrawRect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), b.Style)
}
