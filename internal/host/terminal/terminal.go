// Package terminal hosts a session in a text terminal using tcell. Every
// cell of the well is drawn two columns wide so blocks look square.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/welltris/internal/host"
	"github.com/plus3/welltris/well"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTickInterval = 16 * time.Millisecond

	// cellWidth is the number of terminal columns per well cell.
	cellWidth = 2
	// originX and originY place the well inside its border.
	originX = 1
	originY = 1
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var keyBindings = map[tcell.Key]well.Key{
	tcell.KeyUp:    well.KeyRotate,
	tcell.KeyLeft:  well.KeyLeft,
	tcell.KeyRight: well.KeyRight,
	tcell.KeyDown:  well.KeyDown,
	tcell.KeyEnter: well.KeyConfirm,
}

// Options configures the terminal host.
type Options struct {
	// TickInterval is the frame period. Zero means about 60 frames per
	// second.
	TickInterval time.Duration
	Logger       zerolog.Logger
}

// Host drives a session from terminal events.
type Host struct {
	screen  tcell.Screen
	session *well.Session
	opts    Options

	// pending accumulates presses between frames. Terminals report presses
	// only, so every key event counts as one edge.
	pending well.Input
}

// New wraps an initialized screen.
func New(screen tcell.Screen, session *well.Session, opts Options) *Host {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	return &Host{
		screen:  screen,
		session: session,
		opts:    opts,
	}
}

// Run opens the terminal and plays until the user quits or ctx is done.
func Run(ctx context.Context, session *well.Session, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	opts.Logger.Info().Msg("terminal host started")
	return New(screen, session, opts).Loop(ctx)
}

// Loop runs the frame loop. It finalizes the screen before returning.
func (h *Host) Loop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer h.screen.Fini()

		ticker := time.NewTicker(h.opts.TickInterval)
		defer ticker.Stop()

		last := time.Now()
		h.Draw()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev := <-events:
				if !h.HandleEvent(ev) {
					h.opts.Logger.Info().Msg("quit requested")
					cancel()
					return nil
				}

			case now := <-ticker.C:
				h.Step(now.Sub(last))
				last = now
				h.Draw()
			}
		}
	})

	return g.Wait()
}

// HandleEvent records key presses and reports false when the user asked to
// quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			h.pending = h.pending.With(well.KeyConfirm)
			return true
		}
		if k, ok := keyBindings[ev.Key()]; ok {
			h.pending = h.pending.With(k)
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}

	return true
}

// Step advances the session by dt with the presses collected since the last
// step.
func (h *Host) Step(dt time.Duration) well.Mode {
	in := h.pending
	h.pending = 0
	return h.session.Update(in, dt)
}

// Draw renders the well, its contents and the status text.
func (h *Host) Draw() {
	h.screen.Clear()

	h.drawBorder()
	if engine := h.session.Engine(); engine != nil {
		engine.Draw(&cellRenderer{screen: h.screen})
	}

	x := originX + well.WellWidth*cellWidth + 3
	lines := append(host.StatusLines(h.session), "Esc or q to quit")
	for i, line := range lines {
		h.drawText(x, originY+i, line)
	}

	h.screen.Show()
}

func (h *Host) drawBorder() {
	right := originX + well.WellWidth*cellWidth
	bottom := originY + well.WellHeight

	for y := originY; y < bottom; y++ {
		h.screen.SetContent(originX-1, y, '│', nil, borderStyle)
		h.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX; x < right; x++ {
		h.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	h.screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	h.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (h *Host) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		h.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}

// cellRenderer maps pixel rectangles back to well cells.
type cellRenderer struct {
	screen tcell.Screen
}

func (r *cellRenderer) DrawRect(x, y, w, h int, c color.RGBA) {
	col := x / well.CellSize
	row := y / well.CellSize
	if row < 0 || row >= well.WellHeight || col < 0 || col >= well.WellWidth {
		return
	}

	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(originX+col*cellWidth+i, originY+row, ' ', nil, style)
	}
}
