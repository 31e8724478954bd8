// Package window hosts a session in an Ebiten window, optionally with the
// Dear ImGui debug overlay on top.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/welltris/internal/host"
	"github.com/plus3/welltris/well"
	"github.com/plus3/welltris/well/debugui"
	debugui_ebiten "github.com/plus3/welltris/well/debugui/ebiten"
	"github.com/rs/zerolog"
)

const (
	Title = "Tetris"

	// sizeRatio leaves room beside and below the well for text.
	sizeRatio = 1.25
)

var (
	background  = color.RGBA{211, 211, 211, 255}
	wellColor   = color.RGBA{196, 196, 196, 255}
	panelColor  = color.RGBA{48, 48, 48, 255}
	blockBorder = color.RGBA{0, 0, 0, 96}
)

// keyBindings maps physical keys onto logical ones. Several physical keys may
// share a logical key.
var keyBindings = []struct {
	key     ebiten.Key
	logical well.Key
}{
	{ebiten.KeyArrowUp, well.KeyRotate},
	{ebiten.KeyArrowLeft, well.KeyLeft},
	{ebiten.KeyArrowRight, well.KeyRight},
	{ebiten.KeyArrowDown, well.KeyDown},
	{ebiten.KeyEnter, well.KeyConfirm},
	{ebiten.KeySpace, well.KeyConfirm},
}

// Size returns the window size in pixels.
func Size() (width, height int) {
	return int(well.CellSize * well.WellWidth * sizeRatio), int(well.CellSize * well.WellHeight * sizeRatio)
}

// ReadInput collects the logical keys whose physical key went down this
// frame.
func ReadInput(justPressed func(ebiten.Key) bool) well.Input {
	var in well.Input
	for _, b := range keyBindings {
		if justPressed(b.key) {
			in = in.With(b.logical)
		}
	}
	return in
}

// Options configures the window host.
type Options struct {
	Debug  bool
	Logger zerolog.Logger
}

// Game implements ebiten.Game around a session.
type Game struct {
	session *well.Session
	logger  zerolog.Logger

	imguiBackend *debugui_ebiten.ImguiBackend
	overlay      *debugui.Overlay
	frameTimer   *debugui.FrameTimer
}

// NewGame prepares a game for session. With opts.Debug it also creates the
// ImGui backend, which owns window creation.
func NewGame(session *well.Session, opts Options) *Game {
	g := &Game{
		session: session,
		logger:  opts.Logger,
	}

	width, height := Size()
	if opts.Debug {
		g.imguiBackend = debugui_ebiten.NewImguiBackend(Title, width, height)
		g.overlay = debugui.NewOverlay(120)
		g.frameTimer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(Title)
	}

	return g
}

// Run blocks until the window is closed or Escape is pressed.
func Run(session *well.Session, opts Options) error {
	game := NewGame(session, opts)
	opts.Logger.Info().Bool("debug", opts.Debug).Msg("window host started")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())

	var in well.Input
	if g.overlay == nil || !g.overlay.Input().WantCaptureKeyboard {
		in = ReadInput(inpututil.IsKeyJustPressed)
	}
	g.session.Update(in, dt)

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		g.overlay.Render(g.session.Engine(), g.frameTimer.Delta())
		g.imguiBackend.EndFrame()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	wellW := float32(well.CellSize * well.WellWidth)
	wellH := float32(well.CellSize * well.WellHeight)
	vector.DrawFilledRect(screen, 0, 0, wellW, wellH, wellColor, false)

	engine := g.session.Engine()
	if engine != nil {
		engine.Draw(&screenRenderer{dst: screen})
	}

	width, height := Size()
	vector.DrawFilledRect(screen, 0, wellH, float32(width), float32(height)-wellH, panelColor, false)
	lines := append(host.StatusLines(g.session), "Esc to quit")
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, int(wellH)+10+i*16)
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return Size()
}

type screenRenderer struct {
	dst *ebiten.Image
}

func (r *screenRenderer) DrawRect(x, y, w, h int, c color.RGBA) {
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(r.dst, fx, fy, fw, fh, c, false)
	vector.StrokeRect(r.dst, fx, fy, fw, fh, 1, blockBorder, false)
}
