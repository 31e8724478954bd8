package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/welltris/well"
	"github.com/plus3/welltris/well/debugui"
	debugui_ebiten "github.com/plus3/welltris/well/debugui/ebiten"
)

// Game implements ebiten.Game and draws the debug overlay for an engine.
type Game struct {
	engine       *well.Engine
	overlay      *debugui.Overlay
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.engine.Tick(0, dt)

	// ImGui widgets must be issued between BeginFrame and EndFrame
	g.imguiBackend.BeginFrame()
	g.overlay.Render(g.engine, dt)
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	game := &Game{
		engine:       well.NewEngine(well.DefaultConfig()),
		overlay:      debugui.NewOverlay(120),
		imguiBackend: debugui_ebiten.NewImguiBackend("Overlay Example", 1280, 720),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
