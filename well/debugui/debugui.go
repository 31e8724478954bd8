// Package debugui provides an immediate-mode debug overlay for a running
// round using Dear ImGui. It only reads engine state; nothing here feeds back
// into the simulation.
package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/welltris/well"
)

// InputState tracks Dear ImGui's input capture state for the current frame.
// Hosts should not forward key presses to the game while WantCaptureKeyboard
// is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay groups the debug windows drawn on top of the game.
type Overlay struct {
	Performance *PerformanceStats
	Inspector   *RoundInspector
	Rows        *RowViewer

	input InputState
}

// NewOverlay creates an overlay keeping historyFrames frame times.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		Performance: NewPerformanceStats(historyFrames),
		Inspector:   NewRoundInspector(),
		Rows:        NewRowViewer(),
	}
}

// Render refreshes the input state and draws every window. It must be called
// between the backend's BeginFrame and EndFrame. A nil engine renders the
// performance window only.
func (o *Overlay) Render(engine *well.Engine, dt time.Duration) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	var stats *well.SchedulerStats
	if engine != nil {
		stats = engine.Stats()
	}
	o.Performance.Render(stats, dt)

	if engine == nil {
		return
	}
	o.Inspector.Render(engine.State())
	o.Rows.Render(engine.State().Stack)
}

// Input returns the capture state observed by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}
