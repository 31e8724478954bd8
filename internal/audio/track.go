package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

type note struct {
	freq     float64 // zero is a rest
	duration time.Duration
}

// melody is one pass of the background track: a minor-key line over a
// steady pulse.
var melody = []note{
	{659.25, 400 * time.Millisecond}, {493.88, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{587.33, 400 * time.Millisecond}, {523.25, 200 * time.Millisecond}, {493.88, 200 * time.Millisecond},
	{440.00, 400 * time.Millisecond}, {440.00, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{659.25, 400 * time.Millisecond}, {587.33, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{493.88, 600 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{587.33, 400 * time.Millisecond}, {659.25, 400 * time.Millisecond},
	{523.25, 400 * time.Millisecond}, {440.00, 400 * time.Millisecond},
	{440.00, 400 * time.Millisecond}, {0, 400 * time.Millisecond},
}

// TrackGenerator synthesizes the background melody. It implements
// beep.StreamSeeker so it can be looped.
type TrackGenerator struct {
	sr     beep.SampleRate
	pos    int
	length int
	starts []int
	notes  []note
}

// NewTrackGenerator renders the melody at sample rate sr.
func NewTrackGenerator(sr beep.SampleRate) *TrackGenerator {
	g := &TrackGenerator{sr: sr, notes: melody}
	for _, n := range g.notes {
		g.starts = append(g.starts, g.length)
		g.length += sr.N(n.duration)
	}
	return g
}

func (g *TrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}

		sample := g.sampleAt(g.pos)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// sampleAt returns the amplitude at absolute sample pos.
func (g *TrackGenerator) sampleAt(pos int) float64 {
	idx := g.noteIndex(pos)
	n := g.notes[idx]
	if n.freq == 0 {
		return 0
	}

	noteLen := g.sr.N(n.duration)
	local := pos - g.starts[idx]
	t := float64(local) / float64(g.sr)

	// short attack and release keep note boundaries click-free
	edge := float64(g.sr.N(10 * time.Millisecond))
	envelope := math.Min(1, math.Min(float64(local)/edge, float64(noteLen-local)/edge))

	tone := 0.6*math.Sin(2*math.Pi*n.freq*t) + 0.25*math.Sin(2*math.Pi*n.freq*2*t)
	return 0.2 * envelope * tone
}

func (g *TrackGenerator) noteIndex(pos int) int {
	for i := len(g.starts) - 1; i > 0; i-- {
		if pos >= g.starts[i] {
			return i
		}
	}
	return 0
}

func (g *TrackGenerator) Err() error {
	return nil
}

// Len returns the number of samples in one pass.
func (g *TrackGenerator) Len() int {
	return g.length
}

func (g *TrackGenerator) Position() int {
	return g.pos
}

func (g *TrackGenerator) Seek(p int) error {
	if p < 0 || p > g.length {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, g.length)
	}
	g.pos = p
	return nil
}
