// Package audio plays the looping background track through the system
// speaker. It never reads or writes game state.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and the background track.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	track       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager playing at volume, in base-2 steps
// relative to the track's own level.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Until it succeeds every other method is a
// no-op, so the game runs silently on machines without audio.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayLoop starts the background track, looping forever. It does nothing if
// the track is already playing.
func (sm *SoundManager) PlayLoop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.track != nil && !sm.track.Paused {
		return
	}

	loop := beep.Loop(-1, NewTrackGenerator(sampleRate))
	ctrl := &beep.Ctrl{Streamer: NewVolume(loop, sm.volume), Paused: false}

	speaker.Lock()
	if sm.track != nil {
		sm.mixer.Clear()
	}
	sm.track = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop pauses the background track.
func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.track == nil {
		return
	}

	speaker.Lock()
	sm.track.Paused = true
	speaker.Unlock()
}

// Playing reports whether the background track is running.
func (sm *SoundManager) Playing() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.track != nil && !sm.track.Paused
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.track != nil {
		sm.track.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// NewVolume scales s by 2^volume. Volumes at or below -10 are silent.
func NewVolume(s beep.Streamer, volume float64) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volume,
		Silent:   volume <= -10,
	}
}
