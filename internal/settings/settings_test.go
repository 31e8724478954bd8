package settings_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/welltris/internal/settings"
	"github.com/plus3/welltris/well"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := settings.Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, settings.FrontendWindow, s.Frontend)
	assert.True(t, s.Audio)
	assert.Equal(t, "welltris.log", s.LogFile)
	assert.Equal(t, well.DefaultConfig(), s.EngineConfig())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("frontend: terminal\nseed: 42\nfall-interval: 250ms\nline-reward: 25\naudio: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), yaml, 0o644))

	s, err := settings.Load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, settings.FrontendTerminal, s.Frontend)
	assert.Equal(t, uint64(42), s.Seed)
	assert.False(t, s.Audio)

	cfg := s.EngineConfig()
	assert.Equal(t, 250*time.Millisecond, cfg.FallInterval)
	assert.Equal(t, uint32(25), cfg.LineReward)
	assert.Equal(t, well.DefaultConfig().FallFloor, cfg.FallFloor)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("WELLTRIS_FALL_STEP", "5ms")
	t.Setenv("WELLTRIS_LOG_LEVEL", "debug")

	s, err := settings.Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5*time.Millisecond, s.FallStep)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("frontend", "terminal")
	v.Set("volume", -2.5)

	s, err := settings.Load(v, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, settings.FrontendTerminal, s.Frontend)
	assert.Equal(t, -2.5, s.Volume)
}

func TestValidate(t *testing.T) {
	valid := func() settings.Settings {
		return settings.Settings{Frontend: settings.FrontendWindow, LogLevel: "info"}
	}

	tests := []struct {
		name   string
		mutate func(*settings.Settings)
	}{
		{"unknown frontend", func(s *settings.Settings) { s.Frontend = "vr" }},
		{"volume too loud", func(s *settings.Settings) { s.Volume = 5 }},
		{"volume too quiet", func(s *settings.Settings) { s.Volume = -20 }},
		{"bad log level", func(s *settings.Settings) { s.LogLevel = "shouting" }},
		{"negative duration", func(s *settings.Settings) { s.FallStep = -time.Millisecond }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("frontend: vr\n"), 0o644))

	_, err := settings.Load(viper.New(), dir)
	assert.ErrorContains(t, err, "unknown frontend")
}
