// Package settings resolves the game's configuration from flags, WELLTRIS_*
// environment variables and a settings.yaml in the user config directory.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/plus3/welltris/internal/logging"
	"github.com/plus3/welltris/well"
	"github.com/spf13/viper"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Volume bounds, in the base-2 steps used by the audio mixer.
const (
	MinVolume = -10.0
	MaxVolume = 2.0
)

type Settings struct {
	// Seed fixes the piece sequence. Zero picks a time-based seed.
	Seed     uint64  `mapstructure:"seed"`
	Frontend string  `mapstructure:"frontend"`
	Audio    bool    `mapstructure:"audio"`
	Volume   float64 `mapstructure:"volume"`
	Debug    bool    `mapstructure:"debug"`
	LogLevel string  `mapstructure:"log-level"`
	LogFile  string  `mapstructure:"log-file"`

	FallInterval  time.Duration `mapstructure:"fall-interval"`
	FallStep      time.Duration `mapstructure:"fall-step"`
	FallFloor     time.Duration `mapstructure:"fall-floor"`
	ClearInterval time.Duration `mapstructure:"clear-interval"`
	LineReward    uint32        `mapstructure:"line-reward"`
}

// SetDefaults registers every key so that environment variables are seen by
// Unmarshal.
func SetDefaults(v *viper.Viper) {
	def := well.DefaultConfig()

	v.SetDefault("seed", 0)
	v.SetDefault("frontend", FrontendWindow)
	v.SetDefault("audio", true)
	v.SetDefault("volume", 0.0)
	v.SetDefault("debug", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "welltris.log")
	v.SetDefault("fall-interval", def.FallInterval)
	v.SetDefault("fall-step", def.FallStep)
	v.SetDefault("fall-floor", def.FallFloor)
	v.SetDefault("clear-interval", def.ClearInterval)
	v.SetDefault("line-reward", def.LineReward)
}

// ConfigPath returns the directory holding settings.yaml.
func ConfigPath() string {
	return configdir.LocalConfig("welltris")
}

// Load reads settings.yaml from configPath, or from ConfigPath when empty,
// layers the environment on top and decodes the result. A missing file is
// not an error.
func Load(v *viper.Viper, configPath string) (*Settings, error) {
	if configPath == "" {
		configPath = ConfigPath()
	}
	if err := configdir.MakePath(configPath); err != nil {
		return nil, fmt.Errorf("create config dir %s: %w", configPath, err)
	}

	SetDefaults(v)
	v.SetConfigName("settings")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix("WELLTRIS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects values no frontend can run with.
func (s *Settings) Validate() error {
	switch s.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", s.Frontend, FrontendWindow, FrontendTerminal)
	}

	if s.Volume < MinVolume || s.Volume > MaxVolume {
		return fmt.Errorf("volume %.1f out of range [%.0f, %.0f]", s.Volume, MinVolume, MaxVolume)
	}

	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}

	if s.FallInterval < 0 || s.FallStep < 0 || s.FallFloor < 0 || s.ClearInterval < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// EngineConfig converts the tuning keys into an engine configuration.
func (s *Settings) EngineConfig() well.Config {
	return well.Config{
		FallInterval:  s.FallInterval,
		FallStep:      s.FallStep,
		FallFloor:     s.FallFloor,
		ClearInterval: s.ClearInterval,
		LineReward:    s.LineReward,
	}
}
