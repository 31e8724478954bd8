package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/welltris/internal/audio"
	"github.com/plus3/welltris/internal/host/terminal"
	"github.com/plus3/welltris/internal/host/window"
	"github.com/plus3/welltris/internal/logging"
	"github.com/plus3/welltris/internal/settings"
	"github.com/plus3/welltris/well"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configDir string

	cmd := &cobra.Command{
		Use:          "welltris",
		Short:        "Falling blocks in a ten by twenty well",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(v, configDir)
			if err != nil {
				return err
			}
			return play(cmd.Context(), s, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configDir, "config-dir", "", "directory holding settings.yaml (default: user config dir)")
	flags.Uint64("seed", 0, "seed for the piece sequence, 0 for a random one")
	flags.String("frontend", settings.FrontendWindow, "where to play: window or terminal")
	flags.Bool("audio", true, "play the background track")
	flags.Float64("volume", 0, "track volume in base-2 steps, -10 mutes")
	flags.Bool("debug", false, "show the debug overlay (window frontend only)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "welltris.log", "log file, empty to disable logging")
	flags.Duration("fall-interval", well.DefaultConfig().FallInterval, "gravity period at round start")
	flags.Duration("fall-step", well.DefaultConfig().FallStep, "gravity speed-up per spawned piece")
	flags.Duration("fall-floor", well.DefaultConfig().FallFloor, "shortest gravity period")
	flags.Duration("clear-interval", well.DefaultConfig().ClearInterval, "period of the full-row scan")
	flags.Uint32("line-reward", well.DefaultConfig().LineReward, "points per cleared row")

	cobra.CheckErr(v.BindPFlags(flags))

	cmd.AddCommand(newStressCmd())
	return cmd
}

func play(ctx context.Context, s *settings.Settings, out io.Writer) error {
	logger, closer, err := logging.Open(s.LogFile, s.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := []well.SessionOption{
		well.WithSessionLogger(logger),
		well.WithTransitionHook(func(from, to well.Mode) {
			logger.Debug().Stringer("from", from).Stringer("to", to).Msg("mode changed")
		}),
	}
	if s.Seed != 0 {
		opts = append(opts, well.WithSessionSeed(s.Seed))
	}

	if s.Audio {
		sound := audio.NewSoundManager(s.Volume)
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, playing silently")
		} else {
			defer sound.Cleanup()
			opts = append(opts, well.WithAudio(sound))
		}
	}

	session := well.NewSession(s.EngineConfig(), opts...)
	logger.Info().
		Str("frontend", s.Frontend).
		Uint64("seed", s.Seed).
		Dur("fall_interval", s.FallInterval).
		Msg("starting")

	if err := runFrontend(ctx, s, session, logger); err != nil {
		return err
	}

	printSummary(out, session.History())
	return nil
}

func runFrontend(ctx context.Context, s *settings.Settings, session *well.Session, logger zerolog.Logger) error {
	switch s.Frontend {
	case settings.FrontendTerminal:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return terminal.Run(ctx, session, terminal.Options{Logger: logger})
	case settings.FrontendWindow:
		return window.Run(session, window.Options{Debug: s.Debug, Logger: logger})
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
}
