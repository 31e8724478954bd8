package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/welltris/internal/logging"
	"github.com/plus3/welltris/well"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// StressOptions configures a headless run.
type StressOptions struct {
	Duration time.Duration
	// MaxTicks stops the run early when positive.
	MaxTicks     int64
	Seed         uint64
	TickInterval time.Duration
	Config       well.Config
	Logger       zerolog.Logger
}

func newStressCmd() *cobra.Command {
	var (
		opts           StressOptions
		gcPauseMetrics bool
		logLevel       string
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Play rounds headlessly with random input and report engine timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			opts.Logger = logging.New(cmd.ErrOrStderr(), lvl)
			opts.Config = well.DefaultConfig()

			opts.Logger.Info().Dur("duration", opts.Duration).Uint64("seed", opts.Seed).Msg("starting stress test")

			report := RunStress(cmd.Context(), opts)
			report.GCPauseMetrics = gcPauseMetrics

			opts.Logger.Info().Int("rounds", report.Rounds).Int64("ticks", report.Ticks).Msg("stress test finished")

			out := cmd.OutOrStdout()
			if err := report.Generate(out); err != nil {
				return err
			}
			report.WriteSystems(out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.Duration, "duration", 10*time.Second, "total duration the test should run for")
	flags.Int64Var(&opts.MaxTicks, "max-ticks", 0, "stop after this many ticks, 0 for no limit")
	flags.Uint64Var(&opts.Seed, "seed", 1, "seed for pieces and input")
	flags.DurationVar(&opts.TickInterval, "tick", 16*time.Millisecond, "simulated frame time per tick")
	flags.BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "include GC pause metrics in the report")
	flags.StringVar(&logLevel, "log-level", "warn", "log level for progress messages on stderr")

	return cmd
}

// RunStress plays back-to-back rounds with random presses until the
// duration elapses, ctx is done or MaxTicks is reached.
func RunStress(ctx context.Context, opts StressOptions) *Report {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 16 * time.Millisecond
	}

	report := &Report{
		Duration:     opts.Duration,
		Seed:         opts.Seed,
		TickInterval: opts.TickInterval,
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))
	keys := []well.Key{well.KeyRotate, well.KeyLeft, well.KeyRight, well.KeyDown, well.KeyDown}

	var engine *well.Engine
	session := well.NewSession(opts.Config,
		well.WithSessionSeed(opts.Seed),
		well.WithSessionLogger(opts.Logger),
		well.WithTransitionHook(func(from, to well.Mode) {
			if from != well.ModePlaying {
				return
			}
			state := engine.State()
			report.Rounds++
			report.Pieces += state.Pieces
			report.Lines += state.Lines
			report.TotalScore += uint64(state.Score)
			report.BestScore = max(report.BestScore, state.Score)
			report.Systems = mergeSystemStats(report.Systems, engine.Stats())
		}),
	)

	runtime.ReadMemStats(&report.MemStatsStart)

	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	startTime := time.Now()

Loop:
	for opts.MaxTicks <= 0 || report.Ticks < opts.MaxTicks {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		var in well.Input
		if session.Mode() == well.ModeMenu {
			in = well.Press(well.KeyConfirm)
		} else if rng.IntN(2) == 0 {
			in = well.Press(keys[rng.IntN(len(keys))])
		}

		updateStart := time.Now()
		session.Update(in, opts.TickInterval)
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(updateStart))
		report.Ticks++

		engine = session.Engine()
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}

// mergeSystemStats folds one engine's statistics into acc. Every engine
// registers the same systems in the same order.
func mergeSystemStats(acc []well.SystemStats, stats *well.SchedulerStats) []well.SystemStats {
	if acc == nil {
		acc = make([]well.SystemStats, len(stats.Systems))
		for i, sys := range stats.Systems {
			acc[i] = well.SystemStats{Name: sys.Name, MinDuration: sys.MinDuration}
		}
	}

	for i, sys := range stats.Systems {
		a := &acc[i]
		if sys.ExecutionCount == 0 {
			continue
		}
		if a.ExecutionCount == 0 || sys.MinDuration < a.MinDuration {
			a.MinDuration = sys.MinDuration
		}
		a.MaxDuration = max(a.MaxDuration, sys.MaxDuration)
		a.ExecutionCount += sys.ExecutionCount
		a.TotalDuration += sys.TotalDuration
		a.LastDuration = sys.LastDuration
		a.AvgDuration = a.TotalDuration / time.Duration(a.ExecutionCount)
	}
	return acc
}
