package well_test

import (
	"testing"
	"time"

	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceSystem struct {
	name  string
	trace *[]string
}

func (s *traceSystem) Execute(frame *well.Frame) {
	*s.trace = append(*s.trace, s.name)
}

type deferSystem struct {
	trace *[]string
}

func (s *deferSystem) Execute(frame *well.Frame) {
	frame.Commands.Defer(func() { *s.trace = append(*s.trace, "deferred") })
	frame.Commands.Emit(well.Event{Kind: well.EventSpawn})
}

func TestSchedulerOrder(t *testing.T) {
	var trace []string
	scheduler := well.NewScheduler()
	scheduler.Register(&traceSystem{name: "first", trace: &trace})
	scheduler.Register(&deferSystem{trace: &trace})
	scheduler.Register(&traceSystem{name: "last", trace: &trace})

	state := well.NewRoundState(well.DefaultConfig())
	commands := scheduler.Once(time.Millisecond, 0, state)

	assert.Equal(t, []string{"first", "last"}, trace)

	var delivered []well.EventKind
	commands.Flush(func(ev well.Event) {
		delivered = append(delivered, ev.Kind)
		trace = append(trace, "event")
	})

	assert.Equal(t, []well.EventKind{well.EventSpawn}, delivered)
	assert.Equal(t, []string{"first", "last", "event", "deferred"}, trace)
	assert.Empty(t, commands.Events(), "flush drains the buffer")
}

func TestSchedulerStats(t *testing.T) {
	var trace []string
	scheduler := well.NewScheduler()
	scheduler.Register(&traceSystem{name: "a", trace: &trace})
	scheduler.Register(&deferSystem{trace: &trace})

	empty := scheduler.GetStats()
	assert.Equal(t, 2, empty.SystemCount)
	assert.Zero(t, empty.TotalExecutions)
	assert.Zero(t, empty.Systems[0].MinDuration)

	state := well.NewRoundState(well.DefaultConfig())
	for range 3 {
		scheduler.Once(time.Millisecond, 0, state).Flush(nil)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "traceSystem", stats.Systems[0].Name)
	assert.Equal(t, "deferSystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
	}
}

func TestEngineStatsNameEverySystem(t *testing.T) {
	e := well.NewEngine(well.DefaultConfig(), well.WithSeed(1))
	e.Tick(0, time.Millisecond)

	var names []string
	for _, sys := range e.Stats().Systems {
		names = append(names, sys.Name)
	}
	assert.Equal(t, []string{"InputSystem", "GravitySystem", "LineClearSystem", "SpawnSystem", "GameOverSystem"}, names)
}
