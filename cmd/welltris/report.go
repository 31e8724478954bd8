package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/plus3/welltris/well"
)

type Report struct {
	// Configuration
	Duration     time.Duration
	Seed         uint64
	TickInterval time.Duration

	// Results
	Rounds         int
	Ticks          int64
	Pieces         int
	Lines          int
	TotalScore     uint64
	BestScore      uint32
	TotalTime      time.Duration
	TickTime       Stats
	Systems        []well.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// AvgScore is the mean final score per finished round.
func (r *Report) AvgScore() uint64 {
	if r.Rounds == 0 {
		return 0
	}
	return r.TotalScore / uint64(r.Rounds)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Welltris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Simulated Tick:** {{.TickInterval}}

## Game Results
- **Rounds Finished:** {{.Rounds | comma}}
- **Pieces Spawned:** {{.Pieces | comma}}
- **Lines Cleared:** {{.Lines | comma}}
- **Best Score:** {{.BestScore | comma}}
- **Average Score:** {{.AvgScore | comma}}

## Performance Results
- **Total Ticks:** {{.Ticks | comma}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage
- Heap Alloc:     {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{bytes .MemStatsStart.TotalAlloc}} (start) -> {{bytes .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{bytes .MemStatsStart.Sys}} (start) -> {{bytes .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
## Systems
`

	fm := template.FuncMap{
		"bytes": humanize.Bytes,
		"comma": func(v any) string {
			switch val := v.(type) {
			case int:
				return humanize.Comma(int64(val))
			case int64:
				return humanize.Comma(val)
			case uint32:
				return humanize.Comma(int64(val))
			case uint64:
				return humanize.Comma(int64(val))
			default:
				return fmt.Sprint(v)
			}
		},
		"bsub": func(a, b uint64) string {
			if a < b {
				return "-" + humanize.Bytes(b-a)
			}
			return humanize.Bytes(a - b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// WriteSystems renders the per-system timing table.
func (r *Report) WriteSystems(w io.Writer) {
	table := tablewriter.NewWriter(w)

	table.SetHeader([]string{"System", "Executions", "Avg", "Min", "Max"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	data := make([][]string, 0, len(r.Systems))
	for _, sys := range r.Systems {
		data = append(data, []string{
			sys.Name,
			humanize.Comma(sys.ExecutionCount),
			sys.AvgDuration.String(),
			sys.MinDuration.String(),
			sys.MaxDuration.String(),
		})
	}
	table.AppendBulk(data)

	table.Render()
}
