package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/fatih/color"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	FPS      int
	SeedBase uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Games          int
	Pieces         int
	Cleared        int
	BestScore      int
	BestSeed       uint64
	MaxChain       int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
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

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// Add folds one session's results into the report.
func (r *Report) Add(res sessionResult) {
	r.TotalUpdates += res.Frames
	r.SimulatedTime += res.Simulated
	r.Games += res.Games
	r.Pieces += res.Pieces
	r.Cleared += res.Cleared
	r.MaxChain = max(r.MaxChain, res.MaxChain)
	if res.BestScore > r.BestScore {
		r.BestScore = res.BestScore
		r.BestSeed = res.Seed
	}
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTimes...)
}

// Speedup is simulated play time over wall time.
func (r *Report) Speedup() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.SimulatedTime) / float64(r.TotalTime)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
{{h1 "# Popdrop Stress Test Report"}}

{{h2 "## Test Configuration"}}
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Tick Rate:** {{.FPS}} fps
- **Seeds:** {{.SeedBase}}..{{seedEnd .SeedBase .Sessions}}

{{h2 "## Gameplay"}}
- **Games Finished:** {{.Games}}
- **Pieces Locked:** {{.Pieces}}
- **Units Cleared:** {{.Cleared}}
- **Best Score:** {{.BestScore}} (seed {{.BestSeed}})
- **Longest Chain:** {{.MaxChain}}

{{h2 "## Performance Results"}}
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Play Time:** {{.SimulatedTime}} ({{printf "%.1f" .Speedup}}x)
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
  - **P99:** {{.UpdateTime.P99}}

{{h2 "## Memory Usage (Raw Bytes)"}}
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
{{h2 "## GC Pause Durations"}}
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	h1 := color.New(color.FgHiCyan, color.Bold).SprintFunc()
	h2 := color.New(color.FgCyan).SprintFunc()

	fm := template.FuncMap{
		"h1": func(s string) string { return h1(s) },
		"h2": func(s string) string { return h2(s) },
		"seedEnd": func(base uint64, n int) uint64 {
			return base + uint64(max(n, 1)) - 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
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
		return fmt.Errorf("parse report: %w", err)
	}

	return tmpl.Execute(w, r)
}
