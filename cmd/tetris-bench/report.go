package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

type Report struct {
	// Configuration
	Width      int
	Height     int
	FallDelay  time.Duration
	Randomizer string
	Seed       uint64
	Step       time.Duration
	Realtime   bool

	// Results
	Frames        int64
	Actions       int64
	TotalTime     time.Duration
	SimulatedTime time.Duration
	FrameTime     Stats
	Systems       []engine.SystemStats

	Games      int
	Pieces     int
	Lines      int
	MinScore   int
	MaxScore   int
	AvgScore   float64
	Unfinished *gameResult
	Spawns     []SpawnCount

	GCMetrics     bool
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// SpawnCount is one row of the spawn histogram.
type SpawnCount struct {
	Kind  tetris.Kind
	Count int
	Share float64 // percent of all spawns
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Tetra Bench Report

## Configuration
- **Board:** {{.Width}}x{{.Height}}
- **Fall Delay:** {{.FallDelay}}
- **Randomizer:** {{.Randomizer}} (seed {{.Seed}})
- **Frame Step:** {{.Step}}{{if .Realtime}} (real time){{end}}

## Games
- **Finished Games:** {{.Games}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
{{- if .Games}}
- **Score:** min {{.MinScore}} / avg {{printf "%.1f" .AvgScore}} / max {{.MaxScore}}
{{- end}}
{{- with .Unfinished}}
- **Unfinished Game:** score {{.Score}}, {{.Pieces}} pieces, {{.Lines}} lines
{{- end}}

## Spawn Histogram
| Kind | Count | Share | |
|------|------:|------:|---|
{{- range .Spawns}}
| {{.Kind}} | {{.Count}} | {{printf "%.1f%%" .Share}} | {{bar .Share}} |
{{- end}}

## Performance
- **Frames:** {{.Frames}}
- **Bot Actions:** {{.Actions}}
- **Wall Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

| System | Runs | Avg | Max |
|--------|-----:|----:|----:|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
{{if .GCMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
	"bar": func(percent float64) string {
		return strings.Repeat("#", int(percent/2+0.5))
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report: %w", err)
	}
	return tmpl.Execute(w, r)
}
