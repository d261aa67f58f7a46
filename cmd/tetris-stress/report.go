package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Workers   int
	Width     int
	Height    int
	Tick      time.Duration
	Frame     time.Duration
	InputRate float64

	// Results
	Games          int
	Engine         engine.Stats
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []loop.SystemStats
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

// Merge folds a worker's results into the report. Per-system stats are
// combined by system name.
func (r *Report) Merge(w *workerResult) {
	r.Games += w.Games
	r.Engine.Ticks += w.Engine.Ticks
	r.Engine.Spawned += w.Engine.Spawned
	r.Engine.Locked += w.Engine.Locked
	r.Engine.RowsCleared += w.Engine.RowsCleared
	r.Engine.Rejected += w.Engine.Rejected
	r.TotalUpdates += w.Frames
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, w.UpdateTime.Samples...)

	for _, sys := range w.Systems {
		i := slices.IndexFunc(r.Systems, func(s loop.SystemStats) bool { return s.Name == sys.Name })
		if i < 0 {
			r.Systems = append(r.Systems, sys)
			continue
		}
		merged := &r.Systems[i]
		merged.ExecutionCount += sys.ExecutionCount
		merged.TotalDuration += sys.TotalDuration
		merged.MinDuration = min(merged.MinDuration, sys.MinDuration)
		merged.MaxDuration = max(merged.MaxDuration, sys.MaxDuration)
		merged.LastDuration = sys.LastDuration
		if merged.ExecutionCount > 0 {
			merged.AvgDuration = merged.TotalDuration / time.Duration(merged.ExecutionCount)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Workers:** {{.Workers}}
- **Board:** {{.Width}}x{{.Height}}
- **Tick / Frame:** {{.Tick}} / {{.Frame}}
- **Input Rate:** {{printf "%.2f" .InputRate}}

## Play Results
- **Games Finished:** {{.Games}}
- **Ticks:** {{.Engine.Ticks}}
- **Pieces Spawned:** {{.Engine.Spawned}}
- **Pieces Locked:** {{.Engine.Locked}}
- **Rows Cleared:** {{.Engine.RowsCleared}}
- **Rejected Moves:** {{.Engine.Rejected}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{usub64 .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"usub64": func(a, b uint64) uint64 {
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
