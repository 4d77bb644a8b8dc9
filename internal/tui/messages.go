package tui

import (
	"time"

	"github.com/agbru/sumbench/internal/bench"
)

// EnvironmentMsg carries the host description at the start of a run.
type EnvironmentMsg struct{ Env bench.Environment }

// SizeStartMsg reports that the array for Size has been generated.
type SizeStartMsg struct{ Size int }

// TrialStartMsg reports that a trial is about to be timed.
type TrialStartMsg struct{ Size, Threads int }

// TrialResultMsg carries a completed trial.
type TrialResultMsg struct{ Result bench.Result }

// SummaryMsg carries the summary of a completed run.
type SummaryMsg struct{ Summary bench.Summary }

// RunCompleteMsg is sent when Runner.Run returns.
type RunCompleteMsg struct {
	Summary bench.Summary
	Err     error
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg is sent when the run context ends.
type ContextCancelledMsg struct{ Err error }
