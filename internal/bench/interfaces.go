//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporter.go -package=mocks

package bench

import (
	"fmt"
	"time"

	"github.com/agbru/sumbench/internal/memory"
)

// Mode names the reduction used by a trial.
const (
	ModeSequential = "sequential"
	ModeParallel   = "parallel"
)

// Result is the outcome of a single trial. It is printed once and discarded.
type Result struct {
	// Array is the zero-based position of the array in the run. Trials with
	// the same Array reduced the same values.
	Array int
	// Size is the array length.
	Size int
	// Threads is the number of workers; 1 means the sequential sum.
	Threads int
	// Sum is the reduction result.
	Sum int64
	// Duration is the wall-clock time measured around the reduction call.
	Duration time.Duration
	// Mode is ModeSequential or ModeParallel.
	Mode string
}

// Seconds returns the elapsed time as fractional seconds.
func (r Result) Seconds() float64 {
	return r.Duration.Seconds()
}

// Mismatch records two trials on the same array that disagreed.
type Mismatch struct {
	Array    int
	Size     int
	Expected Result
	Got      Result
}

// String renders the mismatch with the array numbered from 1 in matrix
// order, so repeated sizes stay distinguishable.
func (m Mismatch) String() string {
	return fmt.Sprintf("array #%d (size %d): threads=%d gave %d, threads=%d gave %d",
		m.Array+1, m.Size, m.Expected.Threads, m.Expected.Sum, m.Got.Threads, m.Got.Sum)
}

// Summary aggregates a completed run.
type Summary struct {
	Results    []Result
	Mismatches []Mismatch
	GC         memory.GCStats
	Elapsed    time.Duration
}

// Environment describes the host the benchmark runs on. It is informational
// only and never changes the benchmark behaviour.
type Environment struct {
	LogicalCPUs   int
	PhysicalCores int
	GOMAXPROCS    int
	GoVersion     string
	OS            string
	Arch          string
	CPUFeatures   []string
}

// Reporter receives benchmark events in order. Implementations handle the
// visual representation (plain text, tables, dashboards) while the Runner
// focuses on measurement.
type Reporter interface {
	// ReportEnvironment is called once before the first trial.
	ReportEnvironment(env Environment)
	// ReportSizeStart is called after the array for size has been built.
	ReportSizeStart(size int)
	// ReportTrialStart is called immediately before a timed reduction.
	ReportTrialStart(size, threads int)
	// ReportTrial is called with the outcome of each trial.
	ReportTrial(result Result)
	// ReportSummary is called once after the last trial.
	ReportSummary(summary Summary)
}

// TrialRecorder receives metrics for generated arrays and trials.
type TrialRecorder interface {
	ObserveArray(size int)
	ObserveTrial(size, threads int, sum int64, seconds float64)
}
