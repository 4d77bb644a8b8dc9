package tui

import (
	"testing"

	"github.com/agbru/sumbench/internal/bench"
)

func TestProgramRef_Send_NilProgram(t *testing.T) {
	ref := &programRef{}
	// Must not panic.
	ref.Send(TickMsg{})
}

func TestBenchReporter_NilProgram(t *testing.T) {
	r := &BenchReporter{ref: &programRef{}}
	r.ReportEnvironment(bench.Environment{LogicalCPUs: 2})
	r.ReportSizeStart(10)
	r.ReportTrialStart(10, 1)
	r.ReportTrial(bench.Result{Size: 10, Threads: 1})
	r.ReportSummary(bench.Summary{})
}
