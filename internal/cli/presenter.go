package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/ui"
)

// TextReporter writes the plain line-oriented report:
//
//	Hardware concurrency: 8 logical processors
//
//	Array size: 100000
//	Threads: 1 | Sum: 550123 | Time: 0.000041250 seconds
//
// Result lines are never colored so they can be parsed. In quiet mode only
// result lines are written.
type TextReporter struct {
	out     io.Writer
	quiet   bool
	verbose bool
	mem     *metrics.MemoryCollector
	start   metrics.MemorySnapshot
}

// NewTextReporter creates a TextReporter writing to out.
func NewTextReporter(out io.Writer, quiet, verbose bool) *TextReporter {
	return &TextReporter{out: out, quiet: quiet, verbose: verbose, mem: metrics.NewMemoryCollector()}
}

func (r *TextReporter) ReportEnvironment(env bench.Environment) {
	r.start = r.mem.Snapshot()
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "Hardware concurrency: %d logical processors\n", env.LogicalCPUs)
	if r.verbose {
		DisplayEnvironmentDetails(r.out, env)
	}
}

func (r *TextReporter) ReportSizeStart(size int) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "\nArray size: %d\n", size)
}

func (r *TextReporter) ReportTrialStart(int, int) {}

func (r *TextReporter) ReportTrial(res bench.Result) {
	fmt.Fprintln(r.out, FormatResultLine(res))
}

func (r *TextReporter) ReportSummary(s bench.Summary) {
	if r.quiet {
		return
	}
	DisplayMismatches(r.out, s.Mismatches)
	if r.verbose {
		DisplayMemoryStats(r.out, r.mem.Snapshot().Sub(r.start), s)
	}
}

// FormatResultLine renders one trial as
// "Threads: <n> | Sum: <s> | Time: <t> seconds".
func FormatResultLine(res bench.Result) string {
	return fmt.Sprintf("Threads: %d | Sum: %d | Time: %s seconds",
		res.Threads, res.Sum, format.FormatSeconds(res.Duration))
}

// DisplayEnvironmentDetails prints the verbose host description.
func DisplayEnvironmentDetails(out io.Writer, env bench.Environment) {
	fmt.Fprintf(out, "%sGo %s on %s/%s, GOMAXPROCS=%d, physical cores: %d%s\n",
		ui.ColorGrey(), env.GoVersion, env.OS, env.Arch, env.GOMAXPROCS, env.PhysicalCores, ui.ColorReset())
	if len(env.CPUFeatures) > 0 {
		fmt.Fprintf(out, "%sCPU features: %v%s\n", ui.ColorGrey(), env.CPUFeatures, ui.ColorReset())
	}
}

// DisplayMismatches prints one warning per disagreeing trial.
func DisplayMismatches(out io.Writer, mismatches []bench.Mismatch) {
	if len(mismatches) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s%sSum mismatch detected:%s\n", ui.ColorBold(), ui.ColorRed(), ui.ColorReset())
	for _, m := range mismatches {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorRed(), m, ui.ColorReset())
	}
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(out io.Writer, mem metrics.MemorySnapshot, s bench.Summary) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(mem.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(mem.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", mem.NumGC)
	if s.GC.NumGC > 0 || s.GC.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC during trials: %d cycles, %.2fms paused\n", s.GC.NumGC, float64(s.GC.PauseTotalNs)/1e6)
	}
	fmt.Fprintf(out, "  Total run time:  %s\n", format.FormatExecutionDuration(s.Elapsed.Round(time.Microsecond)))
}

var _ bench.Reporter = (*TextReporter)(nil)
