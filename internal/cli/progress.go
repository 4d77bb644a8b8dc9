package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/format"
)

// ProgressReporter animates a spinner with a progress bar over the trials of
// a matrix. It writes to its own stream, normally stderr, so that report
// output on stdout stays machine readable.
type ProgressReporter struct {
	bench.NullReporter
	spinner  Spinner
	progress *format.TrialProgress
	running  bool
}

// NewProgressReporter creates a progress display for total trials on w.
func NewProgressReporter(w io.Writer, total int) *ProgressReporter {
	return &ProgressReporter{
		spinner:  newSpinner(spinner.WithWriter(w), spinner.WithHiddenCursor(true)),
		progress: format.NewTrialProgress(total),
	}
}

// ReportEnvironment starts the animation.
func (p *ProgressReporter) ReportEnvironment(bench.Environment) {
	p.spinner.UpdateSuffix(" " + FormatProgressLine(p.progress, "preparing"))
	p.spinner.Start()
	p.running = true
}

// ReportSizeStart shows that the array for size is being summed.
func (p *ProgressReporter) ReportSizeStart(size int) {
	p.spinner.UpdateSuffix(" " + FormatProgressLine(p.progress, fmt.Sprintf("size %s", format.FormatInt(int64(size)))))
}

// ReportTrialStart names the trial being timed.
func (p *ProgressReporter) ReportTrialStart(size, threads int) {
	label := fmt.Sprintf("size %s, %d thread(s)", format.FormatInt(int64(size)), threads)
	p.spinner.UpdateSuffix(" " + FormatProgressLine(p.progress, label))
}

// ReportTrial advances the bar.
func (p *ProgressReporter) ReportTrial(bench.Result) {
	p.progress.Advance()
	p.spinner.UpdateSuffix(" " + FormatProgressLine(p.progress, "done"))
}

// ReportSummary stops the animation.
func (p *ProgressReporter) ReportSummary(bench.Summary) {
	p.Stop()
}

// Stop halts the spinner if it is running. It is safe to call repeatedly,
// which lets callers stop the display after an interrupted run.
func (p *ProgressReporter) Stop() {
	if p.running {
		p.spinner.Stop()
		p.running = false
	}
}

// FormatProgressLine renders "3/12 [bar] 25.0% ETA 2s  label".
func FormatProgressLine(p *format.TrialProgress, label string) string {
	return fmt.Sprintf("%d/%d %s  %s", p.Done(), p.Total(),
		format.FormatProgressBarWithETA(p.Fraction(), p.ETA(), ProgressBarWidth), label)
}
