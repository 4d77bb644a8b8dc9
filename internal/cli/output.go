package cli

import (
	"io"

	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/config"
)

// OutputConfig selects how a run is rendered.
type OutputConfig struct {
	// Format is config.FormatText, config.FormatTable or config.FormatCSV.
	Format string
	// Quiet suppresses everything but results.
	Quiet bool
	// Verbose adds host details and memory statistics.
	Verbose bool
	// Progress enables the spinner on ProgressOut.
	Progress bool
	// ProgressOut receives the spinner, normally stderr.
	ProgressOut io.Writer
	// Trials is the number of trials in the matrix, used by the progress bar.
	Trials int
}

// NewReporter assembles the reporter for cfg writing results to out. The
// returned stop function halts any progress display and must be called
// once the run ends, even when it fails.
func NewReporter(out io.Writer, cfg OutputConfig) (bench.Reporter, func()) {
	var main bench.Reporter
	switch cfg.Format {
	case config.FormatTable:
		main = NewTableReporter(out, cfg.Quiet)
	case config.FormatCSV:
		main = NewCSVReporter(out)
	default:
		main = NewTextReporter(out, cfg.Quiet, cfg.Verbose)
	}

	if !cfg.Progress || cfg.Quiet || cfg.ProgressOut == nil {
		return main, func() {}
	}
	// The spinner must stop before the summary is written to out.
	p := NewProgressReporter(cfg.ProgressOut, cfg.Trials)
	return bench.MultiReporter{p, main}, p.Stop
}
