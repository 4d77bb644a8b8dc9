package cli

import (
	"encoding/csv"
	"io"

	"github.com/agbru/sumbench/internal/bench"
)

// CSVReporter streams one CSV record per trial, flushing after each so that
// partial runs still produce usable output.
type CSVReporter struct {
	bench.NullReporter
	w       *csv.Writer
	results []bench.Result
	err     error
}

// NewCSVReporter creates a CSVReporter writing to out.
func NewCSVReporter(out io.Writer) *CSVReporter {
	return &CSVReporter{w: csv.NewWriter(out)}
}

func (r *CSVReporter) ReportEnvironment(bench.Environment) {
	r.write(tableHeader)
}

func (r *CSVReporter) ReportTrial(res bench.Result) {
	r.results = append(r.results, res)
	r.write(FormatRecord(r.results, res))
}

// Err returns the first write error, if any.
func (r *CSVReporter) Err() error { return r.err }

func (r *CSVReporter) write(record []string) {
	if r.err != nil {
		return
	}
	if err := r.w.Write(record); err != nil {
		r.err = err
		return
	}
	r.w.Flush()
	r.err = r.w.Error()
}

var _ bench.Reporter = (*CSVReporter)(nil)
