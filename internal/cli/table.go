package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/format"
)

// tableHeader names the columns shared by the table and CSV reports.
var tableHeader = []string{"Size", "Threads", "Mode", "Sum", "Time (s)", "Speedup"}

// TableReporter buffers results and renders them as one ASCII table once the
// run completes.
type TableReporter struct {
	bench.NullReporter
	out     io.Writer
	quiet   bool
	results []bench.Result
}

// NewTableReporter creates a TableReporter writing to out.
func NewTableReporter(out io.Writer, quiet bool) *TableReporter {
	return &TableReporter{out: out, quiet: quiet}
}

func (r *TableReporter) ReportEnvironment(env bench.Environment) {
	if !r.quiet {
		fmt.Fprintf(r.out, "Hardware concurrency: %d logical processors\n\n", env.LogicalCPUs)
	}
}

func (r *TableReporter) ReportTrial(res bench.Result) {
	r.results = append(r.results, res)
}

func (r *TableReporter) ReportSummary(s bench.Summary) {
	t := NewTableWriter(r.out)
	t.SetHeader(tableHeader)
	for _, res := range r.results {
		t.Append(FormatRecord(r.results, res))
	}
	t.Render()
	if !r.quiet {
		DisplayMismatches(r.out, s.Mismatches)
	}
}

// NewTableWriter creates a left-aligned ASCII table writer.
func NewTableWriter(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

// FormatRecord renders res as a row of tableHeader. Speedup is computed
// against the sequential trial of the same size found in results.
func FormatRecord(results []bench.Result, res bench.Result) []string {
	return []string{
		strconv.Itoa(res.Size),
		strconv.Itoa(res.Threads),
		res.Mode,
		strconv.FormatInt(res.Sum, 10),
		format.FormatSeconds(res.Duration),
		format.FormatSpeedup(bench.Speedup(results, res)),
	}
}

var _ bench.Reporter = (*TableReporter)(nil)
