package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/format"
)

// ResultsModel lists trial results grouped by array size with a scrollable
// viewport.
type ResultsModel struct {
	results    []bench.Result
	sizes      []int
	pending    *TrialStartMsg
	mismatches []bench.Mismatch
	err        error
	offset     int
	width      int
	height     int
}

// NewResultsModel creates an empty results panel.
func NewResultsModel() ResultsModel {
	return ResultsModel{}
}

// SetSize updates dimensions.
func (r *ResultsModel) SetSize(w, h int) {
	r.width = w
	r.height = h
}

// AddSize starts a new group.
func (r *ResultsModel) AddSize(size int) {
	r.sizes = append(r.sizes, size)
	r.followTail()
}

// SetPending marks the trial currently being timed.
func (r *ResultsModel) SetPending(msg TrialStartMsg) {
	r.pending = &msg
	r.followTail()
}

// AddResult appends a completed trial.
func (r *ResultsModel) AddResult(res bench.Result) {
	r.results = append(r.results, res)
	r.pending = nil
	r.followTail()
}

// SetSummary records the mismatches of a finished run.
func (r *ResultsModel) SetSummary(s bench.Summary) {
	r.mismatches = s.Mismatches
	r.pending = nil
}

// SetError records a failed run.
func (r *ResultsModel) SetError(err error) {
	r.err = err
	r.pending = nil
}

// Results returns the completed trials.
func (r ResultsModel) Results() []bench.Result { return r.results }

// ScrollUp moves the viewport up by n lines.
func (r *ResultsModel) ScrollUp(n int) {
	r.offset -= n
	if r.offset < 0 {
		r.offset = 0
	}
}

// ScrollDown moves the viewport down by n lines.
func (r *ResultsModel) ScrollDown(n int) {
	r.offset += n
	if limit := r.maxOffset(); r.offset > limit {
		r.offset = limit
	}
}

func (r ResultsModel) visibleLines() int {
	if v := r.height - 2; v > 0 {
		return v
	}
	return 1
}

func (r ResultsModel) maxOffset() int {
	if n := len(r.lines()) - r.visibleLines(); n > 0 {
		return n
	}
	return 0
}

func (r *ResultsModel) followTail() {
	r.offset = r.maxOffset()
}

// lines renders the full content before clipping to the viewport.
func (r ResultsModel) lines() []string {
	var out []string
	for i, size := range r.sizes {
		out = append(out, sizeStyle.Render("Array size: "+format.FormatInt(int64(size))))
		for _, res := range r.results {
			if res.Array != i || res.Size != size {
				continue
			}
			out = append(out, FormatResultRow(r.results, res))
		}
		if r.pending != nil && i == len(r.sizes)-1 {
			out = append(out, pendingStyle.Render(fmt.Sprintf("  Threads: %-3d running...", r.pending.Threads)))
		}
	}
	for _, m := range r.mismatches {
		out = append(out, errorStyle.Render("Mismatch at "+m.String()))
	}
	if r.err != nil {
		out = append(out, errorStyle.Render("Error: "+r.err.Error()))
	}
	return out
}

// FormatResultRow renders one trial with its speedup.
func FormatResultRow(all []bench.Result, res bench.Result) string {
	row := fmt.Sprintf("  Threads: %-3d Sum: %-12d Time: %s s", res.Threads, res.Sum, format.FormatSeconds(res.Duration))
	if res.Threads > 1 {
		row += "  " + speedupStyle.Render(format.FormatSpeedup(bench.Speedup(all, res)))
	}
	return row
}

// View renders the panel.
func (r ResultsModel) View() string {
	lines := r.lines()
	if len(lines) == 0 {
		lines = []string{dimStyle.Render("  Waiting for the first array...")}
	}
	start := r.offset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + r.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	return panelStyle.
		Width(r.width - 2).
		Height(r.height - 2).
		Render(strings.Join(lines[start:end], "\n"))
}
