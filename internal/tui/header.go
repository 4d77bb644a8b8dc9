package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/format"
)

// HeaderModel renders the top bar: title, version, host and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	cpus      int
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{startTime: time.Now(), version: version}
}

// SetLogicalCPUs records the hardware concurrency shown in the header.
func (h *HeaderModel) SetLogicalCPUs(n int) { h.cpus = n }

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	if h.endTime.IsZero() {
		h.endTime = time.Now()
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Elapsed returns the run time so far, or the frozen run time once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "SumBench Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	parts := []string{titleStyle.Render(titleText)}
	if h.cpus > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d logical processors", h.cpus)))
	}
	parts = append(parts, accentStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed())))
	row := strings.Join(parts, pipe)

	if gap := h.width - 2 - lipgloss.Width(row); gap > 0 {
		row += strings.Repeat(" ", gap)
	}
	return headerStyle.Width(h.width).Render(row)
}
