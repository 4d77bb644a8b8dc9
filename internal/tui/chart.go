package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/sumbench/internal/format"
)

// ChartModel shows overall trial progress and CPU/memory sparklines.
type ChartModel struct {
	progress   *format.TrialProgress
	cpuHistory *RingBuffer
	memHistory *RingBuffer
	width      int
	height     int
}

// NewChartModel creates a chart for total trials.
func NewChartModel(total int) ChartModel {
	return ChartModel{
		progress:   format.NewTrialProgress(total),
		cpuHistory: NewRingBuffer(60),
		memHistory: NewRingBuffer(60),
	}
}

// SetSize updates dimensions and resizes the sample history to fit.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	if n := c.sparklineWidth(); n > 0 {
		c.cpuHistory.Resize(n)
		c.memHistory.Resize(n)
	}
}

// AdvanceProgress records one completed trial.
func (c *ChartModel) AdvanceProgress() {
	c.progress.Advance()
}

// UpdateSysStats appends a CPU and memory sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// Progress returns the completed fraction.
func (c ChartModel) Progress() float64 { return c.progress.Fraction() }

func (c ChartModel) sparklineWidth() int {
	return c.width - 20
}

// View renders the chart panel.
func (c ChartModel) View() string {
	barWidth := c.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	rows := []string{
		fmt.Sprintf(" %s %d/%d",
			metricLabelStyle.Render("Trials:"), c.progress.Done(), c.progress.Total()),
		" " + accentStyle.Render(format.FormatProgressBarWithETA(c.progress.Fraction(), c.progress.ETA(), barWidth)),
		"",
		fmt.Sprintf(" %s %s %5.1f%%", metricLabelStyle.Render("CPU"),
			cpuSparklineStyle.Render(RenderSparkline(c.cpuHistory.Slice())), c.cpuHistory.Last()),
		fmt.Sprintf(" %s %s %5.1f%%", metricLabelStyle.Render("MEM"),
			memSparklineStyle.Render(RenderSparkline(c.memHistory.Slice())), c.memHistory.Last()),
	}
	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(strings.Join(rows, "\n"))
}
