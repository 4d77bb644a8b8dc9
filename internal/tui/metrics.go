package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/format"
)

// MetricsModel displays runtime memory statistics and the host description.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	env          bench.Environment
	width        int
	height       int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetEnvironment records the host description.
func (m *MetricsModel) SetEnvironment(env bench.Environment) {
	m.env = env
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	rows := []string{
		metricRow("Heap:", format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapSys)),
		metricRow("GC:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6)),
		metricRow("Goroutines:", fmt.Sprintf("%d", m.numGoroutine)),
		metricRow("CPUs:", fmt.Sprintf("%d logical, %d physical, GOMAXPROCS %d",
			m.env.LogicalCPUs, m.env.PhysicalCores, m.env.GOMAXPROCS)),
	}
	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(strings.Join(rows, "\n"))
}

func metricRow(label, value string) string {
	return fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
}
