package tui

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/bench"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 8
	ResultsPanelWidthPct  = 60
	MetricsPanelHeight    = 6
	sampleInterval        = 500 * time.Millisecond
	resultsPageScrollSize = 5
)

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) resultsWidth() int {
	return l.width * ResultsPanelWidthPct / 100
}

func (l LayoutManager) rightWidth() int {
	return l.width - l.resultsWidth()
}

func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	results ResultsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel
	keymap  KeyMap

	LayoutManager

	ctx      context.Context
	cancel   context.CancelFunc
	runner   *bench.Runner
	matrix   bench.Matrix
	ref      *programRef
	done     bool
	exitCode int
}

// NewModel creates the dashboard for one run of matrix.
func NewModel(parentCtx context.Context, runner *bench.Runner, matrix bench.Matrix, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	keys := DefaultKeyMap()
	return Model{
		header:   NewHeaderModel(version),
		results:  NewResultsModel(),
		metrics:  NewMetricsModel(),
		chart:    NewChartModel(matrix.Trials()),
		footer:   NewFooterModel(keys),
		keymap:   keys,
		ctx:      ctx,
		cancel:   cancel,
		runner:   runner,
		matrix:   matrix,
		ref:      &programRef{},
		exitCode: apperrors.ExitSuccess,
	}
}

// ExitCode returns the process exit code implied by the run.
func (m Model) ExitCode() int { return m.exitCode }

// Init starts the benchmark, the sampling ticker and the context watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ctx, m.ref, m.runner, m.matrix),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case EnvironmentMsg:
		m.header.SetLogicalCPUs(msg.Env.LogicalCPUs)
		m.metrics.SetEnvironment(msg.Env)
		return m, nil

	case SizeStartMsg:
		m.results.AddSize(msg.Size)
		return m, nil

	case TrialStartMsg:
		m.results.SetPending(msg)
		return m, nil

	case TrialResultMsg:
		m.results.AddResult(msg.Result)
		m.chart.AdvanceProgress()
		return m, nil

	case SummaryMsg:
		m.results.SetSummary(msg.Summary)
		return m, nil

	case RunCompleteMsg:
		m.done = true
		m.header.SetDone()
		m.exitCode = exitCodeFor(msg.Summary, msg.Err)
		if msg.Err != nil {
			m.results.SetError(msg.Err)
			m.footer.SetStatus(statusFailed)
		} else if len(msg.Summary.Mismatches) > 0 {
			m.footer.SetStatus(statusFailed)
		} else {
			m.footer.SetStatus(statusDone)
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case ContextCancelledMsg:
		if m.done {
			return m, nil
		}
		m.done = true
		m.header.SetDone()
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		m.footer.SetStatus(statusFailed)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.done = true
			m.exitCode = apperrors.ExitErrorCanceled
		}
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		m.results.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.results.ScrollDown(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.results.ScrollUp(resultsPageScrollSize)
	case key.Matches(msg, m.keymap.PageDown):
		m.results.ScrollDown(resultsPageScrollSize)
	}
	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	right := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.results.View(), right)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.results.SetSize(m.resultsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// exitCodeFor maps a finished run to a process exit code.
func exitCodeFor(s bench.Summary, err error) int {
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	if len(s.Mismatches) > 0 {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// Run shows the dashboard while runner executes matrix and returns the exit
// code. The dashboard stays open after the run until the user quits.
func Run(ctx context.Context, runner *bench.Runner, matrix bench.Matrix, version string) int {
	initTUIStyles()

	model := NewModel(ctx, runner, matrix, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok && m.done {
		return m.exitCode
	}
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case ctx.Err() != nil:
		return apperrors.ExitCodeFor(ctx.Err())
	default:
		return apperrors.ExitErrorGeneric
	}
}

// startRunCmd runs the benchmark and reports completion as a message.
func startRunCmd(ctx context.Context, ref *programRef, runner *bench.Runner, matrix bench.Matrix) tea.Cmd {
	return func() tea.Msg {
		summary, err := runner.Run(ctx, matrix, &BenchReporter{ref: ref})
		return RunCompleteMsg{Summary: summary, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
