package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/sumbench/internal/bench"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the runner goroutine can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). It is a
// no-op until a program is set.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// BenchReporter implements bench.Reporter by forwarding events to the TUI.
type BenchReporter struct {
	ref *programRef
}

var _ bench.Reporter = (*BenchReporter)(nil)

func (b *BenchReporter) ReportEnvironment(env bench.Environment) {
	b.ref.Send(EnvironmentMsg{Env: env})
}

func (b *BenchReporter) ReportSizeStart(size int) {
	b.ref.Send(SizeStartMsg{Size: size})
}

func (b *BenchReporter) ReportTrialStart(size, threads int) {
	b.ref.Send(TrialStartMsg{Size: size, Threads: threads})
}

func (b *BenchReporter) ReportTrial(result bench.Result) {
	b.ref.Send(TrialResultMsg{Result: result})
}

func (b *BenchReporter) ReportSummary(summary bench.Summary) {
	b.ref.Send(SummaryMsg{Summary: summary})
}
