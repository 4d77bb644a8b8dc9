package tui

import "strings"

// runStatus is the state shown in the footer.
type runStatus int

const (
	statusRunning runStatus = iota
	statusDone
	statusFailed
)

// FooterModel renders key hints and the run status.
type FooterModel struct {
	keys   KeyMap
	status runStatus
	width  int
}

// NewFooterModel creates a footer for keys.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{keys: keys}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetStatus updates the run status.
func (f *FooterModel) SetStatus(s runStatus) { f.status = s }

// View renders the footer.
func (f FooterModel) View() string {
	var hints []string
	for _, b := range f.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}

	var status string
	switch f.status {
	case statusDone:
		status = statusDoneStyle.Render("DONE")
	case statusFailed:
		status = statusErrorStyle.Render("FAILED")
	default:
		status = statusRunningStyle.Render("RUNNING")
	}
	return " " + strings.Join(hints, "  ") + "  " + status
}
