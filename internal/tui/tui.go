package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen shell and blocks until the user quits.
// A call still in progress on exit is ended and recorded.
func Run(deps Deps) error {
	p := tea.NewProgram(NewAppModel(deps), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AppModel); ok && m.session.IsActive() {
		m.endCall()
	}
	return nil
}
