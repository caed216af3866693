package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/wellbeing/internal/session"
)

// RunDashboard starts the interactive dashboard for a session and blocks
// until the user quits
func RunDashboard(sess *session.Session, animations bool) error {
	model := NewDashboardModel(sess, animations)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
