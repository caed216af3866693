package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/wellbeing/internal/logging"
	"github.com/balkashynov/wellbeing/internal/tui"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Long: `Open the interactive dashboard. You log in first; usernames containing
"hr" open the HR manager view, everyone else gets the employee view.
Press ctrl+r to switch roles and ctrl+l to log out.`,
		Args: cobra.NoArgs,
		RunE: a.runDashboard,
	}
}

func (a *app) runDashboard(cmd *cobra.Command, args []string) error {
	// The dashboard owns the terminal; only file logging survives
	logger, err := logging.ForTerminalUI(a.cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sess, err := a.newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	return tui.RunDashboard(sess, a.cfg.UI.Animations)
}
