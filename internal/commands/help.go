package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for wellbeing",
		Long:  `Display detailed help for all wellbeing commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), customHelp)
		},
	}
}

const customHelp = `
WellBeing360 - employee wellness dashboard

COMMANDS:

  (no command), dashboard   Interactive dashboard
    Log in with any username and password. Usernames containing "hr"
    open the HR manager view.

    Employee sections: Check-In, Resources, Coaching, History
    Manager sections:  Overview, Detailed Reports

    Keys:
      tab / shift+tab   Next / previous section
      ↑/↓               Move between form fields
      ←/→               Adjust slider, category or coach
      enter             Submit
      ctrl+r            Switch Employee / HR Manager
      ctrl+l            Log out
      esc               Quit

  checkin [quick syntax]    Log a check-in and get a recommendation
    -m, --mood            Mood 1-10
    -s, --stress          Stress 1-10
    -c, --comment         Comment
    -u, --user            Username
    --json                JSON output

    Quick syntax:
      wellbeing checkin "mood:3 stress:8 deadline week"

  recommend <mood> <stress> Show a recommendation without logging

  resources                 List wellness resources
    -c, --category        All|Mindfulness|Stress|Balance|Nutrition|Relaxation
    --json                JSON output

  coaches                   List coaches
  coaches request <name>    Request a coaching session
    -d, --date            tomorrow|today|yyyy-mm-dd|dd/mm/yyyy|X days|X weeks
    -t, --time            hh:mm
    --json                JSON output

  overview                  Department metrics and alerts
    --json                JSON output

  version                   Version information
  help                      Show this help

GLOBAL FLAGS:
  --config <path>           Config file (default ~/.wellbeing/config.yaml)
  --log-level <level>       debug|info|warn|error

Check-ins are kept in memory for the life of one session only.

`
