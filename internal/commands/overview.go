package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/tui"
)

func newOverviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show aggregated wellness metrics per department (HR managers)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newUserSession("", models.RoleHRManager)
			if err != nil {
				return err
			}
			defer sess.Close()

			view, err := sess.Overview()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return writeJSON(out, view)
			}

			fmt.Fprintf(out, "%-14s %12s %14s %8s\n", "DEPARTMENT", "AVG MOOD", "AVG STRESS", "ENTRIES")
			fmt.Fprintln(out, strings.Repeat("-", 51))
			for _, d := range view.Departments {
				fmt.Fprintf(out, "%-14s %12.1f %14.1f %8d\n", d.Department, d.AvgMood, d.AvgStress, d.EntryCount)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Mood by Department")
			for _, d := range view.Departments {
				fmt.Fprintf(out, "  %-14s %-20s %.1f\n", d.Department, tui.Bar(d.AvgMood, 10, 20), d.AvgMood)
			}
			fmt.Fprintln(out, "Stress by Department")
			for _, d := range view.Departments {
				fmt.Fprintf(out, "  %-14s %-20s %.1f\n", d.Department, tui.Bar(d.AvgStress, 10, 20), d.AvgStress)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, view.Alert)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
