package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wellbeing/internal/models"
)

func newCoachesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coaches",
		Aliases: []string{"coach"},
		Short:   "List coaches or request a coaching session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newUserSession("", models.RoleEmployee)
			if err != nil {
				return err
			}
			defer sess.Close()

			view, err := sess.Coaching()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-20s %s\n", "COACH", "SPECIALTY")
			fmt.Fprintln(out, strings.Repeat("-", 40))
			for _, c := range view.Coaches {
				fmt.Fprintf(out, "%-20s %s\n", c.Name, c.Specialty)
			}
			return nil
		},
	}

	cmd.AddCommand(newCoachRequestCmd(a))
	return cmd
}

func newCoachRequestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request <coach name>",
		Short: "Request a coaching session",
		Long: `Request a coaching session with a coach.

Examples:
  wellbeing coaches request "Bob Smith"                    # tomorrow, current time
  wellbeing coaches request alice johnson --date 3 days --time 10:30
  wellbeing coaches request "Carol Lee" --date 2026-05-04 --time 09:00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateInput, _ := cmd.Flags().GetString("date")
			timeInput, _ := cmd.Flags().GetString("time")
			user, _ := cmd.Flags().GetString("user")

			sess, err := a.newUserSession(user, models.RoleEmployee)
			if err != nil {
				return err
			}
			defer sess.Close()

			conf, err := sess.RequestCoaching(strings.Join(args, " "), dateInput, timeInput)
			if err != nil {
				return fmt.Errorf("%w (coaches: %s)", err, strings.Join(sess.Catalog().CoachNames(), ", "))
			}

			out := cmd.OutOrStdout()
			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return writeJSON(out, conf)
			}
			fmt.Fprintf(out, "📅 %s\n", conf.Message)
			return nil
		},
	}

	cmd.Flags().StringP("date", "d", "", "Session date: tomorrow (default), today, yyyy-mm-dd, dd/mm/yyyy, X days, X weeks")
	cmd.Flags().StringP("time", "t", "", "Session time: hh:mm (default: now)")
	cmd.Flags().StringP("user", "u", "", "Username (defaults to $USER)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
