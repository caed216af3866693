package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/parser"
	"github.com/balkashynov/wellbeing/internal/session"
)

func newCheckinCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin [quick check-in]",
		Short: "Log a mood/stress check-in and get a recommendation",
		Long: `Log a wellness check-in and print the recommendation for it.

Quick syntax:
  mood:N  (or m:N)   Mood from 1 (very low) to 10 (excellent)
  stress:N (or s:N)  Stress from 1 (not stressed) to 10 (extremely stressed)
  anything else      Comment

Scores default to 5 and are clamped to 1-10. Flags override the quick syntax.

Examples:
  wellbeing checkin "mood:3 stress:8 deadline week"
  wellbeing checkin --mood 7 --stress 4 --comment "good sleep"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := parser.ParseCheckIn(strings.Join(args, " "))
			if len(parsed.Errors) > 0 {
				return fmt.Errorf("%s", strings.Join(parsed.Errors, "; "))
			}

			// Explicit flags take precedence over quick syntax
			if cmd.Flags().Changed("mood") {
				mood, _ := cmd.Flags().GetInt("mood")
				parsed.Mood = clampWithWarning("mood", mood, &parsed.Warnings)
			}
			if cmd.Flags().Changed("stress") {
				stress, _ := cmd.Flags().GetInt("stress")
				parsed.Stress = clampWithWarning("stress", stress, &parsed.Warnings)
			}
			if cmd.Flags().Changed("comment") {
				parsed.Comment, _ = cmd.Flags().GetString("comment")
			}

			user, _ := cmd.Flags().GetString("user")
			sess, err := a.newUserSession(user, models.RoleEmployee)
			if err != nil {
				return err
			}
			defer sess.Close()

			res, err := sess.SubmitCheckIn(parsed.Mood, parsed.Stress, parsed.Comment)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return writeJSON(out, res)
			}
			renderCheckIn(out, res, parsed.Warnings)
			return nil
		},
	}

	cmd.Flags().IntP("mood", "m", parser.DefaultScore, "Mood: 1 (very low) to 10 (excellent)")
	cmd.Flags().IntP("stress", "s", parser.DefaultScore, "Stress: 1 (not stressed) to 10 (extremely stressed)")
	cmd.Flags().StringP("comment", "c", "", "Additional comments")
	cmd.Flags().StringP("user", "u", "", "Username (defaults to $USER)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func clampWithWarning(field string, value int, warnings *[]string) int {
	clamped := parser.ClampScore(value)
	if clamped != value {
		*warnings = append(*warnings, fmt.Sprintf("%s %d is out of range, using %d", field, value, clamped))
	}
	return clamped
}

func renderCheckIn(out io.Writer, res session.CheckInResult, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "⚠️  %s\n", w)
	}
	fmt.Fprintf(out, "✅ %s\n", res.Message)
	fmt.Fprintf(out, "  Mood: %d  Stress: %d  at %s\n",
		res.CheckIn.Mood, res.CheckIn.Stress, res.CheckIn.Timestamp.Format("2006-01-02 15:04:05"))
	if res.CheckIn.Comment != "" {
		fmt.Fprintf(out, "  Comment: %s\n", res.CheckIn.Comment)
	}
	fmt.Fprintf(out, "💡 %s\n", res.Recommendation)
}

func writeJSON(out io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	fmt.Fprintln(out, string(jsonBytes))
	return nil
}
