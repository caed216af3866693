package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wellbeing/internal/recommend"
)

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <mood> <stress>",
		Short: "Show the recommendation for a mood/stress pair without logging it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid mood '%s'", args[0])
			}
			stress, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stress '%s'", args[1])
			}

			var warnings []string
			mood = clampWithWarning("mood", mood, &warnings)
			stress = clampWithWarning("stress", stress, &warnings)

			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, "⚠️  %s\n", w)
			}
			fmt.Fprintln(out, recommend.Recommend(mood, stress))
			return nil
		},
	}
}
