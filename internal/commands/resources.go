package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wellbeing/internal/catalog"
	"github.com/balkashynov/wellbeing/internal/models"
)

func newResourcesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"res"},
		Short:   "Browse the wellness resource hub",
		Long: `List wellness resources, optionally filtered by category.

Categories: All (default), Mindfulness, Stress, Balance, Nutrition, Relaxation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")

			sess, err := a.newUserSession("", models.RoleEmployee)
			if err != nil {
				return err
			}
			defer sess.Close()

			view, err := sess.Resources(category)
			if err != nil {
				return fmt.Errorf("%w (choose from: %s)", err, strings.Join(sess.Catalog().CategoryOptions(), ", "))
			}

			out := cmd.OutOrStdout()
			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return writeJSON(out, view)
			}

			fmt.Fprintf(out, "Resource Hub (%s, %d found):\n", view.Category, len(view.Resources))
			if len(view.Resources) == 0 {
				fmt.Fprintln(out, "No resources in this category.")
				return nil
			}
			for _, r := range view.Resources {
				fmt.Fprintf(out, "- %s (%s)\n", r.Title, r.Category)
			}
			return nil
		},
	}

	cmd.Flags().StringP("category", "c", catalog.All, "Filter by category")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
