package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	var target, credits string

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Find the GPA you need next semester to reach a target CGPA",
		Long: `Find the GPA you need next semester to reach a target CGPA.

When the target is out of reach in one semester, lists how many total
credits would bring the required average down to 4.00 or below.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() && (target == "" || credits == "") {
				if err := wizardGoal(&target, &credits).Run(); err != nil {
					return err
				}
			}

			resp, err := app.Goals.Plan(context.Background(), contract.NewGoalRequest(target, credits))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoal(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target CGPA (0-4)")
	cmd.Flags().StringVar(&credits, "credits", "", "Credits planned next semester")

	return cmd
}
