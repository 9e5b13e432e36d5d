package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the course table and prior standing",
		Long: `Clear the course table and prior standing, then recreate the default
number of blank rows. What-if semesters are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset clears all courses and your prior CGPA; rerun with --yes to confirm")
			}
			ctx := context.Background()
			if err := app.Calc.Reset(ctx); err != nil {
				return err
			}
			s, err := app.Calc.Settings(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset complete: %d blank row(s) ready\n", s.DefaultRows)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")

	return cmd
}
