package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/spf13/cobra"
)

func newStateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show or set your prior CGPA and earned credits",
	}

	cmd.AddCommand(
		newStateShowCmd(app),
		newStateSetCmd(app),
	)

	return cmd
}

func newStateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the prior academic standing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Calc.State(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatState(state))
			return nil
		},
	}
}

func newStateSetCmd(app *App) *cobra.Command {
	var cgpa, credits string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the prior CGPA and earned credits (empty clears a field)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			current, err := app.Calc.State(ctx)
			if err != nil {
				return err
			}

			in := contract.StateInput{
				CurrentCGPA:   string(current.CurrentCGPA),
				CreditsEarned: string(current.CreditsEarned),
			}
			if cmd.Flags().Changed("cgpa") {
				in.CurrentCGPA = cgpa
			}
			if cmd.Flags().Changed("credits") {
				in.CreditsEarned = credits
			}

			state, err := app.Calc.SetState(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatState(state))
			return nil
		},
	}

	cmd.Flags().StringVar(&cgpa, "cgpa", "", "Current CGPA (0-4)")
	cmd.Flags().StringVar(&credits, "credits", "", "Credits earned so far")

	return cmd
}
