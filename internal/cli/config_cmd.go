package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change workspace settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show workspace settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Calc.Settings(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s, app.DBPath))
			return nil
		},
	}

	rows := &cobra.Command{
		Use:   "rows N",
		Short: "Set how many blank course rows a reset creates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return &contract.InputError{Field: "rows", Value: args[0], Message: "must be a whole number"}
			}
			if err := app.Calc.SetDefaultRows(context.Background(), n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default rows set to %d\n", n)
			return nil
		},
	}

	cmd.AddCommand(show, rows)
	return cmd
}
