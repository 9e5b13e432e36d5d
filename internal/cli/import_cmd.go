package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the course table and prior standing from a saved JSON plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.Import(context.Background(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d course(s) from %s\n", result.CoursesImported, args[0])
			if !result.HasState {
				fmt.Fprintln(out, formatter.Dim("No prior CGPA in file: results will use this semester only."))
			}
			if result.LastUpdated != nil {
				fmt.Fprintln(out, formatter.Dim("Saved "+formatter.HumanTimestamp(*result.LastUpdated)))
			}
			return nil
		},
	}
}
