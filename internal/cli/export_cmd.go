package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, outPath string
	var includeEmpty, noSummary, noStanding bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the course table as CSV or the whole workspace as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			var err error
			switch contract.ExportFormat(format) {
			case contract.ExportCSV:
				opts := contract.NewExportOptions()
				opts.IncludeEmpty = includeEmpty
				opts.IncludeSummary = !noSummary
				opts.IncludeStanding = !noStanding
				err = app.Export.CSV(ctx, w, opts)
			case contract.ExportJSON:
				err = app.Export.JSON(ctx, w)
			default:
				return fmt.Errorf("unknown format %q (valid: csv, json)", format)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(contract.ExportCSV), "Output format: csv or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "Include blank course rows (csv)")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Omit the summary rows (csv)")
	cmd.Flags().BoolVar(&noStanding, "no-standing", false, "Omit the academic standing row from the summary (csv)")

	return cmd
}
