package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Show the courses with semester GPA and new CGPA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, app)
		},
	}
}

func runCalc(cmd *cobra.Command, app *App) error {
	resp, err := app.Calc.Calculate(context.Background())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatCourseList(resp.Courses))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatCalculation(resp))
	return nil
}
