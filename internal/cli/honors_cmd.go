package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/spf13/cobra"
)

func newHonorsCmd(app *App) *cobra.Command {
	var cgpa string

	cmd := &cobra.Command{
		Use:   "honors",
		Short: "Show common honors thresholds and which ones you meet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok, err := honorsCGPA(context.Background(), app, cgpa)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHonors(value, ok))
			return nil
		},
	}

	cmd.Flags().StringVar(&cgpa, "cgpa", "", "Check a specific CGPA instead of your own")

	return cmd
}

// honorsCGPA picks the CGPA to mark on the honors guide: the --cgpa flag,
// then the calculated CGPA when any course counts, then the stored prior.
func honorsCGPA(ctx context.Context, app *App, flag string) (float64, bool, error) {
	if flag != "" {
		v, ok := domain.Numeric(flag).Float()
		if !ok || v < 0 || v > domain.MaxGradePoint {
			return 0, false, &contract.InputError{Field: "cgpa", Value: flag, Message: "must be between 0 and 4"}
		}
		return v, true, nil
	}

	resp, err := app.Calc.Calculate(ctx)
	if err != nil {
		return 0, false, err
	}
	if resp.Result.TotalCredits > 0 {
		return resp.Result.CGPA, true, nil
	}
	v, ok := resp.State.CurrentCGPA.Float()
	return v, ok, nil
}
