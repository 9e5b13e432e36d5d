package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/alexanderramin/cgpa/internal/domain"
	"github.com/spf13/cobra"
)

func newWhatIfCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Plan future semesters and project your CGPA",
	}

	cmd.AddCommand(
		newWhatIfSemesterCmd(app),
		newWhatIfCourseCmd(app),
		newWhatIfPresetCmd(app),
		newWhatIfListCmd(app),
		newWhatIfProjectCmd(app),
	)

	return cmd
}

func newWhatIfSemesterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "semester",
		Aliases: []string{"sem"},
		Short:   "Manage what-if semesters",
	}

	add := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Add a semester (named \"Semester N\" when NAME is omitted)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			sem, err := app.WhatIf.AddSemester(context.Background(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added semester %s %s\n", sem.Name, formatter.SeqLabel(sem.Seq))
			return nil
		},
	}

	rm := &cobra.Command{
		Use:     "rm SEM",
		Aliases: []string{"remove"},
		Short:   "Remove a semester and its courses",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sem, err := resolveSemester(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.WhatIf.RemoveSemester(ctx, sem.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed semester %s\n", sem.Name)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle SEM",
		Short: "Expand or collapse a semester in the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sem, err := resolveSemester(ctx, app, args[0])
			if err != nil {
				return err
			}
			sem, err = app.WhatIf.ToggleSemester(ctx, sem.ID)
			if err != nil {
				return err
			}
			state := "closed"
			if sem.IsOpen {
				state = "open"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", sem.Name, state)
			return nil
		},
	}

	cmd.AddCommand(add, rm, toggle)
	return cmd
}

func newWhatIfCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses of a what-if semester",
	}

	var addCredits string
	var addGrade gradeFlag
	add := &cobra.Command{
		Use:   "add SEM",
		Short: "Add a course row to a semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sem, err := resolveSemester(ctx, app, args[0])
			if err != nil {
				return err
			}
			grade := addGrade.String()
			row, err := app.WhatIf.AddCourse(ctx, sem.ID, contract.SemesterCourseInput{
				CreditHours: &addCredits,
				Grade:       &grade,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added course %s to %s\n", formatter.SeqLabel(row.Seq), sem.Name)
			return nil
		},
	}
	add.Flags().StringVar(&addCredits, "credits", "", "Credit hours (0-6)")
	add.Flags().Var(&addGrade, "grade", "Letter grade ("+gradeList()+")")

	var setCredits string
	var setGrade gradeFlag
	set := &cobra.Command{
		Use:   "set SEM REF",
		Short: "Edit a course row of a semester",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sem, err := resolveSemester(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveSemesterCourseID(sem, args[1])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			in := contract.SemesterCourseInput{
				CreditHours: optionalString(flags, "credits", setCredits),
				Grade:       optionalString(flags, "grade", setGrade.String()),
			}
			if in.CreditHours == nil && in.Grade == nil {
				return fmt.Errorf("nothing to change: pass --credits or --grade")
			}
			if err := app.WhatIf.UpdateCourse(ctx, id, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s course %s\n", sem.Name, args[1])
			return nil
		},
	}
	set.Flags().StringVar(&setCredits, "credits", "", "Credit hours (0-6, empty clears)")
	set.Flags().Var(&setGrade, "grade", "Letter grade")

	rm := &cobra.Command{
		Use:     "rm SEM REF",
		Aliases: []string{"remove"},
		Short:   "Remove a course row from a semester",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sem, err := resolveSemester(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveSemesterCourseID(sem, args[1])
			if err != nil {
				return err
			}
			if err := app.WhatIf.RemoveCourse(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s course %s\n", sem.Name, args[1])
			return nil
		},
	}

	cmd.AddCommand(add, set, rm)
	return cmd
}

func newWhatIfPresetCmd(app *App) *cobra.Command {
	var seed int64

	presets := make([]string, 0, len(domain.ValidPresets))
	for p := range domain.ValidPresets {
		presets = append(presets, p)
	}
	sort.Strings(presets)

	cmd := &cobra.Command{
		Use:       "preset NAME",
		Short:     "Regrade every what-if course (" + strings.Join(presets, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: presets,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := app.WhatIf.ApplyPreset(context.Background(), contract.PresetRequest{
				Preset: domain.Preset(args[0]),
				Seed:   seed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %s: %d course(s) regraded\n", args[0], changed)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for the average presets (0 uses the session source)")

	return cmd
}

func newWhatIfListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List what-if semesters and their courses",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters, err := app.WhatIf.ListSemesters(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSemesters(semesters))
			return nil
		},
	}
}

func newWhatIfProjectCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project your CGPA after every open semester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.WhatIf.Project(context.Background(), contract.WhatIfRequest{Goal: domain.Numeric(goal)})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatSemesters(resp.Semesters))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatWhatIf(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal CGPA to judge the plan against")

	return cmd
}
