package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/cli/formatter"
	"github.com/alexanderramin/cgpa/internal/contract"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Aliases: []string{"courses"},
		Short:   "Manage this semester's courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseSetCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var credits string
	var grade gradeFlag

	cmd := &cobra.Command{
		Use:   "add [CODE]",
		Short: "Add a course row",
		Long: `Add a course row. Rows missing credits or a grade are kept but left out
of the calculation. In a terminal, missing fields are asked for.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) == 1 {
				code = args[0]
			}
			gradeText := grade.String()

			if app.interactive() && (credits == "" || gradeText == "") {
				if err := wizardCourse(&code, &credits, &gradeText).Run(); err != nil {
					return err
				}
			}

			course, err := app.Calc.AddCourse(context.Background(), contract.CourseInput{
				Code:        &code,
				CreditHours: &credits,
				Grade:       &gradeText,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			label := course.Code
			if label == "" {
				label = "course"
			}
			fmt.Fprintf(out, "Added %s %s\n", label, formatter.SeqLabel(course.Seq))
			if !course.IsComplete() {
				fmt.Fprintln(out, formatter.Dim("Row is incomplete and will not count until credits and grade are set."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&credits, "credits", "", "Credit hours (0-6)")
	cmd.Flags().Var(&grade, "grade", "Letter grade ("+gradeList()+")")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List course rows",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Calc.ListCourses(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseList(courses))
			return nil
		},
	}
}

func newCourseSetCmd(app *App) *cobra.Command {
	var code, credits string
	var grade gradeFlag

	cmd := &cobra.Command{
		Use:   "set REF",
		Short: "Edit a course row by #seq, ID or ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			in := contract.CourseInput{
				Code:        optionalString(flags, "code", code),
				CreditHours: optionalString(flags, "credits", credits),
				Grade:       optionalString(flags, "grade", grade.String()),
			}
			if in.Code == nil && in.CreditHours == nil && in.Grade == nil {
				return fmt.Errorf("nothing to change: pass --code, --credits or --grade")
			}

			course, err := app.Calc.UpdateCourse(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.SeqLabel(course.Seq))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Course code")
	cmd.Flags().StringVar(&credits, "credits", "", "Credit hours (0-6, empty clears)")
	cmd.Flags().Var(&grade, "grade", "Letter grade")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm REF",
		Aliases: []string{"remove"},
		Short:   "Remove a course row",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Calc.DeleteCourse(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed course %s\n", args[0])
			return nil
		},
	}
}
