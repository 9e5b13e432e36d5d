package cli

import (
	"github.com/alexanderramin/cgpa/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Calc   service.CalculatorService
	Goals  service.GoalService
	WhatIf service.WhatIfService
	Export service.ExportService
	Import service.ImportService

	// DBPath is shown by "config show".
	DBPath string

	// IsInteractive reports whether stdin is a terminal. Wizards and the
	// live view only run when it returns true. Nil means non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "cgpa" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cgpa",
		Short:         "GPA and CGPA planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runLive(cmd, app)
			}
			return runCalc(cmd, app)
		},
	}

	root.AddCommand(
		newStateCmd(app),
		newCourseCmd(app),
		newCalcCmd(app),
		newGoalCmd(app),
		newWhatIfCmd(app),
		newHonorsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newConfigCmd(app),
		newResetCmd(app),
		newLiveCmd(app),
	)

	return root
}
