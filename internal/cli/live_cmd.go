package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newLiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Edit courses with results updating as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, app)
		},
	}
}

func runLive(cmd *cobra.Command, app *App) error {
	if !app.interactive() {
		return fmt.Errorf("live mode needs an interactive terminal; use 'cgpa calc' instead")
	}
	p := tea.NewProgram(newLiveModel(app), tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	_, err := p.Run()
	return err
}
