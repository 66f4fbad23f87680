package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"geomkit/internal/tui"
)

func init() {
	RootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view [path]",
	Short: "Open the interactive terminal viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return launchViewer(path)
	},
}

func launchViewer(path string) error {
	var m tea.Model
	if path != "" {
		m = tui.NewWithPath(path)
	} else {
		m = tui.New()
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
