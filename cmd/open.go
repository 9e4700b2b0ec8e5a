package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
)

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open the reference board",
	Long: `Open a reference board with the system's default application.

Without a path, opens the project's reference board. A path given here
becomes the project's reference board.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		getApp(cmd).dispatch(action.OpenReference, args...)
	},
}
