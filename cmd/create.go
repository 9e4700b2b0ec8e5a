package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the project folders",
	Long: `Create one directory under the project root for every folder in the list.

Stops at the first folder that already exists. Folders created before that
point are kept.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		getApp(cmd).dispatch(action.CreateProject)
	},
}
