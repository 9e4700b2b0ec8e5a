package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/document"
)

var saveCmd = &cobra.Command{
	Use:   "save [base-name]",
	Short: "Save the working file into the convention folder",
	Long: `Copy the working file into <root>/<convention folder>/<base-name><extension>.

The base name defaults to the project's file name. The convention folder must
already exist; run 'atelier create' first.

Examples:
  atelier save --from /tmp/untitled.blend
  atelier save robot_v2 --from ~/scratch/robot.blend`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSave,
}

var saveFrom string

func init() {
	saveCmd.Flags().StringVar(&saveFrom, "from", "", "working file to save (required)")
	_ = saveCmd.MarkFlagRequired("from")
}

func runSave(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	a.session.Saver = document.FileSaver{Source: saveFrom}

	base := ""
	if len(args) == 1 {
		base = args[0]
	}
	a.dispatch(action.SaveFile, base)
}
