package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/ui"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Show or change the active project",
	Long: `Show or change the project this session works on: its root directory,
the base name of the working file, and the reference board.

Examples:
  atelier project show
  atelier project set --root ~/work/robot --name robot
  atelier project set --reference ~/work/robot/board.pur`,
}

var projectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active project",
	Args:  cobra.NoArgs,
	Run:   runProjectShow,
}

var projectSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set project root, file name or reference board",
	Args:  cobra.NoArgs,
	Run:   runProjectSet,
}

var (
	projectRoot      string
	projectName      string
	projectReference string
)

func init() {
	projectSetCmd.Flags().StringVar(&projectRoot, "root", "", "project root directory")
	projectSetCmd.Flags().StringVar(&projectName, "name", "", "base name of the working file")
	projectSetCmd.Flags().StringVar(&projectReference, "reference", "", "reference board file")

	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectSetCmd)
}

func runProjectShow(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	p := a.session.Project

	fmt.Println()
	fmt.Println(ui.SectionHeader("Project"))
	fmt.Println()
	printField("Root", p.RootDirectory, "(not set)")
	if p.RootDirectory != "" {
		if err := p.CheckRoot(); err != nil {
			fmt.Println(ui.WarningLine("Directory does not exist."))
		}
	}
	printField("File", p.BlendFileBaseName, "(not set)")
	printField("Reference", p.ReferenceFilePath, "(none)")
	printField("Folders", fmt.Sprintf("%d", len(p.Folders)), "")
	fmt.Println(ui.PageFooter())
}

func runProjectSet(cmd *cobra.Command, args []string) {
	a := getApp(cmd)

	var pairs []string
	if cmd.Flags().Changed("root") {
		pairs = append(pairs, "root="+projectRoot)
	}
	if cmd.Flags().Changed("name") {
		pairs = append(pairs, "name="+projectName)
	}
	if cmd.Flags().Changed("reference") {
		pairs = append(pairs, "reference="+projectReference)
	}
	if len(pairs) == 0 {
		exitWithError("nothing to set: use --root, --name or --reference")
	}

	a.dispatch(action.SetProject, pairs...)
}

func printField(label, value, empty string) {
	if value == "" {
		value = ui.RenderMuted(empty)
	}
	fmt.Printf("  %-11s %s\n", label, value)
}
