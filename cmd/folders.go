package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/layout"
	"github.com/kennyg/atelier/internal/ui"
)

var foldersCmd = &cobra.Command{
	Use:     "folders",
	Aliases: []string{"folder", "f"},
	Short:   "Edit the project's folder list",
	Long: `Edit the list of folder names that make up the project layout.

Indexes are 1-based, as shown by 'atelier folders list'. Editing the list
never touches the disk; use 'atelier create' or 'atelier sync' for that.

Examples:
  atelier folders defaults
  atelier folders add Renders
  atelier folders rename 3 Substance
  atelier folders remove 4`,
}

var foldersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List folders and whether they exist on disk",
	Args:    cobra.NoArgs,
	Run:     runFoldersList,
}

var foldersAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a folder (default name: New Folder)",
	Run: func(cmd *cobra.Command, args []string) {
		getApp(cmd).dispatch(action.AddFolder, strings.Join(args, " "))
	},
}

var foldersRemoveCmd = &cobra.Command{
	Use:     "remove [index]",
	Aliases: []string{"rm"},
	Short:   "Remove a folder, or the selected one when no index is given",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := getApp(cmd)
		if len(args) == 0 {
			a.dispatch(action.RemoveFolder)
			return
		}
		a.dispatch(action.RemoveFolder, zeroBased(args[0]))
	},
}

var foldersRenameCmd = &cobra.Command{
	Use:   "rename <index> <name>",
	Short: "Rename a folder",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		getApp(cmd).dispatch(action.RenameFolder, zeroBased(args[0]), strings.Join(args[1:], " "))
	},
}

var foldersSelectCmd = &cobra.Command{
	Use:   "select [index]",
	Short: "Select a folder, or clear the selection",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := getApp(cmd)
		if len(args) == 0 {
			a.dispatch(action.SelectFolder)
			return
		}
		a.dispatch(action.SelectFolder, zeroBased(args[0]))
	},
}

var foldersDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Replace the list with the default folders",
	Long: `Replace the folder list with the comma-separated default template.

The template comes from preferences unless --template is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a := getApp(cmd)
		a.dispatch(action.AddDefaultFolders, a.session.Prefs.DefaultFolderNames)
	},
}

func init() {
	// Loaded through the preferences layer so it overrides the stored template
	foldersDefaultsCmd.Flags().String("template", "", "comma-separated folder names")

	foldersCmd.AddCommand(foldersListCmd)
	foldersCmd.AddCommand(foldersAddCmd)
	foldersCmd.AddCommand(foldersRemoveCmd)
	foldersCmd.AddCommand(foldersRenameCmd)
	foldersCmd.AddCommand(foldersSelectCmd)
	foldersCmd.AddCommand(foldersDefaultsCmd)
}

func runFoldersList(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	p := a.session.Project

	fmt.Println()
	fmt.Println(ui.SectionHeader("Folders"))

	if len(p.Folders) == 0 {
		fmt.Println(ui.EmptyFolderList())
		return
	}

	fmt.Println()
	rootOK := p.CheckRoot() == nil
	for i, f := range p.Folders {
		marker := "  "
		if i == p.ActiveIndex {
			marker = ui.RenderHighlight("> ")
		}
		badge := ""
		if rootOK {
			badge = ui.MissingBadge()
			if layout.Exists(p, f.Name) {
				badge = ui.PresentBadge()
			}
		}
		fmt.Printf("%s%2d. %s %s\n", marker, i+1, badge, f.Name)
	}

	if !rootOK {
		fmt.Println()
		fmt.Println(ui.WarningLine("Project root is not set or does not exist."))
	}
	fmt.Println(ui.PageFooter())
}

// zeroBased converts a 1-based index from the command line. Anything that is
// not a number is passed through for the action to reject.
func zeroBased(arg string) string {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return arg
	}
	return strconv.Itoa(n - 1)
}
