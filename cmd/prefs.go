package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/ui"
)

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Aliases: []string{"preferences"},
	Short:   "Show or change preferences",
	Long: `Preferences apply to every project. They are read from the preferences
file, then ATELIER_* environment variables, e.g.
ATELIER_CONVENTION_FOLDER=Scenes.

Examples:
  atelier prefs show
  atelier prefs set --template "Blender, Textures, Renders"
  atelier prefs set --add-link "Docs=https://example.com/docs"
  atelier prefs links --open "PureRef"`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show preferences",
	Args:  cobra.NoArgs,
	Run:   runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change preferences",
	Args:  cobra.NoArgs,
	Run:   runPrefsSet,
}

var prefsLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "List informational links, or open one",
	Args:  cobra.NoArgs,
	Run:   runPrefsLinks,
}

var (
	prefsTemplate   string
	prefsConvention string
	prefsDocExt     string
	prefsRefExt     string
	prefsAddLinks   []string
	prefsRemove     []string
	prefsOpen       string
)

func init() {
	prefsSetCmd.Flags().StringVar(&prefsTemplate, "template", "", "comma-separated default folder names")
	prefsSetCmd.Flags().StringVar(&prefsConvention, "convention", "", "folder the working file is saved into")
	prefsSetCmd.Flags().StringVar(&prefsDocExt, "document-extension", "", "working file extension")
	prefsSetCmd.Flags().StringVar(&prefsRefExt, "reference-extension", "", "reference board extension")
	prefsSetCmd.Flags().StringArrayVar(&prefsAddLinks, "add-link", nil, "add or replace a link, as label=url")
	prefsSetCmd.Flags().StringArrayVar(&prefsRemove, "remove-link", nil, "remove a link by label")

	prefsLinksCmd.Flags().StringVar(&prefsOpen, "open", "", "open the link with this label")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsLinksCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	prefs := a.session.Prefs

	fmt.Println()
	fmt.Println(ui.SectionHeader("Preferences"))
	fmt.Println()
	printField("Folders", prefs.DefaultFolderNames, "(empty)")
	printField("Convention", prefs.ConventionFolder, "")
	printField("Document", prefs.DocumentExtension, "")
	printField("Reference", prefs.ReferenceExtension, "")
	fmt.Println()
	fmt.Println(ui.RenderMuted("  " + a.prefsPath))
	fmt.Println(ui.PageFooter())
}

func runPrefsSet(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	flags := cmd.Flags()

	var pairs []string
	if flags.Changed("template") {
		pairs = append(pairs, "template="+prefsTemplate)
	}
	if flags.Changed("convention") {
		pairs = append(pairs, "convention="+prefsConvention)
	}
	if flags.Changed("document-extension") {
		pairs = append(pairs, "document-extension="+prefsDocExt)
	}
	if flags.Changed("reference-extension") {
		pairs = append(pairs, "reference-extension="+prefsRefExt)
	}
	for _, l := range prefsAddLinks {
		pairs = append(pairs, "link="+l)
	}
	for _, l := range prefsRemove {
		pairs = append(pairs, "unlink="+l)
	}
	if len(pairs) == 0 {
		exitWithError("nothing to set; see 'atelier prefs set --help'")
	}

	a.dispatch(action.UpdatePreferences, pairs...)
}

func runPrefsLinks(cmd *cobra.Command, args []string) {
	a := getApp(cmd)

	if prefsOpen != "" {
		a.dispatch(action.OpenLink, prefsOpen)
		return
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Links"))
	fmt.Println()
	if len(a.session.Prefs.Links) == 0 {
		fmt.Println(ui.RenderMuted("  (no links)"))
	}
	for _, l := range a.session.Prefs.Links {
		fmt.Printf("  %-16s %s\n", l.Label, ui.RenderLink(l.URL))
	}
	fmt.Println(ui.PageFooter())
}
